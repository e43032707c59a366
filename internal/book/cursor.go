package book

import "recordbook/internal/contact"

// Cursor walks a snapshot of records page by page.
type Cursor struct {
	records []*contact.Record
	size    int
	pos     int
	clamped bool
}

// NewCursor pages over records. A size larger than the number of records is
// clamped to it and reported by Clamped.
func NewCursor(records []*contact.Record, size int) (*Cursor, error) {
	if size <= 0 {
		return nil, ErrPageSize
	}
	c := &Cursor{records: records, size: size}
	if size > len(records) {
		c.size = len(records)
		c.clamped = true
	}
	return c, nil
}

func (c *Cursor) HasMore() bool { return c.pos < len(c.records) }

// Next returns the following page, or nil once the records are exhausted.
func (c *Cursor) Next() []*contact.Record {
	if !c.HasMore() {
		return nil
	}
	end := min(c.pos+c.size, len(c.records))
	page := c.records[c.pos:end]
	c.pos = end
	return page
}

// Size is the effective page size after clamping.
func (c *Cursor) Size() int { return c.size }

func (c *Cursor) Clamped() bool { return c.clamped }
