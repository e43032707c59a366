// Package book holds the in-memory record store and its persistence.
package book

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"recordbook/internal/contact"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrRecordExists = errors.New("record already exists")
	ErrPageSize     = errors.New("page size must be positive")
)

// Book maps names to records and keeps insertion order.
type Book struct {
	mu      sync.Mutex
	backend Backend
	logger  *zap.Logger
	index   map[string]int
	records []*contact.Record
}

// New returns an empty book persisted through backend. A nil logger discards
// everything.
func New(backend Backend, logger *zap.Logger) *Book {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Book{
		backend: backend,
		logger:  logger,
		index:   make(map[string]int),
	}
}

// Add inserts r. A record with the same name is rejected.
func (b *Book) Add(r *contact.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.add(r)
}

func (b *Book) add(r *contact.Record) error {
	if _, ok := b.index[r.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrRecordExists, r.Name())
	}
	b.index[r.Name()] = len(b.records)
	b.records = append(b.records, r)
	return nil
}

func (b *Book) Get(name string) (*contact.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i, ok := b.index[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return b.records[i], nil
}

func (b *Book) Delete(name string) (*contact.Record, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	i, ok := b.index[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	r := b.records[i]
	b.records = slices.Delete(b.records, i, i+1)
	delete(b.index, name)
	for j := i; j < len(b.records); j++ {
		b.index[b.records[j].Name()] = j
	}
	return r, nil
}

// All returns the records in insertion order.
func (b *Book) All() []*contact.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.records)
}

func (b *Book) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.records)
}

// Find returns every record with a field containing needle, each once, in
// insertion order.
func (b *Book) Find(needle string) []*contact.Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	var found []*contact.Record
	for _, r := range b.records {
		if r.Matches(needle) {
			found = append(found, r)
		}
	}
	return found
}

// Upcoming pairs a record with the days left until its next birthday.
type Upcoming struct {
	Record *contact.Record
	Days   int
}

// UpcomingBirthdays returns records whose next birthday is at most within days
// from today, in insertion order.
func (b *Book) UpcomingBirthdays(within int, today time.Time) []Upcoming {
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []Upcoming
	for _, r := range b.records {
		days := r.Birthday().DaysUntil(today)
		if days < 0 || days > within {
			continue
		}
		out = append(out, Upcoming{Record: r, Days: days})
	}
	return out
}

// Pages starts a new paginated walk over the current records.
func (b *Book) Pages(size int) (*Cursor, error) {
	return NewCursor(b.All(), size)
}

// Load replaces the contents with what the backend holds. Corrupt storage
// yields an empty book; entries that fail validation are skipped.
func (b *Book) Load(ctx context.Context) error {
	entries, err := b.backend.Load(ctx)
	switch {
	case errors.Is(err, ErrCorrupt):
		b.logger.Warn("storage unreadable, starting with an empty book", zap.Error(err))
		entries = nil
	case err != nil:
		return fmt.Errorf("failed to load book: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.index = make(map[string]int, len(entries))
	b.records = b.records[:0]
	for i, e := range entries {
		r, err := e.record()
		if err == nil {
			err = b.add(r)
		}
		if err != nil {
			b.logger.Warn("skipping stored entry",
				zap.Int("position", i),
				zap.String("name", e.Name),
				zap.Error(err))
			continue
		}
	}

	b.logger.Debug("book loaded", zap.Int("records", len(b.records)))
	return nil
}

// Save writes every record through the backend, replacing what was stored.
func (b *Book) Save(ctx context.Context) error {
	b.mu.Lock()
	entries := make([]Entry, len(b.records))
	for i, r := range b.records {
		entries[i] = entryOf(r)
	}
	b.mu.Unlock()

	if err := b.backend.Save(ctx, entries); err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}
	b.logger.Debug("book saved", zap.Int("records", len(entries)))
	return nil
}

// NotFoundError reports a name missing from the book.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string { return "record not found: " + e.Name }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
