package book

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// JSONFile stores the book as an indented JSON array in a single file.
type JSONFile struct {
	path string
}

var _ Backend = (*JSONFile)(nil)

// NewJSONFile returns a backend for path. Nothing is touched until Load or Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Load reads every entry. A missing file is created empty; an empty file is an
// empty book; undecodable content is reported as ErrCorrupt.
func (f *JSONFile) Load(_ context.Context) ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := f.write([]Entry{}); err != nil {
				return nil, fmt.Errorf("failed to create book file: %w", err)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read book file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, f.path, err)
	}
	return entries, nil
}

// Save overwrites the file with entries.
func (f *JSONFile) Save(_ context.Context, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	return f.write(entries)
}

func (f *JSONFile) write(entries []Entry) error {
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create book directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal book: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write book file: %w", err)
	}
	return nil
}

func (f *JSONFile) Close() error { return nil }
