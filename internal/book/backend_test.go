package book

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBook(t *testing.T, backend Backend) *Book {
	t.Helper()
	b := New(backend, nil)

	alice := newRecord(t, "Alice", "0501234567")
	_, err := alice.AddPhone("80661112233")
	require.NoError(t, err)
	_, err = alice.SetBirthday("5 May 1990")
	require.NoError(t, err)
	_, err = alice.SetEmail("alice@mail.com")
	require.NoError(t, err)
	alice.SetAddress("Kyiv, Khreshchatyk 1")
	require.NoError(t, b.Add(alice))

	require.NoError(t, b.Add(newRecord(t, "Bob", "+380671234567")))
	return b
}

func snapshot(b *Book) []Entry {
	var out []Entry
	for _, r := range b.All() {
		out = append(out, entryOf(r))
	}
	return out
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()

	backends := map[string]func(t *testing.T) Backend{
		"json": func(t *testing.T) Backend {
			return NewJSONFile(filepath.Join(t.TempDir(), "save.json"))
		},
		"sqlite": func(t *testing.T) Backend {
			s, err := OpenSQLite(":memory:")
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s
		},
	}

	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			backend := open(t)
			original := sampleBook(t, backend)
			require.NoError(t, original.Save(ctx))

			reloaded := New(backend, nil)
			require.NoError(t, reloaded.Load(ctx))

			if diff := cmp.Diff(snapshot(original), snapshot(reloaded)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJSONFile_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	b := sampleBook(t, NewJSONFile(path))
	require.NoError(t, b.Save(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "\n    {\n        \"name\": \"Alice\",")
	assert.Contains(t, text, `"Phone number": [`)
	assert.Contains(t, text, `"+380501234567"`)
	assert.Contains(t, text, `"Date of birth": "05 May 1990"`)
	assert.Contains(t, text, `"email": "alice@mail.com"`)
	assert.Contains(t, text, `"address": ""`)
}

func TestJSONFile_MissingIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save.json")
	entries, err := NewJSONFile(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

	entries, err := NewJSONFile(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestJSONFile_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "not a list"`), 0644))

	_, err := NewJSONFile(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrCorrupt)

	b := New(NewJSONFile(path), nil)
	require.NoError(t, b.Load(context.Background()))
	assert.Equal(t, 0, b.Len())
}

func TestJSONFile_SaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	require.NoError(t, New(NewJSONFile(path), nil).Save(context.Background()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSQLite_Overwrite(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save(ctx, []Entry{
		{Name: "Alice", Phones: []string{"+380501234567"}},
		{Name: "Bob", Phones: []string{"+380671234567"}},
	}))
	require.NoError(t, s.Save(ctx, []Entry{
		{Name: "Carol", Phones: []string{"+380661112233", "+380501234567"}},
	}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	want := []Entry{{Name: "Carol", Phones: []string{"+380661112233", "+380501234567"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestSQLite_NotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.db")
	garbage := make([]byte, 4096)
	for i := range garbage {
		garbage[i] = 'x'
	}
	require.NoError(t, os.WriteFile(path, garbage, 0644))

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Load(context.Background())
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestSQLite_LockedIsNotCorrupt(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	path := filepath.Join(t.TempDir(), "book.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.Save(ctx, []Entry{{Name: "Alice", Phones: []string{"+380501234567"}}}))

	other, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer other.Close()
	conn, err := other.Conn(ctx)
	require.NoError(t, err)
	defer conn.Close()
	_, err = conn.ExecContext(ctx, "BEGIN EXCLUSIVE")
	require.NoError(t, err)

	_, err = s.Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorrupt)

	b := New(s, nil)
	err = b.Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCorrupt)

	_, err = conn.ExecContext(ctx, "ROLLBACK")
	require.NoError(t, err)

	require.NoError(t, b.Load(ctx))
	require.Equal(t, 1, b.Len())
	_, err = b.Get("Alice")
	assert.NoError(t, err)
}
