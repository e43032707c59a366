package command

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var vocabulary = []string{
	"add", "add phone", "edit phone", "delete phone", "delete contact",
	"set bday", "set email", "set address", "show all", "show some",
	"show bday", "show email", "show address", "bday in", "find",
	"help", "hello", "save", "not save", "good bye", "close",
}

func TestTokenizer_Split(t *testing.T) {
	tok := NewTokenizer(vocabulary...)

	tests := []struct {
		name string
		in   string
		want Line
	}{
		{"empty", "", Line{}},
		{"blank", "   \t ", Line{}},
		{"single word kept as typed", "HeLLo", Line{Key: "HeLLo"}},
		{"unknown single word", "frobnicate", Line{Key: "frobnicate"}},
		{"longest key wins", "add phone Alice 0501234567", Line{Key: "add phone", Args: []string{"Alice", "0501234567"}}},
		{"shorter key when extension fails", "add Alice 0501234567", Line{Key: "add", Args: []string{"Alice", "0501234567"}}},
		{"case folded key, args keep case", "ADD Phone Alice 0501234567", Line{Key: "add phone", Args: []string{"Alice", "0501234567"}}},
		{"extra whitespace", "  show    all  ", Line{Key: "show all"}},
		{"prefix only", "show Alice", Line{Key: "show", Args: []string{"Alice"}}},
		{"two word key no args", "good bye", Line{Key: "good bye"}},
		{"argument equal to a key word", "find add", Line{Key: "find", Args: []string{"add"}}},
		{"bday in", "bday in 7", Line{Key: "bday in", Args: []string{"7"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Split(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTokenizer_NoKeys(t *testing.T) {
	got := NewTokenizer().Split("add phone x")
	want := Line{Key: "add", Args: []string{"phone", "x"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFold_Cyrillic(t *testing.T) {
	if got := Fold("ДОДАТИ"); got != "додати" {
		t.Errorf("Fold() = %q", got)
	}
}
