// Package command turns raw input lines into command invocations: it resolves
// multi-word command keys, checks arity and translates handler errors into
// user-facing messages.
package command

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the caseless form used to compare command keys.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Line is an input line split into a command key and positional arguments.
type Line struct {
	Key  string
	Args []string
}

// Tokenizer resolves the longest registered key at the start of a line.
type Tokenizer struct {
	keys     map[string]struct{}
	prefixes map[string]struct{}
}

// NewTokenizer builds a tokenizer for the given vocabulary. Keys are folded
// and whitespace-normalized.
func NewTokenizer(keys ...string) *Tokenizer {
	t := &Tokenizer{
		keys:     make(map[string]struct{}, len(keys)),
		prefixes: make(map[string]struct{}),
	}
	for _, k := range keys {
		words := strings.Fields(Fold(k))
		if len(words) == 0 {
			continue
		}
		t.keys[strings.Join(words, " ")] = struct{}{}
		for i := 1; i < len(words); i++ {
			t.prefixes[strings.Join(words[:i], " ")] = struct{}{}
		}
	}
	return t
}

func (t *Tokenizer) extendable(candidate string) (isKey, ok bool) {
	_, isKey = t.keys[candidate]
	_, isPrefix := t.prefixes[candidate]
	return isKey, isKey || isPrefix
}

// Split separates raw into a key and arguments. Words are added to the key
// while the result is still a key or the start of one; the longest full key
// wins. A single word comes back as typed, an empty line as an empty key.
// Arguments keep their original case.
func (t *Tokenizer) Split(raw string) Line {
	words := strings.Fields(raw)
	switch len(words) {
	case 0:
		return Line{}
	case 1:
		return Line{Key: words[0]}
	}

	folded := make([]string, 0, len(words))
	folded = append(folded, Fold(words[0]))
	candidate := folded[0]
	best := 1

	for i := 1; i < len(words); i++ {
		candidate += " " + Fold(words[i])
		isKey, ok := t.extendable(candidate)
		if !ok {
			break
		}
		folded = append(folded, Fold(words[i]))
		if isKey {
			best = i + 1
		}
	}

	line := Line{Key: strings.Join(folded[:best], " ")}
	if best < len(words) {
		line.Args = words[best:]
	}
	return line
}
