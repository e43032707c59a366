package command

import (
	"context"
	"fmt"
	"strings"
)

// Result tells the session loop whether to keep reading input.
type Result int

const (
	Continue Result = iota
	Stop
)

// Variadic as MaxArgs lifts the upper bound.
const Variadic = -1

// Handler runs a command with its positional arguments.
type Handler func(ctx context.Context, args []string) (Result, error)

// Command describes one entry of the vocabulary.
type Command struct {
	Key         string // folded, single-spaced (e.g. "add phone")
	Usage       string // e.g. "add phone <name> <phone>"
	Description string
	MinArgs     int
	MaxArgs     int
	Run         Handler
}

// Registry holds commands in registration order.
type Registry struct {
	commands map[string]Command
	order    []string
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds cmd. The key is normalized; duplicates are rejected.
func (r *Registry) Register(cmd Command) error {
	key := strings.Join(strings.Fields(Fold(cmd.Key)), " ")
	if key == "" {
		return fmt.Errorf("command key is empty")
	}
	if cmd.Run == nil {
		return fmt.Errorf("command %q has no handler", key)
	}
	if cmd.MaxArgs != Variadic && cmd.MaxArgs < cmd.MinArgs {
		return fmt.Errorf("command %q: max args %d below min args %d", key, cmd.MaxArgs, cmd.MinArgs)
	}
	if _, ok := r.commands[key]; ok {
		return fmt.Errorf("command %q registered twice", key)
	}
	cmd.Key = key
	r.commands[key] = cmd
	r.order = append(r.order, key)
	return nil
}

// MustRegister is Register for static tables.
func (r *Registry) MustRegister(cmds ...Command) {
	for _, c := range cmds {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Lookup finds a command by key, ignoring case.
func (r *Registry) Lookup(key string) (Command, bool) {
	cmd, ok := r.commands[Fold(key)]
	return cmd, ok
}

// Commands returns every command in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, len(r.order))
	for i, k := range r.order {
		out[i] = r.commands[k]
	}
	return out
}

func (r *Registry) Keys() []string {
	return append([]string(nil), r.order...)
}

func (c Command) checkArity(n int) error {
	switch {
	case n < c.MinArgs:
		return &ArityError{Command: c.Key, Got: n, Err: ErrNotEnoughArgs}
	case c.MaxArgs != Variadic && n > c.MaxArgs:
		return &ArityError{Command: c.Key, Got: n, Err: ErrTooManyArgs}
	}
	return nil
}
