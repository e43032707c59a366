package command

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrNotEnoughArgs  = errors.New("not enough arguments")
	ErrArgumentType   = errors.New("argument type is not acceptable")
)

// ArityError reports an argument count outside a command's declared range.
type ArityError struct {
	Command string
	Got     int
	Err     error
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %v (got %d)", e.Command, e.Err, e.Got)
}

func (e *ArityError) Unwrap() error { return e.Err }

// Notice is a handler outcome the user should read verbatim. It is not a
// failure of the program.
type Notice string

func (n Notice) Error() string { return string(n) }

// Noticef formats a Notice.
func Noticef(format string, args ...any) error {
	return Notice(fmt.Sprintf(format, args...))
}
