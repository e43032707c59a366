package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"recordbook/internal/book"
	"recordbook/internal/field"
)

const (
	msgUnknownCommand = "Such command does not exist! Type 'help' to see the list of commands."
	msgArgumentType   = "Argument type is not acceptable!"
	msgUnknownError   = "Unknown error, please retry!"
)

// Dispatcher resolves lines against a registry and runs the matching handler.
// Every failure ends up as a printed message; none reach the caller.
type Dispatcher struct {
	registry  *Registry
	tokenizer *Tokenizer
	out       io.Writer
	logger    *zap.Logger

	// Style decorates error messages before they are written.
	Style func(string) string
}

// NewDispatcher captures the registry vocabulary. Commands registered later are
// not seen by the tokenizer.
func NewDispatcher(registry *Registry, out io.Writer, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		registry:  registry,
		tokenizer: NewTokenizer(registry.Keys()...),
		out:       out,
		logger:    logger,
		Style:     func(s string) string { return s },
	}
}

// Dispatch runs one input line. An empty line does nothing.
func (d *Dispatcher) Dispatch(ctx context.Context, raw string) Result {
	line := d.tokenizer.Split(raw)
	if line.Key == "" {
		return Continue
	}

	res, err := d.run(ctx, line)
	if err != nil {
		d.report(line, err)
		return Continue
	}
	return res
}

func (d *Dispatcher) run(ctx context.Context, line Line) (res Result, err error) {
	cmd, ok := d.registry.Lookup(line.Key)
	if !ok {
		return Continue, fmt.Errorf("%w: %q", ErrUnknownCommand, line.Key)
	}
	if err := cmd.checkArity(len(line.Args)); err != nil {
		return Continue, err
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("command panicked",
				zap.String("command", cmd.Key),
				zap.Any("panic", r),
				zap.Stack("stack"))
			res, err = Continue, fmt.Errorf("panic in %s: %v", cmd.Key, r)
		}
	}()

	d.logger.Debug("dispatching", zap.String("command", cmd.Key), zap.Int("args", len(line.Args)))
	return cmd.Run(ctx, line.Args)
}

// Message translates err into the text shown to the user.
func Message(err error) string {
	var (
		notice   Notice
		format   *field.FormatError
		arity    *ArityError
		notFound *book.NotFoundError
	)
	switch {
	case errors.As(err, &notice):
		return string(notice)
	case errors.As(err, &format):
		return format.Error()
	case errors.As(err, &arity) && errors.Is(err, ErrTooManyArgs):
		return fmt.Sprintf("Too many arguments for '%s'!", arity.Command)
	case errors.As(err, &arity):
		return fmt.Sprintf("Not enough arguments for '%s'!", arity.Command)
	case errors.Is(err, ErrUnknownCommand):
		return msgUnknownCommand
	case errors.Is(err, ErrArgumentType):
		return msgArgumentType
	case errors.As(err, &notFound):
		return fmt.Sprintf("Cannot find name %s in the list!", notFound.Name)
	default:
		return msgUnknownError
	}
}

func (d *Dispatcher) report(line Line, err error) {
	msg := Message(err)
	if msg == msgUnknownError {
		d.logger.Error("command failed", zap.String("command", line.Key), zap.Error(err))
	} else {
		fields := []zap.Field{zap.String("command", line.Key), zap.Error(err)}
		var format *field.FormatError
		if errors.As(err, &format) {
			fields = append(fields, zap.String("detail", format.Detail()))
		}
		d.logger.Debug("command rejected", fields...)
	}
	fmt.Fprintln(d.out, d.Style(msg))
}
