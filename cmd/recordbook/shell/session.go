// Package shell runs the interactive address-book session: it reads command
// lines, dispatches them and asks follow-up questions on the same input.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"recordbook/internal/book"
	"recordbook/internal/command"
	"recordbook/internal/config"
)

const requestPrompt = "Put your request here: "

// errNoInput cancels a follow-up question when input ends mid-command.
var errNoInput = command.Notice("No input received, the command was cancelled.")

// Options tune a Session. Zero values are usable.
type Options struct {
	UI config.UIConfig

	// Logger receives session events; CommandLogger receives dispatcher events.
	Logger        *zap.Logger
	CommandLogger *zap.Logger

	// Now supplies today's date for birthday lookups.
	Now func() time.Time
}

// Session is one run of the REPL over a book.
type Session struct {
	id         uuid.UUID
	in         *bufio.Reader
	out        io.Writer
	book       *book.Book
	ui         config.UIConfig
	styles     Styles
	logger     *zap.Logger
	registry   *command.Registry
	dispatcher *command.Dispatcher
	now        func() time.Time
}

// New wires a session reading from in and writing to out.
func New(in io.Reader, out io.Writer, b *book.Book, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.UI.HelpStyle == "" {
		opts.UI.HelpStyle = config.HelpPlain
	}

	id := uuid.New()
	s := &Session{
		id:     id,
		in:     bufio.NewReader(in),
		out:    out,
		book:   b,
		ui:     opts.UI,
		styles: NewStyles(out),
		logger: opts.Logger.With(zap.String("session", id.String())),
		now:    opts.Now,
	}

	s.registry = command.NewRegistry()
	s.registry.MustRegister(s.commands()...)

	cmdLogger := opts.CommandLogger
	if cmdLogger == nil {
		cmdLogger = zap.NewNop()
	}
	s.dispatcher = command.NewDispatcher(s.registry, out, cmdLogger.With(zap.String("session", id.String())))
	s.dispatcher.Style = func(msg string) string { return s.styles.Error.Render(msg) }
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Run greets the user and processes lines until a closing command or the end
// of input. Reaching the end of input does not save.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Info("session started", zap.Int("records", s.book.Len()))

	s.println(separator)
	s.println(greeting)
	s.println(separator)
	s.print(s.renderHelp())

	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("session cancelled", zap.Error(err))
			return err
		}

		s.println(separator)
		line, err := s.readLine(requestPrompt)
		if errors.Is(err, io.EOF) {
			s.println("")
			s.println(s.styles.Warning.Render(msgNotSaved))
			s.logger.Info("input closed, leaving without saving")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if s.dispatcher.Dispatch(ctx, line) == command.Stop {
			s.logger.Info("session finished")
			return nil
		}
	}
}

// readLine prints prompt and returns the next line without its terminator.
// A final line without a newline is returned before io.EOF.
func (s *Session) readLine(prompt string) (string, error) {
	s.print(prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask is readLine for follow-up questions inside a command.
func (s *Session) ask(prompt string) (string, error) {
	line, err := s.readLine(prompt)
	if errors.Is(err, io.EOF) {
		return "", errNoInput
	}
	return line, err
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Session) success(format string, args ...any) {
	s.println(s.styles.Success.Render(fmt.Sprintf(format, args...)))
}
