// Package repl provides the interactive command loop over a roster.
// It is an inbound adapter: it turns text lines into RosterService calls and
// renders the results. It holds no roster state of its own.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/jsamuelsen/roster/internal/domain"
	"github.com/jsamuelsen/roster/internal/platform/logging"
)

// DefaultPrompt is printed before every command when none is configured.
const DefaultPrompt = ">>> "

// Field prompts used by the add command.
const (
	namePrompt   = "Name: "
	zodiacPrompt = "Zodiac: "
	yearPrompt   = "Year: "
)

// RosterService is the subset of the application service the loop drives.
type RosterService interface {
	Add(ctx context.Context, name, zodiac, year string) (domain.Person, error)
	List(ctx context.Context) string
	Select(ctx context.Context, name string) ([]domain.Person, error)
	Load(ctx context.Context, path string) (int, error)
	Save(ctx context.Context, path string) error
}

// SessionConfig contains the dependencies of a session.
type SessionConfig struct {
	Service RosterService
	In      io.Reader
	Out     io.Writer
	ErrOut  io.Writer
	Prompt  string
	Logger  *slog.Logger
}

// Session is one run of the command loop. It is not safe for concurrent use.
type Session struct {
	svc    RosterService
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	prompt string
	styles styles
	logger *slog.Logger
}

// errInputClosed ends the session when input runs out mid-command.
var errInputClosed = errors.New("input closed")

// NewSession creates a session.
// Panics if Service is nil. In defaults to an empty reader, Out and ErrOut
// to io.Discard, Prompt to DefaultPrompt and Logger to slog.Default().
func NewSession(cfg SessionConfig) *Session {
	if cfg.Service == nil {
		panic("repl.Session: Service is required")
	}

	in := cfg.In
	if in == nil {
		in = strings.NewReader("")
	}

	out := cfg.Out
	if out == nil {
		out = io.Discard
	}

	errOut := cfg.ErrOut
	if errOut == nil {
		errOut = io.Discard
	}

	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		svc:    cfg.Service,
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		prompt: prompt,
		styles: newStyles(out, errOut),
		logger: logger.With(slog.String("component", "repl.Session")),
	}
}

// Run prompts for and dispatches commands until exit, end of input or
// cancellation of ctx. Command failures are reported and never end the loop.
// Only a failing input stream is returned as an error.
func (s *Session) Run(ctx context.Context) error {
	sessionID := uuid.NewString()
	ctx = logging.WithSessionID(logging.WithContext(ctx, s.logger), sessionID)

	logger := logging.FromContext(ctx)
	logger.DebugContext(ctx, "session started")

	defer logger.DebugContext(ctx, "session ended")

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		fmt.Fprint(s.out, s.styles.prompt.Render(s.prompt))

		line, err := s.readLine()
		if errors.Is(err, errInputClosed) {
			if line == "" {
				fmt.Fprintln(s.out)
				return nil
			}

			s.Dispatch(ctx, line)

			return nil
		}

		if err != nil {
			return err
		}

		if s.Dispatch(ctx, line) {
			return nil
		}
	}
}

// Dispatch executes one command line and reports whether the session should
// end. The verb is matched case-insensitively; its argument is kept verbatim.
func (s *Session) Dispatch(ctx context.Context, line string) bool {
	verb, arg := parseLine(line)
	if verb == "" {
		return false
	}

	cmd, ok := commands[verb]
	if !ok {
		fmt.Fprintln(s.errOut, s.styles.err.Render("Unknown command: "+strings.TrimSpace(line)))
		return false
	}

	if cmd.needsArg && arg == "" {
		fmt.Fprintln(s.errOut, s.styles.err.Render("usage: "+cmd.usage))
		return false
	}

	ctx = logging.WithCommand(ctx, verb)
	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "dispatching", slog.String("arg", arg))

	exit, err := cmd.run(ctx, s, arg)
	if errors.Is(err, errInputClosed) {
		return true
	}

	if err != nil {
		s.reportError(err)
	}

	return exit
}

func (s *Session) reportError(err error) {
	fmt.Fprintln(s.errOut, s.styles.err.Render("error: "+err.Error()))
}

// ask prints label and returns the answer without its line terminator.
func (s *Session) ask(label string) (string, error) {
	fmt.Fprint(s.out, label)

	line, err := s.readLine()
	if errors.Is(err, errInputClosed) && line != "" {
		return line, nil
	}

	return line, err
}

// readLine returns the next line without its terminator. At end of input it
// returns whatever was read together with errInputClosed.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")

	if errors.Is(err, io.EOF) {
		return line, errInputClosed
	}

	if err != nil {
		return line, fmt.Errorf("reading input: %w", err)
	}

	return line, nil
}

// parseLine splits a command line into its lowercased verb and the rest.
func parseLine(line string) (verb, arg string) {
	line = strings.TrimSpace(line)

	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return strings.ToLower(line), ""
	}

	return strings.ToLower(line[:i]), strings.TrimSpace(line[i:])
}
