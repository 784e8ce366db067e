package repl

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen/roster/internal/domain"
	"github.com/jsamuelsen/roster/internal/platform/logging"
)

// HelpText lists the commands understood by the loop.
const HelpText = `Commands:

add - add a person;
list - print the roster;
select <name> - show everyone with the given name;
load <file> - load the roster from an XML file;
save <file> - save the roster to an XML file;
help - show this help;
exit - quit.`

type command struct {
	usage    string
	needsArg bool
	run      func(ctx context.Context, s *Session, arg string) (exit bool, err error)
}

var commands = map[string]command{
	"add":    {usage: "add", run: runAdd},
	"list":   {usage: "list", run: runList},
	"select": {usage: "select <name>", needsArg: true, run: runSelect},
	"load":   {usage: "load <file>", needsArg: true, run: runLoad},
	"save":   {usage: "save <file>", needsArg: true, run: runSave},
	"help":   {usage: "help", run: runHelp},
	"exit":   {usage: "exit", run: runExit},
}

func runAdd(ctx context.Context, s *Session, _ string) (bool, error) {
	var fields [3]string

	for i, label := range []string{namePrompt, zodiacPrompt, yearPrompt} {
		v, err := s.ask(label)
		if err != nil {
			return false, err
		}

		fields[i] = v
	}

	_, err := s.svc.Add(ctx, fields[0], fields[1], fields[2])

	return false, err
}

func runList(ctx context.Context, s *Session, _ string) (bool, error) {
	fmt.Fprintln(s.out, s.svc.List(ctx))
	return false, nil
}

func runSelect(ctx context.Context, s *Session, name string) (bool, error) {
	found, err := s.svc.Select(ctx, name)
	if domain.IsNotFound(err) {
		fmt.Fprintln(s.out, s.styles.notice.Render(NotFoundMessage(name)))
		return false, nil
	}

	if err != nil {
		return false, err
	}

	WriteMatches(s.out, found)

	return false, nil
}

func runLoad(ctx context.Context, s *Session, path string) (bool, error) {
	n, err := s.svc.Load(ctx, path)
	if err != nil {
		return false, err
	}

	logging.FromContext(ctx).DebugContext(ctx, "load finished", slog.Int("people", n))

	return false, nil
}

func runSave(ctx context.Context, s *Session, path string) (bool, error) {
	return false, s.svc.Save(ctx, path)
}

func runHelp(_ context.Context, s *Session, _ string) (bool, error) {
	fmt.Fprintln(s.out, HelpText)
	return false, nil
}

func runExit(context.Context, *Session, string) (bool, error) {
	return true, nil
}

// WriteMatches prints the 1-based rank and name of every person.
func WriteMatches(w io.Writer, people []domain.Person) {
	for i, p := range people {
		fmt.Fprintf(w, "%4d: %s\n", i+1, p.Name)
	}
}

// NotFoundMessage is printed when select finds nobody.
func NotFoundMessage(name string) string {
	return fmt.Sprintf("No person named %q found.", name)
}
