// Package menu runs the interactive numbered menu over a catalog.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jacksmith/pcat/internal/catalog"
	"github.com/jacksmith/pcat/internal/cli"
	"github.com/jacksmith/pcat/internal/model"
	"go.uber.org/zap"
)

// Store defines the persistence the menu needs. The concrete
// implementation is storage.Store.
type Store interface {
	Save(ctx context.Context, path string, projects []model.Project) error
	Load(ctx context.Context, path string) ([]model.Project, error)
}

// Command names in menu order; option N is commands[N-1].
const (
	cmdAdd  = "add"
	cmdList = "list"
	cmdShow = "show"
	cmdTask = "task"
	cmdCost = "cost"
	cmdSave = "save"
	cmdLoad = "load"
	cmdExit = "exit"
)

var commands = []string{cmdAdd, cmdList, cmdShow, cmdTask, cmdCost, cmdSave, cmdLoad, cmdExit}

var menuText = `
Menu:
1. Add a new project
2. List projects
3. Show project details
4. Add a task to a project
5. Calculate project cost
6. Save projects to file
7. Load projects from file
8. Exit
`

// errQuit ends the loop without reporting an error.
var errQuit = errors.New("quit")

// Options configures a Session.
type Options struct {
	// Path is the catalog file used by save and load.
	Path string
	// Currency is printed in front of costs.
	Currency string
	// Logger receives debug events. Nil disables logging.
	Logger *zap.Logger
}

// Session is one interactive run over a catalog.
type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	catalog  *catalog.Catalog
	store    Store
	path     string
	currency string
	logger   *zap.Logger
}

// NewSession creates a session reading commands from in and writing to out.
func NewSession(in io.Reader, out io.Writer, c *catalog.Catalog, store Store, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		catalog:  c,
		store:    store,
		path:     opts.Path,
		currency: opts.Currency,
		logger:   logger,
	}
}

// Run shows the menu until the user exits or input ends.
// Command errors are printed and the loop continues.
func (s *Session) Run(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, menuText)
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return s.finish(err)
		}

		cmd, err := resolveChoice(choice)
		if err != nil {
			s.report(err)
			continue
		}

		s.logger.Debug("menu command", zap.String("command", cmd))
		if err := s.dispatch(ctx, cmd); err != nil {
			if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
				return s.finish(err)
			}
			s.report(err)
		}
	}
}

// finish converts loop-ending conditions into Run's result.
func (s *Session) finish(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		s.logger.Debug("menu closed")
		return nil
	}
	return err
}

// resolveChoice accepts an option number or a command name/prefix.
func resolveChoice(choice string) (string, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(choice)); err == nil {
		if n < 1 || n > len(commands) {
			return "", fmt.Errorf("%w: option %d (choose 1-%d)", cli.ErrUnknownCommand, n, len(commands))
		}
		return commands[n-1], nil
	}
	return cli.MatchCommand(choice, commands)
}

func (s *Session) dispatch(ctx context.Context, cmd string) error {
	switch cmd {
	case cmdAdd:
		return s.add()
	case cmdList:
		s.list()
		return nil
	case cmdShow:
		return s.show()
	case cmdTask:
		return s.addTask()
	case cmdCost:
		return s.cost()
	case cmdSave:
		return s.save(ctx)
	case cmdLoad:
		return s.load(ctx)
	case cmdExit:
		return errQuit
	default:
		return fmt.Errorf("%w %q", cli.ErrUnknownCommand, cmd)
	}
}

func (s *Session) report(err error) {
	s.logger.Debug("command failed", zap.Error(err))
	fmt.Fprintln(s.out, cli.Red(cli.FormatError(err)))
}

// prompt writes label and returns the next input line.
// Returns io.EOF when input is exhausted.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

func (s *Session) promptIndex() (int, error) {
	raw, err := s.prompt("Project number: ")
	if err != nil {
		return 0, err
	}
	return cli.ParseIndex(raw)
}
