package cmdregistry

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"devkit/cli/makectl/internal/config"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArity          = errors.New("wrong number of arguments")
)

// Context carries the pre-parsed data and handles that command handlers need.
type Context struct {
	Ctx    context.Context
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
	Tool   config.Tool
	Log    *log.Entry
}

// Handler executes a command given the shared context.
type Handler func(*Context) error

// Command is a registry entry.
type Command struct {
	Name    string
	Arity   int
	Handler Handler
}

// Registry maps command names to handlers.
type Registry struct {
	commands map[string]Command
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register sets the handler for cmd. It panics if cmd already exists or arity is negative.
func (r *Registry) Register(cmd string, arity int, h Handler) {
	if _, exists := r.commands[cmd]; exists {
		panic(fmt.Sprintf("command %s already registered", cmd))
	}
	if arity < 0 {
		panic(fmt.Sprintf("command %s has negative arity %d", cmd, arity))
	}
	r.commands[cmd] = Command{Name: cmd, Arity: arity, Handler: h}
}

// Lookup returns the command and whether it exists.
func (r *Registry) Lookup(cmd string) (Command, bool) {
	c, ok := r.commands[cmd]
	return c, ok
}

// Resolve splits argv into a command and its positional parameters. It fails
// with ErrUnknownCommand when argv is empty or names no registered command, and
// with ErrArity when the parameter count differs from the command's arity.
func (r *Registry) Resolve(argv []string) (Command, []string, error) {
	if len(argv) == 0 {
		return Command{}, nil, ErrUnknownCommand
	}
	c, ok := r.Lookup(argv[0])
	if !ok {
		return Command{}, nil, fmt.Errorf("%w: %s", ErrUnknownCommand, argv[0])
	}
	params := argv[1:]
	if len(params) != c.Arity {
		return Command{}, nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, c.Name, c.Arity, len(params))
	}
	return c, params, nil
}
