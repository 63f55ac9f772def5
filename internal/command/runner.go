package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/quocvuong92/excavator/internal/constants"
	"github.com/quocvuong92/excavator/internal/logging"
	"github.com/quocvuong92/excavator/internal/param"
	"github.com/quocvuong92/excavator/internal/parser"
	"github.com/quocvuong92/excavator/internal/table"
)

// Runner owns a command tree, resolves command paths and dispatches
// arguments to the matching command.
//
// While commands are being declared the runner tracks a current namespace
// pointer (moved by InNamespace) and a pending command that the DSL helpers
// fill in. A Runner is not safe for concurrent use.
type Runner struct {
	root    *Namespace
	current *Namespace
	pending *Command

	program   string
	out       io.Writer
	errOut    io.Writer
	logger    *logging.Logger
	helpers   map[string]any
	newParser parser.Factory
}

// Option configures a Runner
type Option func(*Runner)

// WithOutput sets where command output and the command listing are written
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithErrOutput sets the writer command bodies use for diagnostics
func WithErrOutput(w io.Writer) Option {
	return func(r *Runner) { r.errOut = w }
}

// WithLogger sets the dispatch logger
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithProgramName sets the name shown in the command listing title
func WithProgramName(name string) Option {
	return func(r *Runner) { r.program = name }
}

// WithHelper makes a value available to command bodies via Context.Helper
func WithHelper(name string, helper any) Option {
	return func(r *Runner) { r.helpers[name] = helper }
}

// WithParserFactory replaces the option parser used by new commands
func WithParserFactory(f parser.Factory) Option {
	return func(r *Runner) { r.newParser = f }
}

// NewRunner creates a Runner with an empty root namespace
func NewRunner(opts ...Option) *Runner {
	root := NewNamespace(constants.RootNamespace)
	r := &Runner{
		root:      root,
		current:   root,
		program:   filepath.Base(os.Args[0]),
		out:       os.Stdout,
		errOut:    os.Stderr,
		logger:    logging.Discard(),
		helpers:   make(map[string]any),
		newParser: parser.DefaultFactory,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Root returns the root namespace
func (r *Runner) Root() *Namespace { return r.root }

// CurrentNamespace returns the namespace declarations currently target
func (r *Runner) CurrentNamespace() *Namespace { return r.current }

// ProgramName returns the name used in the command listing
func (r *Runner) ProgramName() string { return r.program }

// InNamespace moves the current namespace pointer to the child called name,
// creating it on first use, runs fn and moves the pointer back. Entering an
// existing namespace again reuses the same node.
func (r *Runner) InNamespace(name string, fn func()) {
	parent := r.current
	ns, ok := parent.Namespace(name)
	if !ok {
		ns = NewNamespace(name)
		parent.AddNamespace(ns)
	}

	r.current = ns
	defer func() { r.current = parent }()
	fn()
}

// NewCommand creates a command bound to this runner and the current
// namespace. It is not attached to the tree.
func (r *Runner) NewCommand() *Command {
	return &Command{
		runner:    r,
		namespace: r.current,
	}
}

// PendingCommand returns the command under declaration, creating it in the
// current namespace on first call. The same command is returned until
// ClearPendingCommand is called.
func (r *Runner) PendingCommand() *Command {
	if r.pending == nil {
		r.pending = r.NewCommand()
	}
	return r.pending
}

// ClearPendingCommand drops the command under declaration
func (r *Runner) ClearPendingCommand() {
	r.pending = nil
}

// Define starts declaring a command in the current namespace. The builder
// holds its own command; it does not use the pending command.
func (r *Runner) Define(name string) *Builder {
	cmd := r.NewCommand()
	cmd.name = name
	return &Builder{runner: r, cmd: cmd}
}

// FindCommand resolves a colon-separated path from the root namespace
func (r *Runner) FindCommand(path string) (*Command, bool) {
	if path == "" {
		return nil, false
	}

	segments := strings.Split(path, constants.NamespaceSeparator)
	ns := r.root
	for _, seg := range segments[:len(segments)-1] {
		next, ok := ns.Namespace(seg)
		if !ok {
			return nil, false
		}
		ns = next
	}
	return ns.Command(segments[len(segments)-1])
}

// Commands returns the sorted listing of every command in the tree
func (r *Runner) Commands() []Entry {
	return r.root.ListCommandsWithDescriptions()
}

// Run dispatches args: the first element is the command path and the rest
// are passed to the command. An empty path or a help token prints the
// command listing and runs nothing.
func (r *Runner) Run(args ...string) (any, error) {
	if len(args) == 0 || args[0] == "" || constants.IsHelpToken(args[0]) {
		return nil, r.DisplayHelp()
	}

	path, rest := args[0], args[1:]
	cmd, ok := r.FindCommand(path)
	if !ok {
		r.logger.Debug("command not found", logging.Fields{"path": path})
		return nil, &CommandNotFoundError{Path: path}
	}

	r.logger.Debug("command resolved", logging.Fields{"path": path, "args": len(rest)})
	return cmd.Execute(rest...)
}

// HelpText renders the command listing table
func (r *Runner) HelpText() (string, error) {
	t := table.New().
		Title(fmt.Sprintf("%s commands:\n", r.program)).
		Header("Command", "Description").
		Divider("\t")

	for _, e := range r.Commands() {
		if err := t.Record(e.Name, e.Description); err != nil {
			return "", err
		}
	}
	return t.String(), nil
}

// DisplayHelp writes the command listing to the runner's output
func (r *Runner) DisplayHelp() error {
	text, err := r.HelpText()
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.out, text)
	return err
}

// Builder declares a command step by step and attaches it on Run
type Builder struct {
	runner *Runner
	cmd    *Command
}

// Describe sets the command description
func (b *Builder) Describe(text string) *Builder {
	b.cmd.description = text
	return b
}

// Param declares a parameter
func (b *Builder) Param(name string, opts ...param.Option) *Builder {
	b.cmd.AddParameter(param.New(name, opts...))
	return b
}

// Run sets the body and attaches the command to the runner's current
// namespace
func (b *Builder) Run(body Body) *Command {
	b.cmd.body = body
	b.cmd.namespace = b.runner.current
	b.runner.current.AddCommand(b.cmd)
	return b.cmd
}
