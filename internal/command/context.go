package command

import (
	"fmt"
	"io"
	"os"

	"github.com/quocvuong92/excavator/internal/display"
	"github.com/quocvuong92/excavator/internal/logging"
)

// Context is what a command body runs against: the parsed parameters of the
// current invocation, the runner for invoking other commands, and whatever
// helpers the runner was configured with.
type Context struct {
	Runner         *Runner
	Command        *Command
	Params         Values
	RawParams      []string
	UnparsedParams []string
	InvocationID   string

	Out    io.Writer
	Err    io.Writer
	Logger *logging.FieldLogger

	helpers map[string]any
}

func (c *Context) init() {
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Err == nil {
		c.Err = os.Stderr
	}
	if c.Params == nil {
		c.Params = Values{}
	}
}

// Execute runs another command by its full path with pre-parsed params and
// returns its result. Errors from the nested command are returned unchanged.
func (c *Context) Execute(path string, params Values) (any, error) {
	if c.Runner == nil {
		return nil, ErrNoRunner
	}
	cmd, ok := c.Runner.FindCommand(path)
	if !ok {
		return nil, &CommandNotFoundError{Path: path}
	}
	return cmd.ExecuteWithParams(params)
}

// Helper returns a capability registered with WithHelper
func (c *Context) Helper(name string) (any, bool) {
	h, ok := c.helpers[name]
	return h, ok
}

// Printf writes formatted output to Out
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// Println writes a line to Out
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Out, args...)
}

// Markdown renders text for the terminal. The raw text is returned if the
// renderer is unavailable.
func (c *Context) Markdown(text string) string {
	out, err := display.RenderMarkdown(text)
	if err != nil {
		if c.Logger != nil {
			c.Logger.Debug("markdown rendering failed", logging.Fields{"error": err.Error()})
		}
		return text
	}
	return out
}

// Spinner starts a progress spinner on Err. Callers must Stop it.
func (c *Context) Spinner(msg string) *display.Spinner {
	s := display.NewSpinner(c.Err, msg)
	s.Start()
	return s
}
