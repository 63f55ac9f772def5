package command

import (
	"time"

	"github.com/google/uuid"

	"github.com/quocvuong92/excavator/internal/logging"
	"github.com/quocvuong92/excavator/internal/param"
	"github.com/quocvuong92/excavator/internal/parser"
)

// Values maps parameter names to values
type Values = parser.Values

// Body is the logic a command runs. Its return value is passed back to the
// caller of Execute.
type Body func(ctx *Context) (any, error)

// Command is a named unit of work with declared parameters and a body.
//
// The parser is built on first execution and reused afterwards. The
// per-invocation fields (raw, parsed and unparsed params) describe the most
// recent execution only.
type Command struct {
	runner      *Runner
	name        string
	description string
	namespace   *Namespace
	params      []*param.Param
	body        Body

	parser      parser.OptionParser
	parserBuilt bool

	rawParams      []string
	parsedParams   Values
	unparsedParams []string
}

// NewCommand creates a detached command. Commands created this way cannot
// invoke other commands from their body; use Runner.NewCommand for that.
func NewCommand(name string, body Body) *Command {
	return &Command{name: name, body: body}
}

// Name returns the local name
func (c *Command) Name() string { return c.name }

// SetName sets the local name
func (c *Command) SetName(name string) { c.name = name }

// Description returns the one-line description
func (c *Command) Description() string { return c.description }

// SetDescription sets the one-line description
func (c *Command) SetDescription(text string) { c.description = text }

// Namespace returns the owning namespace, or nil
func (c *Command) Namespace() *Namespace { return c.namespace }

// SetNamespace sets the owning namespace
func (c *Command) SetNamespace(ns *Namespace) { c.namespace = ns }

// SetBody sets the logic run by Execute
func (c *Command) SetBody(body Body) { c.body = body }

// Runner returns the runner the command was created by, or nil
func (c *Command) Runner() *Runner { return c.runner }

// Parameters returns the declared parameters in declaration order
func (c *Command) Parameters() []*param.Param { return c.params }

// AddParameter appends a parameter declaration. Names are not checked for
// duplicates here; the parser rejects them when it is built.
func (c *Command) AddParameter(p *param.Param) {
	c.params = append(c.params, p)
}

// FullName returns the colon-joined path of the command
func (c *Command) FullName() string {
	if c.namespace == nil {
		return c.name
	}
	return c.namespace.FullName(c.name)
}

// RawParams returns the arguments of the last execution
func (c *Command) RawParams() []string { return c.rawParams }

// Params returns the parsed values of the last execution
func (c *Command) Params() Values { return c.parsedParams }

// UnparsedParams returns the arguments the parser did not consume
func (c *Command) UnparsedParams() []string { return c.unparsedParams }

// Usage returns the command's help text, building the parser if needed
func (c *Command) Usage() (string, error) {
	if err := c.buildParser(); err != nil {
		return "", err
	}
	return c.parser.Usage(), nil
}

// Execute parses args against the command's parameters and runs the body.
// Parser and body errors are returned unchanged.
func (c *Command) Execute(args ...string) (any, error) {
	return c.execute(args, nil)
}

// ExecuteWithParams runs the body with values taken as already parsed.
// Defaults and required-parameter checks still apply.
func (c *Command) ExecuteWithParams(values Values) (any, error) {
	if values == nil {
		values = Values{}
	}
	return c.execute(nil, values)
}

func (c *Command) execute(args []string, preset Values) (any, error) {
	if err := c.buildParser(); err != nil {
		return nil, err
	}

	c.rawParams = append([]string(nil), args...)
	c.parsedParams = preset.Clone()
	c.unparsedParams = append([]string(nil), args...)

	if len(c.params) > 0 {
		parsed, rest, err := c.parser.Parse(args, preset)
		if err != nil {
			return nil, err
		}
		c.parsedParams = parsed
		c.unparsedParams = rest
	}

	return c.run()
}

func (c *Command) run() (any, error) {
	if c.body == nil {
		return nil, ErrNoBody
	}

	ctx := c.newContext()
	start := time.Now()
	ctx.Logger.Debug("executing command", logging.Fields{
		"params":   len(c.parsedParams),
		"unparsed": len(c.unparsedParams),
	})

	result, err := c.body(ctx)
	if err != nil {
		ctx.Logger.Debug("command failed", logging.Fields{"duration": time.Since(start).String(), "error": err.Error()})
		return result, err
	}

	ctx.Logger.Debug("command finished", logging.Fields{"duration": time.Since(start).String()})
	return result, nil
}

func (c *Command) newContext() *Context {
	id := uuid.NewString()
	ctx := &Context{
		Runner:         c.runner,
		Command:        c,
		Params:         c.parsedParams,
		RawParams:      c.rawParams,
		UnparsedParams: c.unparsedParams,
		InvocationID:   id,
	}

	logger := logging.Discard()
	if c.runner != nil {
		ctx.Out = c.runner.out
		ctx.Err = c.runner.errOut
		ctx.helpers = c.runner.helpers
		logger = c.runner.logger
	}
	ctx.Logger = logger.WithFields(logging.Fields{"command": c.FullName(), "invocation": id})
	ctx.init()

	return ctx
}

func (c *Command) buildParser() error {
	if c.parserBuilt {
		return nil
	}
	if c.parser == nil {
		factory := parser.Factory(parser.DefaultFactory)
		if c.runner != nil && c.runner.newParser != nil {
			factory = c.runner.newParser
		}
		c.parser = factory()
	}
	if err := c.parser.Build(c.FullName(), c.description, c.params); err != nil {
		return err
	}
	c.parserBuilt = true
	return nil
}
