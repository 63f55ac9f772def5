// Package param describes the named inputs a command accepts.
package param

// Param describes one named input of a command.
//
// A Param is required unless it carries a default value or was declared
// optional. The short switch may be empty at declaration time; the option
// parser assigns one while building its flag grammar.
type Param struct {
	name        string
	def         any
	hasDefault  bool
	optional    bool
	description string
	short       string
}

// Option configures a Param at declaration time
type Option func(*Param)

// Default sets the value used when the parameter is not supplied.
// A nil default is treated as no default.
func Default(v any) Option {
	return func(p *Param) {
		if v == nil {
			return
		}
		p.def = v
		p.hasDefault = true
	}
}

// Optional marks the parameter as not required
func Optional() Option {
	return func(p *Param) {
		p.optional = true
	}
}

// Description sets the help text shown in command usage
func Description(text string) Option {
	return func(p *Param) {
		p.description = text
	}
}

// Short requests an explicit single-character switch (e.g. "r" for -r)
func Short(s string) Option {
	return func(p *Param) {
		p.short = s
	}
}

// New creates a Param with the given name and options
func New(name string, opts ...Option) *Param {
	p := &Param{name: name}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the parameter name
func (p *Param) Name() string { return p.name }

// Default returns the default value and whether one was declared
func (p *Param) Default() (any, bool) { return p.def, p.hasDefault }

// Description returns the help text
func (p *Param) Description() string { return p.description }

// ShortSwitch returns the assigned short switch, or "" if none
func (p *Param) ShortSwitch() string { return p.short }

// SetShortSwitch assigns the short switch. Only the option parser should call this.
func (p *Param) SetShortSwitch(s string) { p.short = s }

// Required reports whether a value must be supplied
func (p *Param) Required() bool {
	return !p.Optional()
}

// Optional reports whether the parameter may be omitted
func (p *Param) Optional() bool {
	return p.hasDefault || p.optional
}
