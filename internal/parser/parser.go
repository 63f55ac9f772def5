package parser

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/quocvuong92/excavator/internal/param"
)

// Help flag constants
const (
	HelpShort       = "h"
	HelpLong        = "help"
	helpDescription = "This message."
)

// Usage layout
const (
	summaryIndent = "    "
	summaryWidth  = 32
)

// flagSpec is one entry of the built grammar
type flagSpec struct {
	param *param.Param
	long  string // without leading dashes
	short string // "" when the parameter is long-flag only
}

// Parser is the default OptionParser, scanning flags with pflag
type Parser struct {
	name        string
	description string
	params      []*param.Param
	flags       []flagSpec
	required    []flagSpec
	optional    []flagSpec
	built       bool
}

// New creates an unbuilt Parser
func New() *Parser {
	return &Parser{}
}

// Name returns the command name the parser was built with
func (p *Parser) Name() string {
	return p.name
}

// FlagName renders a parameter name as a long flag name: "server_id" -> "server-id"
func FlagName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// Build derives the flag grammar for params. Short switches are assigned on
// the Param values themselves so later parameters see earlier claims.
func (p *Parser) Build(name, description string, params []*param.Param) error {
	if p.built {
		return nil
	}

	seen := map[string]bool{HelpLong: true}
	explicit := make(map[string]string, len(params))
	for _, prm := range params {
		long := FlagName(prm.Name())
		if seen[long] {
			return fmt.Errorf("%w: --%s", ErrDuplicateParameter, long)
		}
		seen[long] = true

		s := prm.ShortSwitch()
		if s == "" {
			continue
		}
		if err := validateShort(prm.Name(), s); err != nil {
			return err
		}
		if owner, ok := explicit[s]; ok {
			return fmt.Errorf("%w: -%s used by %s and %s", ErrDuplicateShortSwitch, s, owner, prm.Name())
		}
		explicit[s] = prm.Name()
	}

	p.name = name
	p.description = description
	p.params = params
	p.flags = p.flags[:0]
	p.required = p.required[:0]
	p.optional = p.optional[:0]

	for _, prm := range params {
		spec := flagSpec{
			param: prm,
			long:  FlagName(prm.Name()),
			short: p.shortSwitch(prm),
		}
		p.flags = append(p.flags, spec)
		if prm.Required() {
			p.required = append(p.required, spec)
		} else {
			p.optional = append(p.optional, spec)
		}
	}

	p.built = true
	return nil
}

func validateShort(name, s string) error {
	if s == HelpShort || len(s) != 1 || s[0] == '-' {
		return &InvalidShortSwitchError{Param: name, Short: s}
	}
	return nil
}

// shortSwitch returns the parameter's explicit switch, or claims the first
// character of its name that no other parameter holds. Word separators are
// never candidates. Returns "" when every candidate is taken.
func (p *Parser) shortSwitch(prm *param.Param) string {
	if s := prm.ShortSwitch(); s != "" {
		return s
	}

	for _, r := range prm.Name() {
		if r >= utf8.RuneSelf || r == '-' || r == '_' {
			continue
		}
		c := string(r)
		if c == HelpShort || p.claimed(prm, c) {
			continue
		}
		prm.SetShortSwitch(c)
		return c
	}
	return ""
}

// claimed reports whether any parameter other than prm holds switch c
func (p *Parser) claimed(prm *param.Param, c string) bool {
	for _, other := range p.params {
		if other != prm && other.ShortSwitch() == c {
			return true
		}
	}
	return false
}

// Parse scans args against the built grammar. A fresh pflag.FlagSet is used
// for every call so values never carry over between invocations.
func (p *Parser) Parse(args []string, preset Values) (Values, []string, error) {
	if !p.built {
		return nil, args, ErrNotBuilt
	}

	parsed := make(Values, len(p.flags))
	for k, v := range preset {
		parsed[k] = v
	}

	fs := pflag.NewFlagSet(p.name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SetNormalizeFunc(normalizeFlagName)

	raw := make(map[string]*string, len(p.flags))
	for _, f := range p.flags {
		raw[f.param.Name()] = fs.StringP(f.long, f.short, "", f.param.Description())
	}
	help := fs.BoolP(HelpLong, HelpShort, false, helpDescription)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, args, &HelpRequestedError{Usage: p.Usage()}
		}
		return nil, args, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if *help {
		return nil, args, &HelpRequestedError{Usage: p.Usage()}
	}

	for _, f := range p.flags {
		name := f.param.Name()
		if parsed.Has(name) {
			continue
		}
		if fs.Changed(f.long) {
			parsed[name] = *raw[name]
		}
	}

	p.applyDefaults(parsed)
	if err := p.detectMissing(parsed); err != nil {
		return nil, args, err
	}

	return parsed, fs.Args(), nil
}

func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(FlagName(name))
}

func (p *Parser) applyDefaults(parsed Values) {
	for _, prm := range p.params {
		def, ok := prm.Default()
		if !ok || parsed.Has(prm.Name()) {
			continue
		}
		parsed[prm.Name()] = def
	}
}

func (p *Parser) detectMissing(parsed Values) error {
	var missing []string
	for _, prm := range p.params {
		if prm.Required() && !parsed.Has(prm.Name()) {
			missing = append(missing, prm.Name())
		}
	}
	if len(missing) > 0 {
		return &MissingParametersError{Names: missing}
	}
	return nil
}

// Usage renders the banner, the required and optional flag blocks and the
// help flag, with descriptions aligned in one column.
func (p *Parser) Usage() string {
	var sb strings.Builder

	if p.description != "" {
		sb.WriteString(p.description)
		sb.WriteString("\n\n")
	}
	sb.WriteString(fmt.Sprintf("USAGE: %s [options]\n", p.name))

	if len(p.required) > 0 {
		sb.WriteString("\nREQUIRED:\n")
		for _, f := range p.required {
			writeSummary(&sb, f.short, flagArg(f), describe(f.param))
		}
	}

	if len(p.optional) > 0 {
		sb.WriteString("\nOPTIONAL:\n")
		for _, f := range p.optional {
			writeSummary(&sb, f.short, flagArg(f), describe(f.param))
		}
	}

	sb.WriteString("\n")
	writeSummary(&sb, HelpShort, "--"+HelpLong, []string{helpDescription})

	return sb.String()
}

func flagArg(f flagSpec) string {
	return fmt.Sprintf("--%s=%s", f.long, strings.ToUpper(f.param.Name()))
}

func describe(prm *param.Param) []string {
	var lines []string
	if d := prm.Description(); d != "" {
		lines = append(lines, d)
	}
	if def, ok := prm.Default(); ok {
		lines = append(lines, fmt.Sprintf("Defaults to: %v", def))
	}
	return lines
}

// writeSummary writes one flag entry. Long-only flags are padded to line up
// with "-x, " entries; a flag field wider than the column pushes the
// descriptions onto their own lines.
func writeSummary(sb *strings.Builder, short, long string, desc []string) {
	left := "    " + long
	if short != "" {
		left = "-" + short + ", " + long
	}

	pad := strings.Repeat(" ", summaryWidth+1)
	sb.WriteString(summaryIndent)

	if len(desc) == 0 {
		sb.WriteString(left)
		sb.WriteString("\n")
		return
	}

	rest := desc
	if len(left) < summaryWidth+1 {
		sb.WriteString(fmt.Sprintf("%-*s %s\n", summaryWidth, left, desc[0]))
		rest = desc[1:]
	} else {
		sb.WriteString(left)
		sb.WriteString("\n")
	}

	for _, line := range rest {
		sb.WriteString(summaryIndent)
		sb.WriteString(pad)
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}
