package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Errors
var (
	ErrMissingParameters    = errors.New("missing parameters")
	ErrInvalidShortSwitch   = errors.New("invalid short switch")
	ErrDuplicateShortSwitch = errors.New("duplicate short switch")
	ErrDuplicateParameter   = errors.New("duplicate parameter")
	ErrHelpRequested        = errors.New("help requested")
	ErrInvalidFlag          = errors.New("invalid flag")
	ErrNotBuilt             = errors.New("parser has not been built")
)

// MissingParametersError is returned when required parameters have no value
// after flags and defaults have been applied. Names keeps declaration order.
type MissingParametersError struct {
	Names []string
}

func (e *MissingParametersError) Error() string {
	return fmt.Sprintf("Missing parameters: %s.", strings.Join(e.Names, ", "))
}

// Is lets errors.Is match ErrMissingParameters
func (e *MissingParametersError) Is(target error) bool {
	return target == ErrMissingParameters
}

// InvalidShortSwitchError is returned when a parameter explicitly requests
// the reserved help switch or a switch that is not a single character.
type InvalidShortSwitchError struct {
	Param string
	Short string
}

func (e *InvalidShortSwitchError) Error() string {
	if e.Short == HelpShort {
		return fmt.Sprintf("The '-%s' short switch is reserved for help (parameter %s).", HelpShort, e.Param)
	}
	return fmt.Sprintf("short switch %q for parameter %s must be a single character", e.Short, e.Param)
}

// Is lets errors.Is match ErrInvalidShortSwitch
func (e *InvalidShortSwitchError) Is(target error) bool {
	return target == ErrInvalidShortSwitch
}

// HelpRequestedError carries the rendered usage when -h/--help was passed
type HelpRequestedError struct {
	Usage string
}

func (e *HelpRequestedError) Error() string {
	return "help requested"
}

// Is lets errors.Is match ErrHelpRequested
func (e *HelpRequestedError) Is(target error) bool {
	return target == ErrHelpRequested
}
