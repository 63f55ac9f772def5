package command

import (
	"errors"
	"fmt"

	"github.com/quocvuong92/excavator/internal/parser"
)

// Errors
var (
	ErrCommandNotFound = errors.New("command not found")
	ErrNoBody          = errors.New("command has no body")
	ErrNoRunner        = errors.New("command is not attached to a runner")
)

// Parser errors re-exported so callers need only this package
var (
	ErrMissingParameters  = parser.ErrMissingParameters
	ErrInvalidShortSwitch = parser.ErrInvalidShortSwitch
	ErrHelpRequested      = parser.ErrHelpRequested
	ErrInvalidFlag        = parser.ErrInvalidFlag
)

// MissingParametersError lists required parameters that received no value
type MissingParametersError = parser.MissingParametersError

// HelpRequestedError carries a command's usage text
type HelpRequestedError = parser.HelpRequestedError

// CommandNotFoundError is returned when a path does not resolve to a command
type CommandNotFoundError struct {
	Path string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Path)
}

// Is lets errors.Is match ErrCommandNotFound
func (e *CommandNotFoundError) Is(target error) bool {
	return target == ErrCommandNotFound
}
