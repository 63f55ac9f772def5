package display

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress while a command body waits on something
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a stopped spinner writing to w with msg after it
func NewSpinner(w io.Writer, msg string) *Spinner {
	if w == nil {
		w = os.Stderr
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + msg
	return &Spinner{s: s}
}

// Start begins animating
func (sp *Spinner) Start() { sp.s.Start() }

// Stop halts the animation and clears the line
func (sp *Spinner) Stop() { sp.s.Stop() }

// UpdateMessage replaces the text shown after the spinner
func (sp *Spinner) UpdateMessage(msg string) {
	sp.s.Lock()
	sp.s.Suffix = " " + msg
	sp.s.Unlock()
}

// Active reports whether the spinner is running
func (sp *Spinner) Active() bool { return sp.s.Active() }
