// Package display handles terminal output for the dispatcher: error
// messages, markdown rendering and progress spinners.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ShowError prints an error message to w in the dispatcher's format
func ShowError(w io.Writer, msg string) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Error: %s\n", msg)
}

// ShowList prints a heading followed by one indented line per item
func ShowList(w io.Writer, heading string, items []string) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintln(w, heading)
	for _, item := range items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}

// ShowContent writes text to w, ensuring it ends in a newline
func ShowContent(w io.Writer, text string) {
	if w == nil {
		w = os.Stdout
	}
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	io.WriteString(w, text)
}
