// Package table renders left-aligned text tables with a title, a header row
// and a configurable column divider.
package table

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultDivider separates columns unless Divider is called
const DefaultDivider = " | "

// ErrInvalidDataForColumns is returned when a record's value count differs
// from the number of headers
var ErrInvalidDataForColumns = errors.New("invalid data for columns")

// Table accumulates headers and records and renders them with every column
// padded to its widest cell
type Table struct {
	title   string
	headers []string
	records [][]string
	widths  []int
	divider string
}

// New creates an empty Table using DefaultDivider
func New() *Table {
	return &Table{divider: DefaultDivider}
}

// Title sets the line printed above the header row
func (t *Table) Title(title string) *Table {
	t.title = title
	return t
}

// Header appends one or more column headers
func (t *Table) Header(headers ...string) *Table {
	for _, h := range headers {
		t.headers = append(t.headers, h)
		t.widths = append(t.widths, utf8.RuneCountInString(h))
	}
	return t
}

// Divider sets the string placed between columns
func (t *Table) Divider(divider string) *Table {
	t.divider = divider
	return t
}

// Record appends a row. It must have exactly one value per header.
func (t *Table) Record(values ...string) error {
	if len(values) != len(t.headers) {
		return fmt.Errorf("%w: record has %d values, table has %d headers",
			ErrInvalidDataForColumns, len(values), len(t.headers))
	}
	for i, v := range values {
		if w := utf8.RuneCountInString(v); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.records = append(t.records, append([]string(nil), values...))
	return nil
}

// String renders the title, header row and records, followed by a blank line
func (t *Table) String() string {
	var sb strings.Builder

	if t.title != "" {
		sb.WriteString(t.title)
		sb.WriteString("\n")
	}

	t.writeRow(&sb, t.headers)
	for _, record := range t.records {
		t.writeRow(&sb, record)
	}
	sb.WriteString("\n")

	return sb.String()
}

func (t *Table) writeRow(sb *strings.Builder, row []string) {
	for i, val := range row {
		sb.WriteString(val)
		if pad := t.widths[i] - utf8.RuneCountInString(val); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		if i != len(row)-1 {
			sb.WriteString(t.divider)
		}
	}
	sb.WriteString("\n")
}
