// Package table renders rows of string cells as fixed-width text.
//
// Every column is padded to the width of its widest cell, measured by a
// pluggable [WidthFunc], plus a configurable amount of inter-column
// padding. The last cell of each row is written verbatim with no
// trailing padding, so long trailing text (descriptions, messages) runs
// free without manufacturing trailing whitespace.
//
//	rows := [][]string{
//		{"1", "hello", "-0.555"},
//		{"1000000000", "world", ""},
//		{"3", "longer data", "3.5"},
//	}
//	fmt.Print(table.Render(rows))
//
// Rows may be ragged; short rows are right-padded with empty cells
// before layout, so they align column-for-column with the widest row.
package table

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidCell reports a non-string cell passed to [FromValues].
var ErrInvalidCell = errors.New("cell is not a string")

// WidthFunc measures the on-screen width of a cell. It must be total
// and return a non-negative value. The default is [Width]; substitute
// [PrintableWidth] for styled text or [DisplayWidth] for East-Asian
// text.
type WidthFunc func(string) int

// Option configures a [Formatter].
type Option func(*Formatter)

// WithPadding sets the number of spaces inserted between a cell and the
// next column, on top of width equalization. Negative values are
// clamped to zero. Default 1.
func WithPadding(n int) Option {
	return func(f *Formatter) {
		if n < 0 {
			n = 0
		}
		f.padding = n
	}
}

// WithWidthFunc sets the width measurement function. A nil fn is
// ignored. Default [Width].
func WithWidthFunc(fn WidthFunc) Option {
	return func(f *Formatter) {
		if fn != nil {
			f.width = fn
		}
	}
}

// Formatter renders tables with a fixed padding and width function. It
// holds no state between calls and is safe for concurrent use.
type Formatter struct {
	padding int
	width   WidthFunc
}

// New returns a Formatter with the given options applied.
func New(opts ...Option) *Formatter {
	f := &Formatter{padding: 1, width: Width}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Render formats rows with default options. See [Formatter.Render].
func Render(rows [][]string, opts ...Option) string {
	return New(opts...).Render(rows)
}

// Render returns one line per row, each terminated by a newline. Every
// cell except the last of its row is followed by enough spaces to reach
// its column's maximum width plus the configured padding; the last cell
// is written verbatim. Zero rows produce the empty string.
func (f *Formatter) Render(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	rows = normalize(rows)
	widths := columnWidths(rows, f.width)

	var sb strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			sb.WriteString(cell)
			if i == len(row)-1 {
				continue
			}
			pad := widths[i] - f.width(cell) + f.padding
			if pad < 0 {
				// Unreachable with a consistent width function, but an
				// inconsistent one must not produce a negative repeat.
				pad = 0
			}
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Write renders rows to w.
func (f *Formatter) Write(w io.Writer, rows [][]string) error {
	_, err := io.WriteString(w, f.Render(rows))
	return err
}

// FromValues converts rows of dynamically typed cells into string rows.
// Every cell must be a string; the first cell that is not fails with
// [ErrInvalidCell], identifying its position and type, and no rows are
// returned. Use this at the boundary where untyped data (decoded JSON,
// script input) enters table rendering, so invalid input fails before
// any output is produced.
func FromValues(values [][]any) ([][]string, error) {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: row %d column %d holds %T", ErrInvalidCell, i, j, v)
			}
			cells[j] = s
		}
		rows[i] = cells
	}
	return rows, nil
}

// normalize right-pads ragged rows with empty cells so every row has
// the table's maximum column count. Layout depends on this: widths are
// taken column-wise, and the no-padding rule applies to the last column
// of the table, not the last cell a short row happens to end on.
func normalize(rows [][]string) [][]string {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) == cols {
			out[i] = row
			continue
		}
		padded := make([]string, cols)
		copy(padded, row)
		out[i] = padded
	}
	return out
}

// columnWidths returns the per-column maximum of width over all cells.
// Rows must already be normalized to a common length.
func columnWidths(rows [][]string, width WidthFunc) []int {
	if len(rows) == 0 {
		return nil
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}
