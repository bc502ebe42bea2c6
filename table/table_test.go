package table_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bjaus/kit/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = [][]string{
	{"1", "hello", "-0.555"},
	{"1000000000", "world", ""},
	{"3", "longer data", "3.5"},
}

func TestRenderDefaults(t *testing.T) {
	t.Parallel()
	got := table.Render(sample)
	want := "1          hello       -0.555\n" +
		"1000000000 world       \n" +
		"3          longer data 3.5\n"
	assert.Equal(t, want, got)
}

func TestRenderPaddingZero(t *testing.T) {
	t.Parallel()
	got := table.Render(sample, table.WithPadding(0))
	want := "1         hello      -0.555\n" +
		"1000000000world      \n" +
		"3         longer data3.5\n"
	assert.Equal(t, want, got)
}

func TestRenderPaddingIncrement(t *testing.T) {
	t.Parallel()
	// Raising padding by one adds exactly one space after every
	// non-last cell and leaves last cells untouched.
	for p := 0; p < 3; p++ {
		a := strings.Split(table.Render(sample, table.WithPadding(p)), "\n")
		b := strings.Split(table.Render(sample, table.WithPadding(p+1)), "\n")
		require.Equal(t, len(a), len(b))
		for i := range a {
			if a[i] == "" {
				continue
			}
			assert.Equal(t, len(a[i])+countNonLastCells(sample, i), len(b[i]), "padding %d -> %d, line %d", p, p+1, i)
		}
	}
}

func countNonLastCells(rows [][]string, i int) int {
	if i >= len(rows) {
		return 0
	}
	return len(rows[i]) - 1
}

func TestRenderEmpty(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", table.Render(nil))
	assert.Equal(t, "", table.Render([][]string{}))
}

func TestRenderSingleColumnNoTrailingSpaces(t *testing.T) {
	t.Parallel()
	got := table.Render([][]string{{"x"}, {"yy"}, {"zzz"}})
	assert.Equal(t, "x\nyy\nzzz\n", got)
}

func TestRenderLastCellUnpadded(t *testing.T) {
	t.Parallel()
	got := table.Render([][]string{
		{"a", "short"},
		{"b", "a much longer trailing description"},
	})
	for _, line := range strings.SplitAfter(got, "\n") {
		if line == "" {
			continue
		}
		assert.False(t, strings.HasSuffix(line, " \n"), "line %q has trailing padding", line)
	}
}

func TestRenderRaggedRows(t *testing.T) {
	t.Parallel()
	ragged := table.Render([][]string{{"a"}, {"bb", "c"}})
	explicit := table.Render([][]string{{"a", ""}, {"bb", "c"}})
	assert.Equal(t, explicit, ragged)
	assert.Equal(t, "a  \nbb c\n", ragged)
}

func TestRenderLineCountEqualsRowCount(t *testing.T) {
	t.Parallel()
	for _, rows := range [][][]string{
		nil,
		{{"a"}},
		sample,
		{{"a"}, {"b", "c"}, {"d", "e", "f"}},
	} {
		got := table.Render(rows)
		assert.Equal(t, len(rows), strings.Count(got, "\n"))
	}
}

func TestRenderZeroWidthFunc(t *testing.T) {
	t.Parallel()
	// A width function that measures everything as zero pads every
	// non-last cell by exactly the configured padding.
	got := table.Render(sample,
		table.WithPadding(2),
		table.WithWidthFunc(func(string) int { return 0 }),
	)
	want := "1  hello  -0.555\n" +
		"1000000000  world  \n" +
		"3  longer data  3.5\n"
	assert.Equal(t, want, got)
}

func TestRenderNegativePaddingClamped(t *testing.T) {
	t.Parallel()
	got := table.Render(sample, table.WithPadding(-5))
	want := table.Render(sample, table.WithPadding(0))
	assert.Equal(t, want, got)
}

func TestRenderInconsistentWidthFuncNeverUnderflows(t *testing.T) {
	t.Parallel()
	// Returns a different answer for the same cell on alternating
	// calls. The render must clamp, not panic on a negative repeat.
	n := 0
	flaky := func(s string) int {
		n++
		if n%2 == 0 {
			return len(s) + 50
		}
		return len(s)
	}
	assert.NotPanics(t, func() {
		table.Render(sample, table.WithWidthFunc(flaky))
	})
}

func TestRenderStyledCells(t *testing.T) {
	t.Parallel()
	styled := "\x1b[31mred\x1b[0m"
	got := table.Render(
		[][]string{{styled, "x"}, {"grey", "y"}},
		table.WithWidthFunc(table.PrintableWidth),
	)
	lines := strings.Split(got, "\n")
	// "red" measures 3, "grey" 4: the styled cell gets one extra space.
	assert.Equal(t, styled+"  x", lines[0])
	assert.Equal(t, "grey y", lines[1])
}

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := table.New().Write(&buf, sample)
	require.NoError(t, err)
	assert.Equal(t, table.Render(sample), buf.String())
}

func TestWriteError(t *testing.T) {
	t.Parallel()
	err := table.New().Write(&errWriter{}, sample)
	assert.Error(t, err)
}

func TestFromValues(t *testing.T) {
	t.Parallel()
	rows, err := table.FromValues([][]any{
		{"a", "b"},
		{"c"},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, rows)
}

func TestFromValuesInvalidCell(t *testing.T) {
	t.Parallel()
	rows, err := table.FromValues([][]any{
		{"a", "b"},
		{"c", 42},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrInvalidCell)
	assert.Contains(t, err.Error(), "row 1 column 1")
	assert.Contains(t, err.Error(), "int")
	assert.Nil(t, rows)
}

func TestFromValuesEmpty(t *testing.T) {
	t.Parallel()
	rows, err := table.FromValues(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDefaultWidthHangul(t *testing.T) {
	t.Parallel()
	// Hangul cells measure double-width, so the Latin cell below them
	// gets extra alignment space.
	got := table.Render([][]string{
		{"한글", "x"},
		{"abcd", "y"},
	})
	lines := strings.Split(got, "\n")
	assert.Equal(t, "한글 x", lines[0])
	assert.Equal(t, "abcd y", lines[1])
}

type errWriter struct{}

var errWriteFailed = errors.New("write failed")

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}
