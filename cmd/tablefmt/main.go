// Package main implements tablefmt, a column-aligning filter in the
// spirit of column -t: it reads delimited lines from stdin or files and
// writes them back with every column padded to a common width.
package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bjaus/kit"
	"github.com/bjaus/kit/fsutil"
	"github.com/bjaus/kit/strutil"
	"github.com/bjaus/kit/table"
)

// config holds defaults loadable from a TOML file via --config.
type config struct {
	Padding   int    `toml:"padding"`
	Delimiter string `toml:"delimiter"`
}

var (
	flagPadding   int
	flagDelimiter string
	flagMatch     string
	flagANSI      bool
	flagCJK       bool
	flagStrip     bool
	flagSummary   bool
	flagConfig    string
)

var rootCmd = &cobra.Command{
	Use:   "tablefmt [file...]",
	Short: "Align delimited text into fixed-width columns",
	Long: `tablefmt reads lines from stdin or the given files, splits each line
into fields, and prints the lines back with every column padded to the
width of its widest cell. The last column is never padded.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().IntVarP(&flagPadding, "padding", "p", 1, "Spaces between columns")
	rootCmd.Flags().StringVarP(&flagDelimiter, "delimiter", "d", "", "Field delimiter (default: runs of whitespace)")
	rootCmd.Flags().StringVarP(&flagMatch, "match", "m", "", "Only format lines matching this regexp")
	rootCmd.Flags().BoolVar(&flagANSI, "ansi", false, "Measure widths ignoring ANSI escape sequences")
	rootCmd.Flags().BoolVar(&flagCJK, "cjk", false, "Measure widths with East-Asian wide runes as two columns")
	rootCmd.Flags().BoolVar(&flagStrip, "strip", false, "Remove ANSI escape sequences from output")
	rootCmd.Flags().BoolVar(&flagSummary, "summary", false, "Report row counts on stderr")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "TOML file with default padding and delimiter")
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("tablefmt")
	}
}

func run(cmd *cobra.Command, args []string) error {
	if flagConfig != "" {
		cfg, err := fsutil.ReadTOML[config](flagConfig)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("padding") && cfg.Padding > 0 {
			flagPadding = cfg.Padding
		}
		if !cmd.Flags().Changed("delimiter") && cfg.Delimiter != "" {
			flagDelimiter = cfg.Delimiter
		}
	}

	var match *regexp.Regexp
	if flagMatch != "" {
		re, err := regexp.Compile(flagMatch)
		if err != nil {
			return fmt.Errorf("invalid --match pattern: %w", err)
		}
		match = re
	}

	lines, err := readLines(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	kept := lines
	if match != nil {
		kept = kept[:0:0]
		for _, line := range lines {
			if match.MatchString(line) {
				kept = append(kept, line)
			}
		}
	}

	if err := render(cmd.OutOrStdout(), kept); err != nil {
		return err
	}

	if flagSummary {
		fmt.Fprintln(cmd.ErrOrStderr(), summary(len(lines), len(kept)))
	}
	return nil
}

// readLines gathers input lines from the named files, or from in when
// no files are given.
func readLines(in io.Reader, paths []string) ([]string, error) {
	matchAll := regexp.MustCompile("")
	if len(paths) == 0 {
		return fsutil.FilterLines(in, matchAll)
	}
	var lines []string
	for _, path := range paths {
		got, err := fsutil.Grep(path, matchAll)
		if err != nil {
			return nil, err
		}
		lines = append(lines, got...)
	}
	return lines, nil
}

func render(w io.Writer, lines []string) error {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, splitFields(line, flagDelimiter, flagStrip))
	}

	opts := []table.Option{table.WithPadding(flagPadding)}
	switch {
	case flagANSI:
		opts = append(opts, table.WithWidthFunc(table.PrintableWidth))
	case flagCJK:
		opts = append(opts, table.WithWidthFunc(table.DisplayWidth))
	}
	return table.New(opts...).Write(w, rows)
}

// splitFields splits a line on delim, or on runs of whitespace when
// delim is empty, optionally stripping ANSI escapes from each field.
func splitFields(line, delim string, strip bool) []string {
	var fields []string
	if delim == "" {
		fields = strings.Fields(line)
	} else {
		fields = strings.Split(line, delim)
	}
	if strip {
		for i, f := range fields {
			fields[i] = strutil.StripANSI(f)
		}
	}
	return fields
}

func summary(total, kept int) string {
	s := "formatted " + strutil.Pluralize(kept, "row")
	return kit.AppendIf(s, kept < total, func() string {
		return fmt.Sprintf(" (%s filtered out)", strutil.Pluralize(total-kept, "line"))
	})
}
