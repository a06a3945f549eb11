package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/JackWReid/lsel/internal/entry"
	"github.com/JackWReid/lsel/internal/selector"
)

// Version is set at build time.
var Version = "dev"

// ErrNoInput is returned when stdin held no entries to choose from.
var ErrNoInput = errors.New("no input entries")

var (
	numberedFlag bool
	idsFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "lsel",
	Short: "Interactive list selector for pipelines",
	Long: `lsel reads lines from stdin, lets you pick any number of them in a
full-screen terminal view, and prints the picked lines to stdout.
The selector runs on the controlling tty, so both ends of the tool
can sit in a pipe.`,
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(os.Stdin, os.Stdout)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVarP(&numberedFlag, "numbered", "N", false, "prefix entries with zero-padded line numbers")
	rootCmd.Flags().BoolVarP(&idsFlag, "ids", "i", false, "treat lines as identifier::text and print identifiers")
}

func run(in io.Reader, out io.Writer) error {
	lines, err := entry.Read(in)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return ErrNoInput
	}

	entries := parseEntries(lines, idsFlag)
	res, err := selector.Select(entry.DisplayLines(entries, numberedFlag))
	if err != nil {
		return err
	}
	if !res.Confirmed {
		return nil
	}

	writeSelection(out, entries, res.Indices, idsFlag)
	return nil
}

// parseEntries splits identifier prefixes only in ids mode; otherwise the
// whole line is the entry text, separator or not.
func parseEntries(lines []string, ids bool) []entry.Entry {
	entries := make([]entry.Entry, len(lines))
	for i, line := range lines {
		if ids {
			entries[i] = entry.Parse(line)
		} else {
			entries[i] = entry.Entry{Text: line}
		}
	}
	return entries
}

// writeSelection prints one line per selected entry: its identifier in ids
// mode, its text otherwise.
func writeSelection(w io.Writer, entries []entry.Entry, indices []int, ids bool) {
	for _, idx := range indices {
		if ids {
			fmt.Fprintln(w, entries[idx].ID)
		} else {
			fmt.Fprintln(w, entries[idx].Text)
		}
	}
}
