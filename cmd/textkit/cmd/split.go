package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/splitx"
)

var (
	splitDelim     string
	splitMerge     bool
	splitTrim      bool
	splitPattern   bool
	splitQuotes    bool
	splitEscape    bool
	splitField     int
	splitPositions bool
	splitInTwo     bool
)

var splitCmd = &cobra.Command{
	Use:   "split [text]",
	Short: "Split text into tokens",
	Long: `Splits text at a delimiter and prints one token per line.

By default the delimiter is a literal string. With --pattern every byte
of the delimiter acts as a delimiter on its own. Quotes and backslash
escapes can protect delimiters inside tokens.

Examples:
  textkit split --delim , 'a,b,,c'
  textkit split --pattern --delim ' \t' --merge --trim '  a  b	c '
  textkit split --quotes --delim ' ' 'one "two three" four'
  textkit split --field 2 --delim : 'root:x:0:0'
  textkit split --in-two --delim = 'key=value=more'`,
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().StringVarP(&splitDelim, "delim", "d", ",", "delimiter")
	splitCmd.Flags().BoolVarP(&splitMerge, "merge", "m", false, "merge adjacent delimiters")
	splitCmd.Flags().BoolVar(&splitTrim, "trim", false, "drop empty tokens at both ends")
	splitCmd.Flags().BoolVarP(&splitPattern, "pattern", "p", false, "every delimiter byte separates tokens")
	splitCmd.Flags().BoolVarP(&splitQuotes, "quotes", "q", false, "single and double quotes protect delimiters")
	splitCmd.Flags().BoolVarP(&splitEscape, "escape", "e", false, "backslash escapes the next byte")
	splitCmd.Flags().IntVarP(&splitField, "field", "f", 0, "print only field N, counted from 1; every delimiter byte separates")
	splitCmd.Flags().BoolVar(&splitPositions, "positions", false, "prefix tokens with their byte offset")
	splitCmd.Flags().BoolVar(&splitInTwo, "in-two", false, "split at the first delimiter only")
}

func splitOptions() splitx.Options {
	return splitx.Options{
		MergeDelimiters: splitMerge,
		TruncateBegin:   splitTrim,
		TruncateEnd:     splitTrim,
		ByPattern:       splitPattern,
		CanEscape:       splitEscape,
		CanSingleQuote:  splitQuotes,
		CanDoubleQuote:  splitQuotes,
	}
}

func runSplit(cmd *cobra.Command, args []string) error {
	s, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	opts := splitOptions()

	switch {
	case splitField > 0:
		output(cmd, splitx.GetField(s, splitField-1, splitDelim, splitMerge))
		return nil
	case splitInTwo:
		left, right, found, err := splitx.SplitInTwo(s, splitDelim, opts)
		if err != nil {
			return err
		}
		output(cmd, left)
		if found {
			output(cmd, right)
		}
		return nil
	}

	tokens, err := splitx.SplitTokens(s, splitDelim, opts)
	if err != nil {
		return err
	}
	logger.Debug("Split input", mdwlog.Fields{"tokens": len(tokens), "delimiter": splitDelim})
	for _, tok := range tokens {
		if splitPositions {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", tok.Pos, tok.Text)
			continue
		}
		output(cmd, tok.Text)
	}
	return nil
}
