package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

var (
	matchNocase  bool
	matchInvert  bool
	matchCount   bool
	matchFind    bool
	matchWord    bool
	matchReverse bool
	matchNth     int
)

var matchCmd = &cobra.Command{
	Use:   "match <mask> [text...]",
	Short: "Filter lines by a wildcard mask or locate a pattern",
	Long: `Prints every argument, or every line of stdin, that matches a
wildcard mask. Masks support ?, *, [set], [!set], ranges and backslash
escapes.

With --find the first argument is a literal pattern and the byte offset
of its occurrence in the input is printed, -1 when it does not occur.

Examples:
  textkit match '*.go' main.go README.md
  ls | textkit match --nocase '[a-m]*'
  textkit match --find --nth 2 ab 'ab ab ab'
  textkit match --find --word --reverse id 'id idx id_2 id'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolVarP(&matchNocase, "nocase", "i", false, "ignore ASCII case")
	matchCmd.Flags().BoolVar(&matchInvert, "invert", false, "print lines that do not match")
	matchCmd.Flags().BoolVarP(&matchCount, "count", "c", false, "print only the number of matching lines")
	matchCmd.Flags().BoolVarP(&matchFind, "find", "f", false, "locate a literal pattern instead")
	matchCmd.Flags().BoolVarP(&matchWord, "word", "w", false, "with --find, match whole words only")
	matchCmd.Flags().BoolVarP(&matchReverse, "reverse", "r", false, "with --find, search from the end")
	matchCmd.Flags().IntVarP(&matchNth, "nth", "n", 1, "with --find, the occurrence to locate")
}

func matchCase() stringx.Case {
	if matchNocase {
		return stringx.NoCase
	}
	return stringx.CaseSensitive
}

func runMatch(cmd *cobra.Command, args []string) error {
	mask := args[0]

	if matchFind {
		s, err := readInput(cmd, args[1:])
		if err != nil {
			return err
		}
		dir := stringx.Forward
		if matchReverse {
			dir = stringx.Reverse
		}
		var pos int
		if matchWord {
			pos = stringx.FindWord(s, mask, matchCase(), dir)
		} else {
			pos = stringx.Find(s, mask, stringx.FindOptions{Case: matchCase(), Direction: dir, Occurrence: matchNth - 1})
		}
		output(cmd, pos)
		return nil
	}

	lines, err := readLines(cmd, args[1:])
	if err != nil {
		return err
	}
	count := 0
	for _, line := range lines {
		if stringx.MatchesMask(line, mask, matchCase()) == matchInvert {
			continue
		}
		count++
		if !matchCount {
			output(cmd, line)
		}
	}
	if matchCount {
		fmt.Fprintln(cmd.OutOrStdout(), count)
	}
	logger.Debug("Mask applied", mdwlog.Fields{"mask": mask, "lines": len(lines), "matched": count})
	return nil
}
