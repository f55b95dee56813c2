package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/utf8x"
)

var (
	utf8Source      string
	utf8Target      string
	utf8Placeholder string
	utf8Form        string
)

var utf8Cmd = &cobra.Command{
	Use:   "utf8",
	Short: "Validate, measure and convert UTF-8 text",
	Long: `Inspects UTF-8 text and converts between UTF-8 and the single byte
encodings ISO-8859-1 and Windows-1252.

Examples:
  textkit utf8 check < data.txt
  textkit utf8 count 'naïve 日本'
  textkit utf8 guess < legacy.txt
  textkit utf8 from-utf8 --encoding latin1 --placeholder '?' < in.txt > out.txt
  textkit utf8 to-utf8 < legacy.txt
  textkit utf8 normalize --form NFD café`,
}

var utf8CheckCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Report the first invalid byte",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		if err := utf8x.Validate(s); err != nil {
			return err
		}
		output(cmd, "valid")
		return nil
	},
}

var utf8CountCmd = &cobra.Command{
	Use:   "count [text]",
	Short: "Count bytes, characters and display columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "bytes:      %d\n", len(s))
		fmt.Fprintf(w, "valid:      %d\n", utf8x.ValidBytesCount(s))
		fmt.Fprintf(w, "characters: %d\n", utf8x.ValidSymbolCount(s))
		if utf8x.IsValid(s) {
			fmt.Fprintf(w, "columns:    %d\n", runewidth.StringWidth(s))
		}
		return nil
	},
}

var utf8GuessCmd = &cobra.Command{
	Use:   "guess [text]",
	Short: "Guess the encoding of text",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		output(cmd, utf8x.GuessEncoding(s))
		return nil
	},
}

var utf8ToCmd = &cobra.Command{
	Use:   "to-utf8 [text]",
	Short: "Convert from a single byte encoding to UTF-8",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStep(cmd, args, "to-utf8", map[string]any{"encoding": utf8Source})
	},
}

var utf8FromCmd = &cobra.Command{
	Use:   "from-utf8 [text]",
	Short: "Convert from UTF-8 to a single byte encoding",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := map[string]any{"encoding": utf8Target}
		if cmd.Flags().Changed("placeholder") {
			params["placeholder"] = utf8Placeholder
		}
		return runStep(cmd, args, "from-utf8", params)
	},
}

var utf8NormalizeCmd = &cobra.Command{
	Use:   "normalize [text]",
	Short: "Apply a Unicode normalization form",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStep(cmd, args, "normalize", map[string]any{"form": utf8Form})
	},
}

func init() {
	rootCmd.AddCommand(utf8Cmd)
	utf8Cmd.AddCommand(utf8CheckCmd, utf8CountCmd, utf8GuessCmd, utf8ToCmd, utf8FromCmd, utf8NormalizeCmd)

	utf8ToCmd.Flags().StringVarP(&utf8Source, "encoding", "e", "auto", "source encoding (auto, latin1, windows-1252)")
	utf8FromCmd.Flags().StringVarP(&utf8Target, "encoding", "e", "latin1", "target encoding (latin1, windows-1252, ascii)")
	utf8FromCmd.Flags().StringVarP(&utf8Placeholder, "placeholder", "p", "?", "substitute for unmappable characters")
	utf8NormalizeCmd.Flags().StringVarP(&utf8Form, "form", "f", "NFC", "normalization form (NFC, NFD, NFKC, NFKD)")
}
