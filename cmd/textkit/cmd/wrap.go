package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/wrapx"
)

var (
	wrapWidth        int
	wrapPrefix       string
	wrapFirstPrefix  string
	wrapHyphenate    bool
	wrapDisplayWidth bool
	wrapHTML         bool
	wrapJustify      bool
	wrapList         string
)

var wrapCmd = &cobra.Command{
	Use:   "wrap [text]",
	Short: "Reflow text to a line width",
	Long: `Reflows paragraphs to a maximum width. Line breaks in the input end
a paragraph. The config key wrap.width provides the default width.

Examples:
  textkit wrap --width 40 < README.md
  textkit wrap --prefix '  ' --first-prefix '- ' --width 30 'some long text'
  textkit wrap --justify --width 30 < notes.txt
  textkit wrap --list ', ' --width 30 alpha beta gamma delta epsilon`,
	RunE: runWrap,
}

func init() {
	rootCmd.AddCommand(wrapCmd)

	wrapCmd.Flags().IntVarP(&wrapWidth, "width", "w", 72, "maximum line width")
	wrapCmd.Flags().StringVar(&wrapPrefix, "prefix", "", "prefix for every line")
	wrapCmd.Flags().StringVar(&wrapFirstPrefix, "first-prefix", "", "prefix for the first line of a paragraph")
	wrapCmd.Flags().BoolVar(&wrapHyphenate, "hyphenate", false, "split words longer than a line")
	wrapCmd.Flags().BoolVar(&wrapDisplayWidth, "display-width", false, "measure terminal columns instead of characters")
	wrapCmd.Flags().BoolVar(&wrapHTML, "html", false, "tags take no width and entities one column")
	wrapCmd.Flags().BoolVarP(&wrapJustify, "justify", "j", false, "pad lines to the full width")
	wrapCmd.Flags().StringVar(&wrapList, "list", "", "treat the arguments as list items joined by this delimiter")
}

func runWrap(cmd *cobra.Command, args []string) error {
	width := wrapWidth
	if !cmd.Flags().Changed("width") {
		width = cfg.GetInt("wrap.width", wrapWidth)
	}
	opts := wrapx.Options{
		Hyphenate:    wrapHyphenate,
		HTMLPre:      wrapHTML,
		DisplayWidth: wrapDisplayWidth,
		Prefix:       wrapPrefix,
	}
	if cmd.Flags().Changed("first-prefix") {
		opts.FirstPrefix = &wrapFirstPrefix
	}

	var (
		lines []string
		err   error
	)
	switch {
	case cmd.Flags().Changed("list"):
		items, lerr := readLines(cmd, args)
		if lerr != nil {
			return lerr
		}
		lines, err = wrapx.WrapList(items, width, wrapList, opts)
	case wrapJustify:
		s, rerr := readInput(cmd, args)
		if rerr != nil {
			return rerr
		}
		lines, err = wrapx.Justify(s, width, opts.Prefix, opts.FirstPrefix)
	default:
		s, rerr := readInput(cmd, args)
		if rerr != nil {
			return rerr
		}
		lines, err = wrapx.Wrap(s, width, opts)
	}
	if err != nil {
		return err
	}

	if len(lines) > 0 {
		output(cmd, strings.Join(lines, "\n"))
	}
	return nil
}
