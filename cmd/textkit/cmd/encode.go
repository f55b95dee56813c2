package cmd

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/encodex"
	"github.com/msto63/textkit/internal/pipeline"
)

var (
	codecParams map[string]string
	codecMode   string
)

// encoders and decoders map CLI format names onto pipeline steps
var (
	encoders = map[string]string{
		"url":   "url-encode",
		"html":  "html-encode",
		"xml":   "xml-encode",
		"json":  "json-encode",
		"js":    "js-encode",
		"shell": "shell-encode",
		"sql":   "sql-encode",
		"c":     "printable",
	}
	decoders = map[string]string{
		"url":  "url-decode",
		"html": "html-decode",
		"c":    "parse-escapes",
	}
)

var encodeCmd = &cobra.Command{
	Use:   "encode <format> [text]",
	Short: "Escape text for a target notation",
	Long: `Escapes text for URL, HTML, XML, JSON, JavaScript, shell, SQL or C.

Formats: ` + formatNames(encoders) + `

Format options are passed with --set key=value and match the
parameters of the pipeline step of the same name (see "textkit pipe
--list"). --mode is short for --set mode=...

Examples:
  textkit encode url 'a b&c'
  textkit encode url --mode query-value 'a b'
  textkit encode html '<b>&amp;</b>' --set skip-literal=true
  textkit encode xml --set comment-safe=true 'a--b'
  textkit encode shell "it's"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCodec(cmd, args, encoders)
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode <format> [text]",
	Short: "Decode escaped text",
	Long: `Decodes URL percent escapes, HTML character references, C escape
sequences or a sequence of quoted C string literals.

Formats: ` + formatNames(decoders) + `, c-literal

Examples:
  textkit decode url 'a+b%26c'
  textkit decode url --set plus=false 'a+b'
  textkit decode html '&lt;p&gt;caf&eacute;'
  textkit decode c 'tab\there'
  textkit decode c-literal '"one" "two"'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.EqualFold(args[0], "c-literal") {
			s, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			out, err := encodex.CParse(s, true)
			if err != nil {
				return err
			}
			output(cmd, out)
			return nil
		}
		return runCodec(cmd, args, decoders)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd, decodeCmd)

	for _, c := range []*cobra.Command{encodeCmd, decodeCmd} {
		c.Flags().StringToStringVarP(&codecParams, "set", "s", nil, "format option key=value")
	}
	encodeCmd.Flags().StringVarP(&codecMode, "mode", "m", "", "URL encoding mode")
}

func formatNames(table map[string]string) string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// runCodec builds the step registered for the format in args[0] and
// applies it to the rest of the input
func runCodec(cmd *cobra.Command, args []string, table map[string]string) error {
	format := strings.ToLower(args[0])
	stepName, ok := table[format]
	if !ok {
		return errors.ArgumentError(errors.ModuleCLI, cmd.Name(), "format", args[0], formatNames(table))
	}

	params := pipeline.Params{}
	for k, v := range codecParams {
		params[k] = v
	}
	if codecMode != "" {
		params["mode"] = codecMode
	}

	return runStep(cmd, args[1:], stepName, params)
}
