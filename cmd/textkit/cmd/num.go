package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/numx"
)

var (
	numType      string
	numBase      int
	numOutBase   int
	numCommas    bool
	numSpaces    bool
	numLocal     bool
	numFinite    bool
	numRadix     bool
	numLower     bool
	numSign      bool
	numNotation  string
	numPrecision int
)

var numCmd = &cobra.Command{
	Use:   "num",
	Short: "Parse and format numbers",
	Long: `Parses numbers with the same rules the numx package applies and
prints them in canonical or reformatted notation.

Examples:
  textkit num parse 0x1F
  textkit num parse --commas 1,234,567
  textkit num parse --type float -- -1.5e3
  textkit num format --out-base 16 --radix 255
  textkit num format --type float --notation scientific --precision 3 1234.5`,
}

var numParseCmd = &cobra.Command{
	Use:   "parse [number]",
	Short: "Parse a number and print its canonical form",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		out, err := convertNumber(s, numx.FormatOptions{}, 10)
		if err != nil {
			return err
		}
		output(cmd, out)
		return nil
	},
}

var numFormatCmd = &cobra.Command{
	Use:   "format [number]",
	Short: "Reformat a number",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		notation, err := parseNotation(numNotation)
		if err != nil {
			return err
		}
		opts := numx.FormatOptions{
			UseLowercase: numLower,
			WithRadix:    numRadix,
			WithSign:     numSign,
			WithCommas:   numCommas,
			Notation:     notation,
		}
		out, err := convertNumber(s, opts, numOutBase)
		if err != nil {
			return err
		}
		output(cmd, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(numCmd)
	numCmd.AddCommand(numParseCmd, numFormatCmd)

	for _, c := range []*cobra.Command{numParseCmd, numFormatCmd} {
		c.Flags().StringVarP(&numType, "type", "t", "int", "number type (int, uint, float)")
		c.Flags().IntVarP(&numBase, "base", "b", 0, "input base, 0 detects 0x and 0 prefixes")
		c.Flags().BoolVar(&numSpaces, "spaces", false, "allow surrounding white space")
		c.Flags().BoolVar(&numLocal, "local-point", false, "accept ',' as decimal point")
		c.Flags().BoolVar(&numFinite, "finite", false, "clamp float overflow and underflow")
	}
	numParseCmd.Flags().BoolVar(&numCommas, "commas", false, "allow grouping commas")

	numFormatCmd.Flags().IntVarP(&numOutBase, "out-base", "o", 10, "output base (integers)")
	numFormatCmd.Flags().BoolVar(&numCommas, "commas", false, "group digits with commas")
	numFormatCmd.Flags().BoolVar(&numRadix, "radix", false, "add 0x or 0 prefix")
	numFormatCmd.Flags().BoolVar(&numLower, "lower", false, "lower-case digits")
	numFormatCmd.Flags().BoolVar(&numSign, "sign", false, "always write a sign")
	numFormatCmd.Flags().StringVar(&numNotation, "notation", "general", "float notation (general, fixed, scientific)")
	numFormatCmd.Flags().IntVar(&numPrecision, "precision", -1, "float precision, -1 for the default")
}

func parseNotation(name string) (numx.Notation, error) {
	for _, n := range []numx.Notation{numx.NotationGeneral, numx.NotationFixed, numx.NotationScientific} {
		if strings.EqualFold(name, n.String()) {
			return n, nil
		}
	}
	return 0, errors.ArgumentError(errors.ModuleCLI, "num", "notation", name, "general, fixed or scientific")
}

func parseOptions() numx.ParseOptions {
	opts := numx.ParseOptions{AllowCommas: numCommas, PosixFinite: numFinite}
	if numSpaces {
		opts = opts.AllowSpaces()
	}
	if numLocal {
		opts.Decimal = numx.DecimalPosixOrLocal
	}
	return opts
}

// convertNumber parses s as numType and renders it with opts in base
func convertNumber(s string, opts numx.FormatOptions, base int) (string, error) {
	popts := parseOptions()
	// grouping commas are only valid in base 10 input
	if numBase != 0 && numBase != 10 {
		popts.AllowCommas = false
	}
	mdwlog.Debug("Converting number",
		mdwlog.Field("type", numType),
		mdwlog.Field("base", numBase))

	switch strings.ToLower(numType) {
	case "int":
		v, err := numx.ParseInt[int64](s, popts, numBase)
		if err != nil {
			return "", err
		}
		return numx.FormatInt(v, opts, base)
	case "uint":
		v, err := numx.ParseUint[uint64](s, popts, numBase)
		if err != nil {
			return "", err
		}
		return numx.FormatInt(v, opts, base)
	case "float":
		v, err := numx.ParseFloat(s, popts)
		if err != nil {
			return "", err
		}
		return numx.FormatFloat(v, numPrecision, opts), nil
	default:
		return "", errors.ArgumentError(errors.ModuleCLI, "num", "type", numType, "int, uint or float")
	}
}
