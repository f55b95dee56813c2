package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/config"
	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
)

var (
	cfgFile   string
	verbose   int
	logFormat string

	// set up by the root PersistentPreRunE
	cfg    *config.Config
	logger *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "textkit",
	Short: "String processing toolkit",
	Long: `textkit converts numbers and data sizes, splits and joins text,
encodes and decodes URL, HTML, XML, JSON, C and shell notations, wraps
paragraphs and runs configurable transform pipelines.

Input is taken from the arguments or, without arguments, from stdin.

Examples:
  textkit num parse 0x1F
  textkit datasize format --binary 1048576
  echo 'a b&c' | textkit encode url
  textkit wrap --width 40 README.md
  textkit pipe trim upper url-encode < input.txt`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and logs a failure
func Execute() error {
	return execute(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		l := logger
		if l == nil {
			l = mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelError, Format: mdwlog.FormatConsole, Output: errOut, Name: "textkit"})
		}
		l.ErrorWithErr("command failed", err, mdwlog.Field("exit_status", ExitStatus(err)))
	}
	return err
}

// ExitStatus maps an error to the process exit status
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	code := mdwerror.GetCode(err)
	if code == mdwerror.CodeUnknown {
		return 1
	}
	return code.ExitStatus()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "verbose output, repeat for more")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, text, json, logfmt)")
}

// setup loads the configuration and builds the run logger
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
	} else {
		cfg = config.Empty(config.DefaultEnvPrefix)
	}

	formatName := logFormat
	if !cmd.Flags().Changed("log-format") {
		formatName = cfg.GetString("log.format", logFormat)
	}
	format, err := mdwlog.ParseFormat(formatName)
	if err != nil {
		return err
	}

	level := mdwlog.LevelFromVerbosity(verbose)
	if verbose == 0 && cfg.Has("log.level") {
		if level, err = mdwlog.ParseLevel(cfg.GetString("log.level")); err != nil {
			return err
		}
	}

	logger = mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "textkit",
	}).WithCorrelationID(uuid.NewString())
	mdwlog.SetDefault(logger)

	logger.Debug("Command started",
		mdwlog.Field("command", cmd.CommandPath()),
		mdwlog.Field("config", cfg.FilePath()))
	return nil
}

// readInput returns the arguments joined by spaces or, without arguments,
// everything on stdin minus one trailing newline
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if stat, err := f.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
			return "", errors.NewErrorBuilder(errors.ModuleCLI).
				Operation(cmd.Name()).
				Message("no input: pass text as arguments or pipe it to stdin").
				Code(mdwerror.CodeInvalidInput).
				Build()
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", errors.OperationFailed(errors.ModuleCLI, cmd.Name(), err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// readLines is readInput split into lines, for commands taking a list
func readLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	s, err := readInput(cmd, nil)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines, nil
}

func output(cmd *cobra.Command, a ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), a...)
}
