package cmd

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/config"
	"github.com/msto63/textkit/foundation/core/errors"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/internal/pipeline"
)

var (
	pipeProfile string
	pipeText    string
	pipeList    bool
	pipeAudit   bool
	pipeJSON    bool
	pipeWatch   bool
)

var pipeCmd = &cobra.Command{
	Use:   "pipe [steps...]",
	Short: "Run text through a chain of transform steps",
	Long: `Runs stdin, or --text, through a pipeline of transform steps.

The steps come from, in order of precedence:
  - a profile file given with --profile,
  - the step names given as arguments, with default parameters,
  - the [pipeline] table of the --config file.

A profile lists the steps as a table array:

  name = "web"

  [[steps]]
  name = "trim"

  [[steps]]
  name = "url-encode"
  mode = "query-value"

Examples:
  textkit pipe --list
  echo '  Hello World ' | textkit pipe trim lower url-encode
  textkit pipe --profile web.toml --audit --text 'a b'
  textkit pipe --profile web.toml --watch --text 'a b'`,
	RunE: runPipe,
}

func init() {
	rootCmd.AddCommand(pipeCmd)

	pipeCmd.Flags().StringVarP(&pipeProfile, "profile", "p", "", "pipeline profile (TOML or YAML)")
	pipeCmd.Flags().StringVarP(&pipeText, "text", "t", "", "input text instead of stdin")
	pipeCmd.Flags().BoolVarP(&pipeList, "list", "l", false, "list the available steps")
	pipeCmd.Flags().BoolVarP(&pipeAudit, "audit", "a", false, "print the step audit log to stderr")
	pipeCmd.Flags().BoolVar(&pipeJSON, "json", false, "print the full result as JSON")
	pipeCmd.Flags().BoolVarP(&pipeWatch, "watch", "w", false, "rerun when the profile changes")
}

// runStep applies a single registered step to the input, for commands
// that expose one step directly
func runStep(cmd *cobra.Command, args []string, name string, params pipeline.Params) error {
	step, err := pipeline.DefaultRegistry().Build(name, params)
	if err != nil {
		return err
	}
	s, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	out, err := step.Apply(cmd.Context(), s)
	if err != nil {
		return err
	}
	output(cmd, out)
	return nil
}

func runPipe(cmd *cobra.Command, args []string) error {
	reg := pipeline.DefaultRegistry()
	if pipeList {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, info := range reg.List() {
			fmt.Fprintf(w, "%s\t%s\n", info.Name, info.Description)
		}
		return w.Flush()
	}

	if pipeWatch && pipeProfile == "" {
		return errors.ArgumentError(errors.ModuleCLI, "pipe", "watch", true, "a --profile to watch")
	}

	p, profileCfg, err := buildPipeline(args, reg)
	if err != nil {
		return err
	}

	input := pipeText
	if !cmd.Flags().Changed("text") {
		if input, err = readInput(cmd, nil); err != nil {
			return err
		}
	}

	if err := runOnce(cmd, p, input); err != nil {
		return err
	}
	if !pipeWatch {
		return nil
	}
	return watchProfile(cmd, profileCfg, reg, input)
}

// buildPipeline resolves the step source; the profile config is returned
// for watching
func buildPipeline(args []string, reg *pipeline.Registry) (*pipeline.Pipeline, *config.Config, error) {
	switch {
	case pipeProfile != "":
		profileCfg, err := config.Load(pipeProfile)
		if err != nil {
			return nil, nil, err
		}
		p, err := pipeline.FromConfig(profileCfg, reg, logger)
		return p, profileCfg, err
	case len(args) > 0:
		p, err := pipeline.FromNames(args, reg, logger)
		return p, nil, err
	case cfg.Has("pipeline"):
		p, err := pipeline.FromConfig(cfg.Sub("pipeline"), reg, logger)
		return p, nil, err
	}
	return nil, nil, errors.ArgumentError(errors.ModuleCLI, "pipe", "steps", "", "step names, --profile or a [pipeline] config table")
}

func runOnce(cmd *cobra.Command, p *pipeline.Pipeline, input string) error {
	res, err := p.Run(cmd.Context(), input)
	if pipeAudit && res != nil {
		writeAudit(cmd, res)
	}
	if err != nil {
		return err
	}

	if pipeJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	output(cmd, res.Output)
	return nil
}

func writeAudit(cmd *cobra.Command, res *pipeline.Result) {
	w := tabwriter.NewWriter(cmd.ErrOrStderr(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "STEP\tDURATION\tMODIFIED\tIN\tOUT\tERROR\n")
	for _, e := range res.AuditLog {
		errText := "-"
		if e.Error != nil {
			errText = e.Error.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%d\t%s\n", e.Step, e.Duration, e.Modified, e.InputLen, e.OutputLen, errText)
	}
	fmt.Fprintf(w, "run %s\t%s\n", res.RunID, res.Duration)
	_ = w.Flush()
}

// watchProfile reruns the pipeline after every profile change until the
// process is interrupted
func watchProfile(cmd *cobra.Command, profileCfg *config.Config, reg *pipeline.Registry, input string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	profileCfg.OnChange(func(_, newConfig *config.Config) {
		p, err := pipeline.FromConfig(newConfig, reg, logger)
		if err != nil {
			logger.ErrorWithErr("Profile reload failed", err, mdwlog.Field("profile", pipeProfile))
			return
		}
		logger.Info("Profile reloaded", mdwlog.Fields{"profile": pipeProfile, "steps": p.Len()})
		if err := runOnce(cmd, p, input); err != nil {
			logger.LogError(err)
		}
	})
	if err := profileCfg.Watch(ctx); err != nil {
		return err
	}
	logger.Info("Watching profile", mdwlog.Field("profile", pipeProfile))

	<-ctx.Done()
	profileCfg.StopWatching()
	return nil
}
