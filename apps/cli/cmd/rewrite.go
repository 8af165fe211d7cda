package cmd

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/pmrewrite/packages/core/config"
	"github.com/abdul-hamid-achik/pmrewrite/packages/output"
	"github.com/abdul-hamid-achik/pmrewrite/packages/rewrite"
	"github.com/spf13/cobra"
)

var (
	outputFlag  string
	configFlag  string
	formatFlag  string
	verboseFlag bool
	noColorFlag bool
)

func init() {
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the rewritten collection here instead of overwriting the input")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Rules file (default: search for .pmrewrite.yaml)")
	rootCmd.Flags().StringVar(&formatFlag, "format", "console", "Report format (console, json)")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "List every change")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// Formatter interface for all output formatters
type Formatter interface {
	FormatResult(result *rewrite.Result)
	FormatError(err error)
}

func rewriteCommand(cmd *cobra.Command, args []string) error {
	path := rewrite.DefaultCollectionFile
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		err = fmt.Errorf("failed to load config: %w", err)
		newFormatter(cmd, config.DefaultConfig()).FormatError(err)
		return &exitError{code: ExitConfigError, err: err}
	}

	overrides := &config.Config{}
	if cmd.Flags().Changed("verbose") {
		overrides.Verbose = config.BoolPtr(verboseFlag)
	}
	if cmd.Flags().Changed("no-color") {
		overrides.NoColor = config.BoolPtr(noColorFlag)
	}
	cfg = cfg.Merge(overrides)

	formatter := newFormatter(cmd, cfg)

	var opts []rewrite.Option
	if !cfg.IsDefault() {
		opts = append(opts, rewrite.WithRules(cfg.Rules()))
	}
	rw := rewrite.NewRewriter(opts...)
	result, err := rw.RewriteFile(path, outputFlag)
	if err != nil {
		formatter.FormatError(err)
		return &exitError{code: exitCodeFor(err), err: err}
	}

	formatter.FormatResult(result)
	return nil
}

func newFormatter(cmd *cobra.Command, cfg *config.Config) Formatter {
	switch strings.ToLower(formatFlag) {
	case "json":
		return output.NewJSONFormatter(output.JSONWithWriter(cmd.OutOrStdout()))
	default: // "console"
		return output.NewConsoleFormatter(
			output.WithWriter(cmd.OutOrStdout()),
			output.WithErrorWriter(cmd.ErrOrStderr()),
			output.WithVerbose(cfg.GetVerbose()),
			output.WithNoColor(cfg.GetNoColor()),
		)
	}
}
