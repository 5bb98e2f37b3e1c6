package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"github.com/go-faster/chaf/internal/chafengine"
	"github.com/go-faster/chaf/internal/chafinput"
	"github.com/go-faster/chaf/internal/chafql"
	"github.com/go-faster/chaf/internal/cliversion"
)

type rootOptions struct {
	configPath   string
	invert       bool
	report       bool
	reportFormat string
	progress     bool
	logLevel     string
	explain      bool
	color        bool
}

func rootCmd(defaultColor bool) *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:   "chaf [flags] QUERY [FILE]",
		Short: "Filter out lines matching a boolean query",
		Long: heredoc.Doc(`
			chaf drops lines matching QUERY from FILE or standard input.

			QUERY is a boolean expression over literal substrings:
			"&" is AND, "|" is OR, "!" is NOT, parentheses group.
			AND binds tighter than OR, NOT binds tighter than AND.
		`),
		Example: heredoc.Doc(`
			# Drop debug and error lines.
			chaf 'debug | error' app.log

			# Keep only warnings not related to disk, like grep.
			chaf --invert 'warn & !disk' app.log.gz

			# Count lines instead of printing them.
			kubectl logs app | chaf --report 'healthz'
		`),
		Args:    cobra.RangeArgs(1, 2),
		Version: cliversion.Get().String(),

		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (rerr error) {
			color.NoColor = !opts.color

			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return errors.Wrap(err, "load config")
			}
			opts.apply(cmd, &cfg)

			query := args[0]
			expr, err := parseQuery(query)
			if err != nil {
				return err
			}
			if opts.explain {
				return explain(cmd.OutOrStdout(), expr)
			}

			format, err := chafengine.ParseReportFormat(cfg.ReportFormat)
			if err != nil {
				return errors.Wrap(err, "parse report format")
			}
			filter, err := chafengine.BuildFilter(expr, cfg.Invert)
			if err != nil {
				return errors.Wrap(err, "build filter")
			}

			lg, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, opts.color)
			if err != nil {
				return err
			}
			defer func() {
				_ = lg.Sync()
			}()
			ctx := zctx.Base(cmd.Context(), lg)

			var name string
			if len(args) > 1 {
				name = args[1]
			}
			inputOpts := chafinput.Options{
				Stdin: cmd.InOrStdin(),
			}
			if cfg.Progress {
				inputOpts.Progress = cmd.ErrOrStderr()
			}
			in, err := chafinput.Open(name, inputOpts)
			if err != nil {
				return errors.Wrapf(err, "open input %q", name)
			}
			defer func() {
				if err := in.Close(); err != nil {
					rerr = multierr.Append(rerr, errors.Wrap(err, "close input"))
				}
			}()

			lg.Debug("Starting",
				zap.String("query", expr.String()),
				zap.String("input", in.Name),
				zap.Bool("invert", cfg.Invert),
				zap.Bool("report", cfg.Report),
			)
			if _, err := chafengine.Run(ctx, in, cmd.OutOrStdout(), filter.Keep, chafengine.Options{
				Report:       cfg.Report,
				ReportFormat: format,
				Diagnostics:  cmd.ErrOrStderr(),
			}); err != nil {
				return errors.Wrap(err, "run")
			}
			return nil
		},
	}
	cmd.SetVersionTemplate("chaf {{ .Version }}\n")
	opts.Register(cmd.Flags(), defaultColor)
	formats := maps.Keys(chafengine.ReportFormats)
	slices.Sort(formats)
	errors.Must(true, cmd.RegisterFlagCompletionFunc("report-format", cobra.FixedCompletions(
		formats,
		cobra.ShellCompDirectiveDefault,
	)))
	return cmd
}

// Register adds options flags to set.
func (opts *rootOptions) Register(set *pflag.FlagSet, defaultColor bool) {
	set.StringVar(&opts.configPath, "config", "", "Path to config file, defaults to "+defaultConfigName+" if exists")
	set.BoolVarP(&opts.invert, "invert", "i", false, "Keep matching lines instead of dropping them")
	set.BoolVarP(&opts.report, "report", "r", false, "Print line counters to stderr instead of lines")
	set.StringVar(&opts.reportFormat, "report-format", string(chafengine.ReportText), "Report format")
	set.BoolVar(&opts.progress, "progress", false, "Show progress bar when reading a file")
	set.StringVar(&opts.logLevel, "log-level", "warn", "Log level")
	set.BoolVar(&opts.explain, "explain", false, "Print parsed query and exit")
	set.BoolVar(&opts.color, "color", defaultColor, "Enable color")
}

// apply overrides config values by explicitly set flags.
func (opts *rootOptions) apply(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()
	if flags.Changed("invert") {
		cfg.Invert = opts.invert
	}
	if flags.Changed("report") {
		cfg.Report = opts.report
	}
	if flags.Changed("report-format") {
		cfg.ReportFormat = opts.reportFormat
	}
	if flags.Changed("progress") {
		cfg.Progress = opts.progress
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
}

func explain(w io.Writer, expr chafql.Expr) error {
	_, err := fmt.Fprintf(w, "%s\nliterals: %q\n", expr, chafql.Literals(expr))
	return err
}
