// Package cli implements the degrees command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/archichudinow/cs50ai/app"
	"github.com/archichudinow/cs50ai/config"
	"github.com/archichudinow/cs50ai/logging"
	"github.com/archichudinow/cs50ai/report"
	"github.com/archichudinow/cs50ai/resolve"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// options holds the global flags shared by every command.
type options struct {
	configPath    string
	dataDir       string
	store         string
	dsn           string
	index         string
	esNodes       []string
	frontier      string
	maxExpansions int
	format        string
	logLevel      string
	logFormat     string
	metricsFile   string
}

// Execute runs the degrees command line with args. Usage problems are
// reported as an *ExitError with code 2, unresolvable names with code 1.
func Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	cmd := NewRootCommand(in, out, errOut)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "degrees [directory]",
		Short: "Find the degrees of separation between two actors",
		Long: `Reads a dataset of people, movies and credits, then finds the shortest
chain of co-starring credits that connects two people.

Examples:
  degrees large
  degrees path "Kevin Bacon" "Tom Hanks" --data small
  degrees neighbors "Emma Watson" --format json
  degrees import large --store postgres --dsn postgres://localhost/degrees`,
		Args:          maxArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, opts, args)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file")
	flags.StringVar(&opts.dataDir, "data", "", "Dataset directory holding people.csv, movies.csv and stars.csv")
	flags.StringVar(&opts.store, "store", "", "Graph store: memory, postgres")
	flags.StringVar(&opts.dsn, "dsn", "", "Postgres connection string")
	flags.StringVar(&opts.index, "index", "", "Name index: memory, elasticsearch")
	flags.StringSliceVar(&opts.esNodes, "es-node", nil, "Elasticsearch node URL (repeatable)")
	flags.StringVar(&opts.frontier, "frontier", "", "Frontier discipline: queue, stack")
	flags.IntVar(&opts.maxExpansions, "max-expansions", 0, "Abort a search after this many expanded people (0 = unlimited)")
	flags.StringVar(&opts.format, "format", "text", "Output format: text, json")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: text, json")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "Write search metrics in Prometheus text format to this file on exit")

	root.AddCommand(
		newPathCommand(opts),
		newNeighborsCommand(opts),
		newImportCommand(opts),
	)
	return root
}

func maxArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MaximumNArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

// loadConfig layers the flags that were set explicitly over the config
// file, which itself overrides the defaults. The output format is checked
// here so that a bad --format fails before any data is loaded.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Read(opts.configPath)
	if err != nil {
		return cfg, usageError(err)
	}
	if opts.format, err = report.ParseFormat(opts.format); err != nil {
		return cfg, usageError(err)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.DataDir = opts.dataDir
	}
	if flags.Changed("store") {
		cfg.Store.Backend = strings.ToLower(opts.store)
	}
	if flags.Changed("dsn") {
		cfg.Store.DSN = opts.dsn
	}
	if flags.Changed("index") {
		cfg.NameIndex.Backend = strings.ToLower(opts.index)
	}
	if flags.Changed("es-node") {
		cfg.NameIndex.Nodes = opts.esNodes
	}
	if flags.Changed("frontier") {
		cfg.Search.Frontier = strings.ToLower(opts.frontier)
	}
	if flags.Changed("max-expansions") {
		cfg.Search.MaxExpansions = opts.maxExpansions
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = strings.ToLower(opts.logLevel)
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = strings.ToLower(opts.logFormat)
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.metricsFile
	}

	if err = cfg.Validate(); err != nil {
		return cfg, usageError(err)
	}
	return cfg, nil
}

// openApp builds the application and a context carrying its logger.
func openApp(cmd *cobra.Command, cfg config.Config, chooser resolve.Chooser) (context.Context, *app.App, error) {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	ctx := logging.WithLogger(cmd.Context(), logger)
	logger.Debug("Configuration resolved.", slog.Group("config",
		"data_dir", cfg.DataDir,
		"store", cfg.Store.Backend,
		"index", cfg.NameIndex.Backend,
		"frontier", cfg.Search.Frontier,
	))

	a, err := app.New(ctx, cfg, logger, chooser)
	if err != nil {
		return ctx, nil, err
	}
	return ctx, a, nil
}

// closeApp releases the app and reports anything that failed while doing so.
func closeApp(ctx context.Context, a *app.App) {
	if err := a.Close(); err != nil {
		logging.FromContext(ctx).Warn("Shutdown incomplete.", "error", err)
	}
}

// translate maps resolution failures to the messages printed to the user.
func translate(err error) error {
	var nf *resolve.NotFoundError
	switch {
	case errors.As(err, &nf):
		msg := "Person not found."
		if len(nf.Suggestions) > 0 {
			msg += fmt.Sprintf(" Did you mean: %s?", strings.Join(nf.Suggestions, ", "))
		}
		return &ExitError{Code: 1, Message: msg}
	case errors.Is(err, resolve.ErrInvalidChoice):
		return &ExitError{Code: 1, Message: "Person not found."}
	default:
		return err
	}
}
