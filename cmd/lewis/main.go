// Command lewis runs the windowed sieve around a base number and prints
// the factor table, the missing numbers and the non-prime missing count.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alexshd/lewis"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

func init() {
	slog.SetDefault(newLogger(os.Stderr, slog.LevelInfo))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
}

// options collects flag values; flags left unset fall back to the config file.
type options struct {
	configPath string
	workers    int
	format     string
	logLevel   string

	levels  []int
	repeats int
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "lewis [base]",
		Short: "Factor every number in a window around a base number",
		Long: `lewis trial-divides every integer in [base - w, base + w], w = 2*floor(sqrt(base)),
propagates each discovered factor across its multiples, and repeats direct
factoring on unexplained numbers until no new factor appears.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSieve(cmd, opts, args)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (base, workers, format, log_level)")
	flags.IntVar(&opts.workers, "workers", 1, "trial-division goroutines")
	flags.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	root.Flags().StringVar(&opts.format, "format", formatTable, "output format: table or json")

	root.AddCommand(newBenchCmd(opts))
	return root
}

func newBenchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench [base]",
		Short: "Time the sieve at several worker counts and check they agree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts, args)
		},
	}

	defaults := lewis.DefaultBenchConfig()
	cmd.Flags().IntSliceVar(&opts.levels, "levels", defaults.Levels, "worker counts to measure")
	cmd.Flags().IntVar(&opts.repeats, "repeats", defaults.Repeats, "runs per worker count")
	return cmd
}

// resolve merges config file, flags and the positional base, in that order of precedence.
func resolve(cmd *cobra.Command, opts *options, args []string) (fileConfig, *slog.Logger, error) {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fileConfig{}, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}

	if len(args) == 1 {
		base, err := parseBase(args[0])
		if err != nil {
			return fileConfig{}, nil, err
		}
		cfg.Base = base
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fileConfig{}, nil, fmt.Errorf("%w: log level %q", lewis.ErrInvalidConfig, cfg.LogLevel)
	}

	return cfg, newLogger(cmd.ErrOrStderr(), level), nil
}

func parseBase(arg string) (int64, error) {
	base, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", lewis.ErrInvalidBase, arg)
	}
	return base, nil
}

func runSieve(cmd *cobra.Command, opts *options, args []string) error {
	cfg, logger, err := resolve(cmd, opts, args)
	if err != nil {
		return err
	}

	render, ok := renderers[cfg.Format]
	if !ok {
		return fmt.Errorf("%w: unknown format %q", lewis.ErrInvalidConfig, cfg.Format)
	}

	s, err := lewis.NewSieve(lewis.Config{
		Base:    cfg.Base,
		Workers: cfg.Workers,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	report, err := s.Run()
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), report)
}

func runBench(cmd *cobra.Command, opts *options, args []string) error {
	cfg, logger, err := resolve(cmd, opts, args)
	if err != nil {
		return err
	}

	results, err := lewis.MeasureScan(cfg.Base, lewis.BenchConfig{
		Levels:  opts.levels,
		Repeats: opts.repeats,
		Logger:  logger,
	})
	if err != nil {
		if errors.Is(err, lewis.ErrNondeterministic) {
			logger.Error("worker levels disagree", "base", cfg.Base, "err", err)
		}
		return err
	}

	return renderBench(cmd.OutOrStdout(), cfg.Base, results)
}
