package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	recipepdf "github.com/priscilaarruda/sorobo-chef-agent"
	"github.com/priscilaarruda/sorobo-chef-agent/internal/config"
)

// batchError reports that some renders failed. Their details were already
// printed; it unwraps to the first failure for exit code mapping.
type batchError struct {
	summary ResultSummary
	first   error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d renders failed", e.summary.Failed, e.summary.Failed+e.summary.Succeeded)
}

func (e *batchError) Unwrap() error { return e.first }

// run executes the CLI with args (without the program name) and returns
// the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	flags, inputs, err := parseFlags(args, env.Stderr)
	if err != nil {
		reportError(env.Stderr, fmt.Errorf("%w: %w", ErrUsage, err))
		fmt.Fprintln(env.Stderr, "Run 'recipepdf --help' for usage.")
		return ExitUsage
	}

	if flags.mode.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.mode.version {
		fmt.Fprintf(env.Stdout, "recipepdf %s\n", Version)
		return ExitSuccess
	}

	logger := newLogger(flags.common.verbose, flags.common.quiet, env.Stderr)
	defer func() { _ = logger.Sync() }()

	err = execute(ctx, inputs, flags, env, logger)
	if err == nil {
		return ExitSuccess
	}

	var be *batchError
	if !errors.As(err, &be) {
		reportError(env.Stderr, err)
	}
	return exitCodeFor(err)
}

// execute loads config, builds jobs and either dumps blocks or renders.
func execute(ctx context.Context, inputs []string, flags *cliFlags, env *Environment, logger *zap.Logger) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	jobs, err := buildJobs(inputs, flags.name)
	if err != nil {
		return err
	}

	if flags.mode.dumpBlocks {
		return dumpBlocks(jobs, env.Stdin, env.Stdout)
	}

	opts, err := rendererOptions(cfg, env, logger)
	if err != nil {
		return err
	}

	poolSize := recipepdf.ResolvePoolSize(cfg.Render.Workers)
	logger.Debug("starting render",
		zap.Int("inputs", len(jobs)),
		zap.Int("pool", poolSize),
		zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)),
		zap.String("backend", cfg.Backend),
		zap.String("output_dir", cfg.Output.Dir),
	)

	pool := env.NewPool(poolSize, opts...)
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn("closing renderers", zap.Error(err))
		}
	}()

	results := renderBatch(ctx, pool, jobs, &renderParams{
		outputDir: cfg.Output.Dir,
		inspect:   flags.mode.inspect,
		stdin:     env.Stdin,
		logger:    logger,
	})

	summary := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if summary.Failed == 0 {
		return nil
	}

	for _, r := range results {
		if r.Err != nil {
			return &batchError{summary: summary, first: r.Err}
		}
	}
	return nil
}

// loadConfig reads the config file, if any, and applies explicit flags
// on top (CLI wins).
func loadConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		var err error
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags copies explicitly set flags into cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	changed := flags.changed
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if changed("output-dir") {
		cfg.Output.Dir = flags.outputDir
	}
	if changed("backend") {
		cfg.Backend = flags.backend
	}
	if changed("page-size") {
		cfg.Page.Size = flags.page.size
	}
	if changed("margin") {
		cfg.Page.Margin = flags.page.margin
	}
	if changed("timeout") {
		cfg.Render.Timeout = flags.timeout
	}
	if changed("workers") {
		cfg.Render.Workers = flags.workers
	}
}

// rendererOptions converts cfg into renderer options.
func rendererOptions(cfg *config.Config, env *Environment, logger *zap.Logger) ([]recipepdf.Option, error) {
	timeout, err := cfg.Render.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	page := &recipepdf.PageSettings{Size: cfg.Page.Size, Margin: cfg.Page.Margin}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	opts := []recipepdf.Option{
		recipepdf.WithBackend(cfg.Backend),
		recipepdf.WithPage(page),
		recipepdf.WithClock(env.Now),
		recipepdf.WithLogger(logger),
	}
	if timeout > 0 {
		opts = append(opts, recipepdf.WithTimeout(timeout))
	}
	return opts, nil
}
