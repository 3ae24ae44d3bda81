package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"datefix/internal/config"
	"datefix/internal/deps"
	"datefix/internal/extract"
	"datefix/internal/filetimes"
	"datefix/internal/logging"
	"datefix/internal/metadata"
	"datefix/internal/reconcile"
	"datefix/internal/report"
	"datefix/internal/runlock"
	"datefix/internal/walk"
)

type runOptions struct {
	file       string
	directory  string
	exclude    []string
	futureDays int
	dryRun     bool
	summary    bool
	skipHidden bool
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile capture dates for a file or a directory tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("fix-future-dates") {
				opts.futureDays = cfg.Fix.FutureDays
			}
			if !cmd.Flags().Changed("summary") {
				opts.summary = cfg.Report.Summary
			}
			if !cmd.Flags().Changed("skip-hidden") {
				opts.skipHidden = cfg.Scan.SkipHidden
			}
			opts.exclude = append(append([]string{}, cfg.Scan.Exclude...), opts.exclude...)

			runCfg := *cfg
			runCfg.Logging.Level = ctx.resolvedLogLevel(cfg)
			runCfg.Logging.Format = ctx.resolvedLogFormat(cfg)
			return runFix(cmd, &runCfg, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "Reconcile a single file")
	flags.StringVarP(&opts.directory, "directory", "d", "", "Reconcile a directory tree recursively")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "Skip paths containing this substring (repeatable)")
	flags.IntVar(&opts.futureDays, "fix-future-dates", 0, "Correct dates more than this many days ahead (0 disables)")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Log intended changes without writing anything")
	flags.BoolVar(&opts.summary, "summary", false, "Print a summary after the run")
	flags.BoolVar(&opts.skipHidden, "skip-hidden", false, "Skip hidden files and directories")
	cmd.MarkFlagsOneRequired("file", "directory")
	cmd.MarkFlagsMutuallyExclusive("file", "directory")

	return cmd
}

func runFix(cmd *cobra.Command, cfg *config.Config, opts runOptions) error {
	signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if err := deps.Verify([]deps.Requirement{deps.Exiftool(cfg.ExiftoolBinary())}); err != nil {
		return err
	}

	if !opts.dryRun {
		lock, err := runlock.Acquire(cfg.LockPath())
		if err != nil {
			return err
		}
		defer lock.Release()
	}

	store, err := metadata.NewStore(logger, cfg.ExiftoolBinary(), opts.dryRun)
	if err != nil {
		return err
	}
	defer store.Close()

	engine := reconcile.New(logger, store, filetimes.New(logger, opts.dryRun),
		extract.New(logger), opts.futureDays)
	walker := walk.New(logger, engine,
		walk.WithExclusions(opts.exclude),
		walk.WithSkipHidden(opts.skipHidden))

	started := time.Now()
	sum := &report.Summary{}

	switch {
	case opts.file != "":
		target, err := config.ExpandPath(opts.file)
		if err != nil {
			return fmt.Errorf("resolve file path: %w", err)
		}
		if _, err := os.Stat(target); err != nil {
			return fmt.Errorf("target file: %w", err)
		}
		logger.Info("reconciling file",
			logging.String(logging.FieldFile, target),
			logging.Bool("dry_run", opts.dryRun))
		if err := walker.File(signalCtx, target, sum); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	default:
		target, err := config.ExpandPath(opts.directory)
		if err != nil {
			return fmt.Errorf("resolve directory path: %w", err)
		}
		logger.Info("reconciling directory",
			logging.String(logging.FieldFile, target),
			logging.Bool("dry_run", opts.dryRun))
		if err := walker.Directory(signalCtx, target, sum); err != nil {
			return err
		}
	}

	if signalCtx.Err() != nil {
		logger.Info("run interrupted, stopping")
	}

	if opts.summary {
		out := cmd.OutOrStdout()
		styled := false
		if f, ok := out.(*os.File); ok {
			styled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		report.Render(out, sum, time.Since(started), styled)
	}
	return nil
}
