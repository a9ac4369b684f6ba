package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ResearchDigest/internal/collector"
	"ResearchDigest/internal/config"
	"ResearchDigest/internal/generator"
	"ResearchDigest/internal/logger"
	"ResearchDigest/internal/parser"
	"ResearchDigest/internal/scheduler"
)

// Version is injected at build time via ldflags.
var Version = "dev"

type options struct {
	configPath string
	stocksDir  string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "digest <stock_code>",
		Short:         "Generate a comparison summary of a stock's research reports",
		Long:          "Scans <stocks-dir>/<stock_code>/research/v*.md and writes <stocks-dir>/<stock_code>/summary.md.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, args[0])
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (optional)")
	root.PersistentFlags().StringVar(&opts.stocksDir, "stocks-dir", "stocks", "stocks directory")

	root.AddCommand(newAllCmd(opts), newWatchCmd(opts), newVersionCmd())
	return root
}

func newAllCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Generate summaries for every stock under the stocks directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, gen, err := setup(cmd, opts)
			if err != nil {
				return reportError(cmd, err)
			}
			results, failed, err := gen.GenerateAll()
			if err != nil {
				return reportError(cmd, err)
			}
			for _, res := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "對比摘要已生成：%s\n", res.SummaryPath)
			}
			if failed > 0 {
				return reportError(cmd, fmt.Errorf("%d 檔股票摘要生成失敗", failed))
			}
			return nil
		},
	}
}

func newWatchCmd(opts *options) *cobra.Command {
	var (
		cronSpec string
		runNow   bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate summaries on a cron schedule until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, gen, err := setup(cmd, opts)
			if err != nil {
				return reportError(cmd, err)
			}
			if cronSpec == "" {
				cronSpec = cfg.Schedule.Cron
			}

			sched := scheduler.NewScheduler(gen, cfg.Schedule.Stocks)
			if err := sched.Register(cronSpec); err != nil {
				return reportError(cmd, err)
			}
			if runNow {
				sched.RunNow()
			}
			sched.Start()
			defer sched.Stop()

			logger.Log.WithField("cron", cronSpec).Info("watching for research reports, press Ctrl+C to stop")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			logger.Log.Info("shutdown signal received, stopping...")
			return nil
		},
	}
	cmd.Flags().StringVar(&cronSpec, "cron", "", "cron expression with seconds field (default from config)")
	cmd.Flags().BoolVar(&runNow, "run-now", false, "regenerate once immediately before waiting")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "digest version %s\n", Version)
		},
	}
}

func runGenerate(cmd *cobra.Command, opts *options, stockCode string) error {
	_, gen, err := setup(cmd, opts)
	if err != nil {
		return reportError(cmd, err)
	}

	res, err := gen.Generate(stockCode)
	if err != nil {
		if errors.Is(err, generator.ErrStockDirNotFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "錯誤：找不到股票目錄 %s\n", gen.StockDir(stockCode))
			return err
		}
		return reportError(cmd, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "對比摘要已生成：%s\n", res.SummaryPath)
	return nil
}

// setup loads config, applies flag overrides, initialises logging and wires the generator.
func setup(cmd *cobra.Command, opts *options) (*config.Config, *generator.Generator, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("stocks-dir") || opts.configPath == "" {
		cfg.StocksDir = opts.stocksDir
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config validation: %w", err)
	}
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	extractor := parser.NewExtractor(cfg.Rules())
	col := collector.NewCollector(collector.NewFSSource(), extractor, cfg.ResearchDir)
	return cfg, generator.NewGenerator(col, cfg.StocksDir, cfg.OutputFile), nil
}

func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "錯誤：%v\n", err)
	return err
}
