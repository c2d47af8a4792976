package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/burgesQ/adum-fetcher/internal/config"
	"github.com/burgesQ/adum-fetcher/internal/logging"
	"github.com/burgesQ/adum-fetcher/internal/scraper"
)

// newScrapeCmd creates and configures the 'scrape' subcommand, which runs
// one fetch-parse-sort-render pass against the listing URL.
func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Runs one scrape of the offer listing",
		Long: `Fires the configured number of parallel fetches against the listing URL,
merges and deduplicates the parsed offers, sorts them by their last
update date (most recent first), and writes the JSON and HTML outputs.`,
		RunE: runScrapeCommand,
	}

	flags := cmd.Flags()
	flags.String("url", config.DefaultURL, "listing URL to scrape")
	flags.Int("workers", config.DefaultWorkers, "number of parallel fetch attempts")
	flags.String("out-json", config.DefaultOutJSON, "path of the JSON output")
	flags.String("out-html", config.DefaultOutHTML, "path of the HTML output")
	flags.Bool("debug", false, "enable development logging")

	return cmd
}

func runScrapeCommand(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	flags := cmd.Flags()
	bindings := map[string]string{
		"scrape.url":          "url",
		"scrape.workers":      "workers",
		"scrape.out_json":     "out-json",
		"scrape.out_html":     "out-html",
		"logging.development": "debug",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // best effort on shutdown

	scrapeCfg := scraper.Config{
		URL:       cfg.Scrape.URL,
		Workers:   cfg.Scrape.Workers,
		UserAgent: cfg.Scrape.UserAgent,
		Timeout:   cfg.Timeout(),
		OutJSON:   cfg.Scrape.OutJSON,
		OutHTML:   cfg.Scrape.OutHTML,
	}

	fetcher, err := scraper.NewCollyFetcher(scrapeCfg, logger)
	if err != nil {
		return fmt.Errorf("init fetcher: %w", err)
	}

	engine := scraper.NewEngine(
		scrapeCfg,
		fetcher,
		scraper.NewListingParser(logger),
		scraper.NewExponentialRetryPolicy(cfg.HTTP.MaxRetries),
		scraper.NewFileSink(logger),
		logger,
	)

	logger.Info("starting scrape",
		zap.String("url", scrapeCfg.URL),
		zap.Int("workers", scrapeCfg.Workers))

	if err := engine.Run(cmd.Context()); err != nil {
		return fmt.Errorf("scrape: %w", err)
	}
	return nil
}
