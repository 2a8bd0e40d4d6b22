// Command e2esetup validates the suite configuration, creates the report
// directories, and optionally downloads the browser the tests drive. Run it
// once before the first "go test -tags e2e ./e2e".
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/playwright-community/playwright-go"

	"github.com/papertrade/tradesim-e2e/internal/config"
	"github.com/papertrade/tradesim-e2e/internal/pages"
)

func main() {
	envFile := flag.String("env", ".env.test", "environment file with suite settings")
	locatorFile := flag.String("locators", "", "optional TOML file overriding default selectors")
	install := flag.Bool("install", false, "download the chromium browser the suite drives")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load settings:", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	if err := run(cfg, *locatorFile, *install, log); err != nil {
		log.Error("setup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Settings, locatorFile string, install bool, log *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if _, err := pages.LoadLocators(locatorFile); err != nil {
		return fmt.Errorf("locators: %w", err)
	}

	for _, dir := range []string{cfg.ReportDir, cfg.ScreenshotDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	log.Info("configuration valid",
		slog.String("base_url", cfg.BaseURL),
		slog.String("api_url", cfg.APIURL),
		slog.String("report_dir", cfg.ReportDir))

	if install {
		log.Info("installing browser", slog.String("browser", "chromium"))
		if err := playwright.Install(&playwright.RunOptions{
			Browsers: []string{"chromium"},
		}); err != nil {
			return fmt.Errorf("install browser: %w", err)
		}
		log.Info("browser installed")
	}
	return nil
}
