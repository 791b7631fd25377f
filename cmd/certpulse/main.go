package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/MimoJanra/CertPulse/internal/checker"
	"github.com/MimoJanra/CertPulse/internal/config"
	"github.com/MimoJanra/CertPulse/internal/notifications"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "websites.yml", "path to config YAML")
	noWebhook := flag.Bool("no-webhook", false, "disable webhook alerts even if a destination is configured")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config file not found or invalid: %v\n", err)
		return 2
	}

	// The webhook destination is resolved here, once, and threaded down;
	// nothing below main reads the environment.
	_ = godotenv.Load()
	webhookURL := os.Getenv("SLACK_WEBHOOK_URL")
	if webhookURL == "" {
		webhookURL = cfg.WebhookURL
	}
	if *noWebhook {
		webhookURL = ""
	}

	var notifier checker.Notifier
	if webhookURL != "" {
		notifier = notifications.NewSlackSender(webhookURL)
	}

	site := checker.NewSiteChecker(notifier, cfg.Timeout())
	orchestrator := checker.NewOrchestrator(cfg.MaxWorkers, site)

	results := orchestrator.Run(cfg.Endpoints(), cfg.ModelThresholds())

	return checker.ExitCode(results)
}
