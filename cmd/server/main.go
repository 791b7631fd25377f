package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MimoJanra/CertPulse/internal/api"
	"github.com/MimoJanra/CertPulse/internal/checker"
	"github.com/MimoJanra/CertPulse/internal/config"
	"github.com/MimoJanra/CertPulse/internal/notifications"
)

func main() {
	configPath := flag.String("config", "websites.yml", "path to config YAML")
	listenAddr := flag.String("listen", ":8080", "HTTP listen address")
	noWebhook := flag.Bool("no-webhook", false, "disable webhook alerts even if a destination is configured")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

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

	server := &api.Server{
		Config: cfg,
		Runner: orchestrator,
	}

	r := api.SetupRouter(server)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server started on %s", *listenAddr)
		if err := http.ListenAndServe(*listenAddr, r); err != nil {
			log.Fatal(err)
		}
	}()

	<-sigChan
	log.Println("Server stopped")
}
