package main

import (
	"errors"
	"fmt"

	"github.com/ovoronin/go-issue-tracker/internal/adapter"
	"github.com/ovoronin/go-issue-tracker/internal/client"
	"github.com/ovoronin/go-issue-tracker/internal/config"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/service"
	"github.com/ovoronin/go-issue-tracker/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("tracker-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	tracker := adapter.NewHTTPTrackerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.RequestTimeout,
	}, log)
	email := adapter.NewHTTPEmailClient(cfg.EmailGatewayURL, cfg.RequestTimeout)

	services := service.NewClientServices(tracker, email, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
