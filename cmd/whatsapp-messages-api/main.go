package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/clientline/whatsapp-messages-api/internal/app"
	"github.com/clientline/whatsapp-messages-api/internal/config"
	"github.com/clientline/whatsapp-messages-api/internal/db/migrations"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	mainCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	migrationCommand := flag.String("migrations", "", "run migrations")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations only")
	envFile := flag.String("env-file", ".env", "path to env file")
	flag.Parse()

	settings, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("could not load settings: %s", err)
	}

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatalf("could not parse log level: %s", err)
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", settings.ServiceName).Logger()

	if *migrationCommand != "" || *migrateOnly {
		if *migrationCommand == "" {
			*migrationCommand = "up -v"
		}
		if err := migrations.RunGoose(mainCtx, strings.Fields(*migrationCommand), settings.DB); err != nil {
			logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
		if *migrateOnly {
			return
		}
	}

	server, err := app.CreateServer(mainCtx, &settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create server")
	}

	runnerGroup, runnerCtx := errgroup.WithContext(mainCtx)
	runnerGroup.Go(func() error {
		logger.Info().Str("port", strconv.Itoa(settings.Port)).Msg("Starting web server")
		return server.Listen(":" + strconv.Itoa(settings.Port))
	})
	runnerGroup.Go(func() error {
		<-runnerCtx.Done()
		logger.Info().Msg("Received signal, shutting down...")
		return server.ShutdownWithTimeout(10 * time.Second)
	})

	if err := runnerGroup.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed.")
	}
	logger.Info().Msg("Server stopped.")
}
