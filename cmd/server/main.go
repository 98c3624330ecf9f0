package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/surebet-tracker/internal/api"
	"github.com/ndewijer/surebet-tracker/internal/config"
	"github.com/ndewijer/surebet-tracker/internal/database"
	"github.com/ndewijer/surebet-tracker/internal/logging"
	"github.com/ndewijer/surebet-tracker/internal/repository"
	"github.com/ndewijer/surebet-tracker/internal/service"
	"github.com/ndewijer/surebet-tracker/internal/version"
)

func main() {
	restore := flag.String("restore", "", `restore a backup file (name, path or "latest") and exit`)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Warn().Err(err).Msg("logging configuration ignored")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Open database connection
	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("failed to open database")
	}
	defer db.Close()

	log.Info().Str("path", cfg.Database.Path).Str("version", version.Version).Msg("connected to database")

	store := repository.NewStore(db)

	// Create services
	systemService := service.NewSystemService(db)
	profileService := service.NewProfileService(store, cfg.App.DefaultCurrency)
	calculatorService := service.NewCalculatorService()
	operationService := service.NewOperationService(store, profileService, cfg.App.Location)
	reportService := service.NewReportService(store, profileService, cfg.App.Location)
	transferService := service.NewTransferService(store, profileService)
	backupService := service.NewBackupService(transferService, cfg.Backup.Dir, cfg.Backup.Key, cfg.Backup.Retain)

	if *restore != "" {
		result, err := backupService.Restore(ctx, *restore)
		if err != nil {
			log.Fatal().Err(err).Str("backup", *restore).Msg("restore failed")
		}
		log.Info().
			Str("backup", *restore).
			Bool("profile", result.ProfileReplaced).
			Int("operations", result.OperationCount).
			Msg("backup restored")
		return
	}

	// Create router
	router := api.NewRouter(
		systemService,
		profileService,
		calculatorService,
		operationService,
		reportService,
		transferService,
		backupService,
		cfg,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server")

		// Graceful shutdown with timeout
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.Backup.Schedule != "" {
		scheduler, err := backupService.Schedule(cfg.Backup.Schedule, cfg.App.Location)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to schedule backups")
		}
		g.Go(func() error {
			scheduler.Start()
			log.Info().Str("schedule", cfg.Backup.Schedule).Str("dir", cfg.Backup.Dir).Msg("scheduled backups enabled")
			<-gctx.Done()
			// Wait for a running backup to finish.
			<-scheduler.Stop().Done()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("server stopped with error")
	}

	log.Info().Msg("server exited")
}
