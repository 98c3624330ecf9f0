// Package api wires the HTTP routes of the surebet tracker.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/surebet-tracker/internal/api/handlers"
	custommiddleware "github.com/ndewijer/surebet-tracker/internal/api/middleware"
	"github.com/ndewijer/surebet-tracker/internal/config"
	"github.com/ndewijer/surebet-tracker/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	profileService *service.ProfileService,
	calculatorService *service.CalculatorService,
	operationService *service.OperationService,
	reportService *service.ReportService,
	transferService *service.TransferService,
	backupService *service.BackupService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/profile", func(r chi.Router) {
			profileHandler := handlers.NewProfileHandler(profileService)
			r.Get("/", profileHandler.GetProfile)
			r.Put("/", profileHandler.UpdateProfile)
		})

		r.Route("/calculator", func(r chi.Router) {
			calculatorHandler := handlers.NewCalculatorHandler(calculatorService)
			r.Post("/split", calculatorHandler.Split)
			r.Post("/stakes", calculatorHandler.Stakes)
		})

		r.Route("/operation", func(r chi.Router) {
			operationHandler := handlers.NewOperationHandler(operationService)
			r.Get("/", operationHandler.Operations)
			r.Post("/split", operationHandler.CreateFromSplit)
			r.Post("/quick", operationHandler.CreateQuickEntry)

			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateIDMiddleware)
				r.Get("/", operationHandler.GetOperation)
				r.Patch("/", operationHandler.UpdateOperation)
				r.Delete("/", operationHandler.DeleteOperation)
			})
		})

		r.Route("/report", func(r chi.Router) {
			reportHandler := handlers.NewReportHandler(reportService)
			r.Get("/", reportHandler.Report)
			r.Get("/summary", reportHandler.Summary)
			r.Get("/daily", reportHandler.Daily)
			r.Get("/bankroll", reportHandler.Bankroll)
			r.Get("/books", reportHandler.Books)
		})

		r.Route("/data", func(r chi.Router) {
			dataHandler := handlers.NewDataHandler(transferService, backupService)
			r.Get("/export", dataHandler.Export)
			r.Post("/import", dataHandler.Import)
			r.Get("/backup", dataHandler.Backups)
			r.Post("/backup", dataHandler.Backup)
		})
	})

	return r
}
