package handlers

import (
	"net/http"

	"github.com/ndewijer/surebet-tracker/internal/api/response"
	"github.com/ndewijer/surebet-tracker/internal/apperrors"
	"github.com/ndewijer/surebet-tracker/internal/service"
)

// ReportHandler serves the bankroll projections. Every request recomputes them from
// the stored profile and operations.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler with the provided service dependency.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// Report handles GET requests for all projections at once, with display strings for the summary.
//
// Endpoint: GET /api/report
// Response: 200 OK with ReportResponse
// Error: 500 Internal Server Error if the report cannot be built
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.GetReport(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildReport.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}

// Summary handles GET requests for the bankroll summary.
//
// Endpoint: GET /api/report/summary
// Response: 200 OK with Summary
// Error: 500 Internal Server Error if the report cannot be built
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.GetSummary(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildReport.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}

// Daily handles GET requests for realized profit per local calendar day, newest first.
//
// Endpoint: GET /api/report/daily
// Response: 200 OK with array of DailyProfit
// Error: 500 Internal Server Error if the report cannot be built
func (h *ReportHandler) Daily(w http.ResponseWriter, r *http.Request) {
	daily, err := h.reportService.GetDailyProfits(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildReport.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, daily)
}

// Bankroll handles GET requests for the bankroll evolution series.
//
// Endpoint: GET /api/report/bankroll
// Response: 200 OK with array of BankrollPoint
// Error: 500 Internal Server Error if the report cannot be built
func (h *ReportHandler) Bankroll(w http.ResponseWriter, r *http.Request) {
	series, err := h.reportService.GetBankrollSeries(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildReport.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, series)
}

// Books handles GET requests for the total stake placed per bookmaker.
//
// Endpoint: GET /api/report/books
// Response: 200 OK with array of BookExposure
// Error: 500 Internal Server Error if the report cannot be built
func (h *ReportHandler) Books(w http.ResponseWriter, r *http.Request) {
	books, err := h.reportService.GetBookExposure(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBuildReport.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, books)
}
