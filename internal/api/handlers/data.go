package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ndewijer/surebet-tracker/internal/api/response"
	"github.com/ndewijer/surebet-tracker/internal/apperrors"
	"github.com/ndewijer/surebet-tracker/internal/service"
)

// DataHandler handles export, import and backup of the whole dataset.
type DataHandler struct {
	transferService *service.TransferService
	backupService   *service.BackupService
}

// NewDataHandler creates a new DataHandler with the provided service dependencies.
func NewDataHandler(transferService *service.TransferService, backupService *service.BackupService) *DataHandler {
	return &DataHandler{
		transferService: transferService,
		backupService:   backupService,
	}
}

// Export handles GET requests to download the export document.
//
// Endpoint: GET /api/data/export
// Response: 200 OK with ExportDocument as an attachment
// Error: 500 Internal Server Error if the export fails
func (h *DataHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.transferService.Export(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToExport.Error(), err.Error())
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ExportFileName))
	response.RespondJSON(w, http.StatusOK, doc)
}

// Import handles POST requests to replace data from an export document.
// A userData key replaces the profile and an operations key replaces every operation.
//
// Endpoint: POST /api/data/import
// Request Body: export document with userData and/or operations
// Response: 200 OK with ImportResult
// Error: 400 Bad Request if the document is malformed; nothing is changed
// Error: 500 Internal Server Error if the import fails
func (h *DataHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.transferService.Import(r.Context(), data)
	if err != nil {
		if errors.Is(err, apperrors.ErrImportMalformed) {
			response.RespondError(w, http.StatusBadRequest, apperrors.ErrImportMalformed.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToImport.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}

// Backup handles POST requests to write a backup file now.
//
// Endpoint: POST /api/data/backup
// Response: 201 Created with BackupInfo
// Error: 500 Internal Server Error if the backup cannot be written
func (h *DataHandler) Backup(w http.ResponseWriter, r *http.Request) {
	info, err := h.backupService.Backup(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBackup.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, info)
}

// Backups handles GET requests to list backup files, newest first.
//
// Endpoint: GET /api/data/backup
// Response: 200 OK with array of BackupInfo
// Error: 500 Internal Server Error if the backup directory cannot be read
func (h *DataHandler) Backups(w http.ResponseWriter, _ *http.Request) {
	backups, err := h.backupService.List()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToBackup.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, backups)
}
