package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/surebet-tracker/internal/apperrors"
	"github.com/ndewijer/surebet-tracker/internal/model"
	"github.com/ndewijer/surebet-tracker/internal/validation"
)

// ExportFileName is the suggested file name for downloaded exports.
const ExportFileName = "surebet-data.json"

// TransferService exports and imports both documents as a single JSON document.
type TransferService struct {
	store    Store
	profiles *ProfileService
}

// NewTransferService creates a new TransferService.
func NewTransferService(store Store, profiles *ProfileService) *TransferService {
	return &TransferService{
		store:    store,
		profiles: profiles,
	}
}

// Export returns the current profile and operation list.
func (s *TransferService) Export(ctx context.Context) (model.ExportDocument, error) {
	profile, err := s.profiles.GetProfile(ctx)
	if err != nil {
		return model.ExportDocument{}, err
	}
	ops, err := s.store.LoadOperations(ctx)
	if err != nil {
		return model.ExportDocument{}, err
	}
	if ops == nil {
		ops = []model.Operation{}
	}

	return model.ExportDocument{
		ExportedAt: time.Now().UTC(),
		UserData:   profile,
		Operations: ops,
	}, nil
}

// Import replaces the documents present in data. A userData key replaces the profile
// and an operations key replaces the whole list; an absent key leaves that document
// untouched. Both replacements are applied in one transaction.
//
// Returns apperrors.ErrImportMalformed, with nothing changed, if data is not a JSON
// object, has neither key, or holds invalid operations.
func (s *TransferService) Import(ctx context.Context, data []byte) (model.ImportResult, error) {
	var doc model.ImportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.ImportResult{}, fmt.Errorf("%w: %w", apperrors.ErrImportMalformed, err)
	}
	if doc.UserData == nil && doc.Operations == nil {
		return model.ImportResult{}, fmt.Errorf("%w: expected userData or operations", apperrors.ErrImportMalformed)
	}
	if err := validation.ValidateImport(doc); err != nil {
		return model.ImportResult{}, fmt.Errorf("%w: %w", apperrors.ErrImportMalformed, err)
	}

	if doc.UserData != nil {
		doc.UserData.ApplyDefaults(s.profiles.defaultCurrency)
	}
	if doc.Operations != nil {
		normalizeImported(*doc.Operations)
	}

	if err := s.store.ReplaceAll(ctx, doc.UserData, doc.Operations); err != nil {
		return model.ImportResult{}, fmt.Errorf("failed to import data: %w", err)
	}

	result := model.ImportResult{
		ProfileReplaced:    doc.UserData != nil,
		OperationsReplaced: doc.Operations != nil,
	}
	if doc.Operations != nil {
		result.OperationCount = len(*doc.Operations)
	}
	return result, nil
}

// normalizeImported fills a blank status with open and generates missing leg IDs.
func normalizeImported(ops []model.Operation) {
	for i := range ops {
		if ops[i].Status == "" {
			ops[i].Status = model.StatusOpen
		}
		for j := range ops[i].Bets {
			if ops[i].Bets[j].ID == "" {
				ops[i].Bets[j].ID = uuid.New().String()
			}
		}
	}
}
