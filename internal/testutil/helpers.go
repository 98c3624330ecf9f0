package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ndewijer/surebet-tracker/internal/repository"
	"github.com/ndewijer/surebet-tracker/internal/service"
)

// TestLocation is the display and bucketing time zone used by test services (UTC-3).
var TestLocation = time.FixedZone("BRT", -3*60*60)

// Services bundles every service built on one store.
type Services struct {
	Profile    *service.ProfileService
	Calculator *service.CalculatorService
	Operation  *service.OperationService
	Report     *service.ReportService
	Transfer   *service.TransferService
	Backup     *service.BackupService
}

// NewTestStore returns a SQLite store backed by a fresh in-memory database.
func NewTestStore(t *testing.T) *repository.Store {
	t.Helper()
	return repository.NewStore(SetupTestDB(t))
}

// NewTestServices wires every service on store with BRL as default currency and
// unencrypted backups in a temporary directory.
func NewTestServices(t *testing.T, store service.Store) *Services {
	t.Helper()

	profiles := service.NewProfileService(store, "BRL")
	transfer := service.NewTransferService(store, profiles)

	return &Services{
		Profile:    profiles,
		Calculator: service.NewCalculatorService(),
		Operation:  service.NewOperationService(store, profiles, TestLocation),
		Report:     service.NewReportService(store, profiles, TestLocation),
		Transfer:   transfer,
		Backup:     service.NewBackupService(transfer, t.TempDir(), nil, 0),
	}
}

// MakeID generates a unique ID for testing.
//
// Example usage:
//
//	id := testutil.MakeID()
func MakeID() string {
	return uuid.New().String()
}
