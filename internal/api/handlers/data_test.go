package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ndewijer/surebet-tracker/internal/model"
	"github.com/ndewijer/surebet-tracker/internal/testutil"
)

func TestDataHandler_ExportImport(t *testing.T) {
	source := testutil.NewTestStore(t)
	sourceServices := testutil.NewTestServices(t, source)
	exporter := NewDataHandler(sourceServices.Transfer, sourceServices.Backup)

	testutil.NewProfile().WithName("Ana").WithInitialBankroll(500).Build(t, source)
	ops := testutil.CreateOperations(t, source, 2)

	w := httptest.NewRecorder()
	exporter.Export(w, httptest.NewRequest(http.MethodGet, "/api/data/export", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "surebet-data.json") {
		t.Errorf("Expected attachment file name, got %q", cd)
	}
	exported := w.Body.Bytes()

	target := testutil.NewTestStore(t)
	targetServices := testutil.NewTestServices(t, target)
	importer := NewDataHandler(targetServices.Transfer, targetServices.Backup)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/data/import", exported, nil)
	w = httptest.NewRecorder()
	importer.Import(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result model.ImportResult
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&result)

	if !result.ProfileReplaced || !result.OperationsReplaced || result.OperationCount != 2 {
		t.Errorf("Unexpected import result: %+v", result)
	}

	imported, err := target.LoadOperations(req.Context())
	if err != nil {
		t.Fatalf("LoadOperations() returned unexpected error: %v", err)
	}
	if len(imported) != 2 || imported[0].ID != ops[0].ID {
		t.Errorf("Expected imported operations in original order, got %+v", imported)
	}
	profile, err := target.LoadProfile(req.Context())
	if err != nil {
		t.Fatalf("LoadProfile() returned unexpected error: %v", err)
	}
	if profile.Name != "Ana" || profile.InitialBankroll != 500 {
		t.Errorf("Expected imported profile, got %+v", profile)
	}
}

func TestDataHandler_ImportMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not JSON", "surebets"},
		{"JSON array", "[]"},
		{"neither key present", `{"exportedAt": "2025-01-01T00:00:00Z"}`},
		{"operation without legs", `{"operations": [{"id": "a", "status": "open", "bets": []}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewTestStore(t)
			services := testutil.NewTestServices(t, store)
			handler := NewDataHandler(services.Transfer, services.Backup)
			existing := testutil.NewOperation().Build(t, store)

			req := testutil.NewJSONRequest(t, http.MethodPost, "/api/data/import", tt.body, nil)
			w := httptest.NewRecorder()
			handler.Import(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}

			ops, err := store.LoadOperations(req.Context())
			if err != nil {
				t.Fatalf("LoadOperations() returned unexpected error: %v", err)
			}
			if len(ops) != 1 || ops[0].ID != existing.ID {
				t.Errorf("Expected data untouched, got %+v", ops)
			}
		})
	}
}

func TestDataHandler_Backup(t *testing.T) {
	store := testutil.NewTestStore(t)
	services := testutil.NewTestServices(t, store)
	handler := NewDataHandler(services.Transfer, services.Backup)
	testutil.CreateOperations(t, store, 1)

	w := httptest.NewRecorder()
	handler.Backup(w, httptest.NewRequest(http.MethodPost, "/api/data/backup", nil))

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var info model.BackupInfo
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&info)

	if info.Name == "" || info.Encrypted || info.Size == 0 {
		t.Errorf("Unexpected backup info: %+v", info)
	}

	w = httptest.NewRecorder()
	handler.Backups(w, httptest.NewRequest(http.MethodGet, "/api/data/backup", nil))

	var backups []model.BackupInfo
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&backups)

	if len(backups) != 1 || backups[0].Name != info.Name {
		t.Errorf("Expected the new backup to be listed, got %+v", backups)
	}
}
