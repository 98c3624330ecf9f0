package model

import "time"

// ExportDocument is the backup/export format holding both persisted documents.
type ExportDocument struct {
	ExportedAt time.Time   `json:"exportedAt"`
	UserData   UserProfile `json:"userData"`
	Operations []Operation `json:"operations"`
}

// ImportDocument is the decoded import payload. A nil field means the key was absent
// and the corresponding document must be left untouched.
type ImportDocument struct {
	ExportedAt *time.Time   `json:"exportedAt,omitempty"`
	UserData   *UserProfile `json:"userData,omitempty"`
	Operations *[]Operation `json:"operations,omitempty"`
}

// ImportResult summarizes what an import replaced.
type ImportResult struct {
	ProfileReplaced    bool `json:"profileReplaced"`
	OperationsReplaced bool `json:"operationsReplaced"`
	OperationCount     int  `json:"operationCount"`
}

// BackupInfo describes one backup file.
type BackupInfo struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	Encrypted bool      `json:"encrypted"`
}
