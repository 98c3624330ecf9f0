package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/google/uuid"
	"github.com/ndewijer/surebet-tracker/internal/apperrors"
	"github.com/ndewijer/surebet-tracker/internal/model"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	backupPrefix        = "surebet-backup-"
	backupExtPlain      = ".json"
	backupExtEncrypted  = ".fernet"
	backupTimeLayout    = "20060102T150405.000Z"
	scheduledBackupTime = 2 * time.Minute

	// LatestBackup selects the newest backup file in Restore.
	LatestBackup = "latest"
)

// BackupService writes export documents to a directory, optionally encrypted with a
// fernet key, and restores them through the import path.
type BackupService struct {
	transfer *TransferService
	dir      string
	key      *fernet.Key
	retain   int
}

// NewBackupService creates a new BackupService. A nil key writes plain JSON backups;
// retain is the number of backup files kept (0 keeps all).
func NewBackupService(transfer *TransferService, dir string, key *fernet.Key, retain int) *BackupService {
	return &BackupService{
		transfer: transfer,
		dir:      dir,
		key:      key,
		retain:   retain,
	}
}

// Backup writes the current export document to a new file and prunes old backups.
func (s *BackupService) Backup(ctx context.Context) (model.BackupInfo, error) {
	doc, err := s.transfer.Export(ctx)
	if err != nil {
		return model.BackupInfo{}, err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return model.BackupInfo{}, fmt.Errorf("failed to encode backup: %w", err)
	}

	ext := backupExtPlain
	if s.key != nil {
		data, err = fernet.EncryptAndSign(data, s.key)
		if err != nil {
			return model.BackupInfo{}, fmt.Errorf("failed to encrypt backup: %w", err)
		}
		ext = backupExtEncrypted
	}

	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return model.BackupInfo{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := backupPrefix + doc.ExportedAt.Format(backupTimeLayout) + "-" + uuid.New().String()[:8] + ext
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return model.BackupInfo{}, fmt.Errorf("failed to write backup: %w", err)
	}

	if err := s.prune(); err != nil {
		log.Warn().Err(err).Msg("failed to prune old backups")
	}

	return model.BackupInfo{
		Name:      name,
		Size:      int64(len(data)),
		CreatedAt: doc.ExportedAt,
		Encrypted: s.key != nil,
	}, nil
}

// List returns the backup files in the backup directory, newest first.
// A missing directory yields an empty list.
func (s *BackupService) List() ([]model.BackupInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return []model.BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []model.BackupInfo{}
	for _, entry := range entries {
		info, ok := parseBackupName(entry.Name())
		if !ok || entry.IsDir() {
			continue
		}
		if fi, err := entry.Info(); err == nil {
			info.Size = fi.Size()
		}
		backups = append(backups, info)
	}

	// The timestamp layout sorts lexically.
	slices.SortFunc(backups, func(a, b model.BackupInfo) int {
		return strings.Compare(b.Name, a.Name)
	})
	return backups, nil
}

// Restore imports a backup file. name is a file in the backup directory, a path, or
// LatestBackup for the newest file.
func (s *BackupService) Restore(ctx context.Context, name string) (model.ImportResult, error) {
	path, err := s.resolve(name)
	if err != nil {
		return model.ImportResult{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.ImportResult{}, fmt.Errorf("%w: %s", apperrors.ErrBackupNotFound, name)
	}
	if err != nil {
		return model.ImportResult{}, fmt.Errorf("failed to read backup: %w", err)
	}

	if strings.HasSuffix(path, backupExtEncrypted) {
		if s.key == nil {
			return model.ImportResult{}, apperrors.ErrBackupKeyRequired
		}
		// A negative TTL disables token expiry.
		data = fernet.VerifyAndDecrypt(data, -1, []*fernet.Key{s.key})
		if data == nil {
			return model.ImportResult{}, apperrors.ErrBackupDecrypt
		}
	}

	return s.transfer.Import(ctx, data)
}

// Schedule returns a cron scheduler that writes a backup on spec in loc. The caller
// starts and stops it.
func (s *BackupService) Schedule(spec string, loc *time.Location) (*cron.Cron, error) {
	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), scheduledBackupTime)
		defer cancel()

		info, err := s.Backup(ctx)
		if err != nil {
			log.Error().Err(err).Msg("scheduled backup failed")
			return
		}
		log.Info().
			Str("file", info.Name).
			Int64("size", info.Size).
			Bool("encrypted", info.Encrypted).
			Msg("scheduled backup written")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}
	return c, nil
}

func (s *BackupService) resolve(name string) (string, error) {
	if name == LatestBackup {
		backups, err := s.List()
		if err != nil {
			return "", err
		}
		if len(backups) == 0 {
			return "", fmt.Errorf("%w: no backups in %s", apperrors.ErrBackupNotFound, s.dir)
		}
		return filepath.Join(s.dir, backups[0].Name), nil
	}
	if strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}
	return filepath.Join(s.dir, name), nil
}

func (s *BackupService) prune() error {
	if s.retain <= 0 {
		return nil
	}
	backups, err := s.List()
	if err != nil {
		return err
	}
	for _, b := range backups[min(s.retain, len(backups)):] {
		if err := os.Remove(filepath.Join(s.dir, b.Name)); err != nil {
			return fmt.Errorf("failed to remove backup %s: %w", b.Name, err)
		}
	}
	return nil
}

func parseBackupName(name string) (model.BackupInfo, bool) {
	rest, ok := strings.CutPrefix(name, backupPrefix)
	if !ok {
		return model.BackupInfo{}, false
	}

	encrypted := strings.HasSuffix(rest, backupExtEncrypted)
	if !encrypted && !strings.HasSuffix(rest, backupExtPlain) {
		return model.BackupInfo{}, false
	}
	if len(rest) < len(backupTimeLayout) {
		return model.BackupInfo{}, false
	}
	created, err := time.Parse(backupTimeLayout, rest[:len(backupTimeLayout)])
	if err != nil {
		return model.BackupInfo{}, false
	}

	return model.BackupInfo{Name: name, CreatedAt: created, Encrypted: encrypted}, true
}
