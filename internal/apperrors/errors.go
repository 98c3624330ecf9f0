package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
var (
	// ErrOperationNotFound indicates that an operation with the given ID does not exist.
	ErrOperationNotFound = errors.New("operation not found")

	// ErrBackupNotFound indicates that no backup file matched the requested name.
	ErrBackupNotFound = errors.New("backup not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an action cannot be completed due to business rules.
var (
	// ErrInvalidStatusTransition indicates an attempt to move a completed or cancelled
	// operation to a different status.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrImportMalformed indicates an import document that is not valid JSON or has
	// neither a userData nor an operations key.
	ErrImportMalformed = errors.New("malformed import document")

	// ErrInvalidID indicates that a provided ID is not in an accepted format.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrDuplicateEntry indicates that an entity with the same unique constraint already exists.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrBackupKeyRequired indicates an encrypted backup was read without a key.
	ErrBackupKeyRequired = errors.New("backup is encrypted and no key is configured")

	// ErrBackupDecrypt indicates a backup token that does not verify with the configured key.
	ErrBackupDecrypt = errors.New("failed to decrypt backup")
)

// Operation failure errors represent system-level failures when retrieving or storing data.
var (
	ErrFailedToRetrieveProfile    = errors.New("failed to retrieve profile")
	ErrFailedToSaveProfile        = errors.New("failed to save profile")
	ErrFailedToRetrieveOperations = errors.New("failed to retrieve operations")
	ErrFailedToRetrieveOperation  = errors.New("failed to retrieve operation")
	ErrFailedToSaveOperation      = errors.New("failed to save operation")
	ErrFailedToUpdateOperation    = errors.New("failed to update operation")
	ErrFailedToDeleteOperation    = errors.New("failed to delete operation")
	ErrFailedToBuildReport        = errors.New("failed to build report")
	ErrFailedToExport             = errors.New("failed to export data")
	ErrFailedToImport             = errors.New("failed to import data")
	ErrFailedToBackup             = errors.New("failed to write backup")

	// System operation errors
	ErrFailedToGetVersionInfo = errors.New("failed to get version information")
)

