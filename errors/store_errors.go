// api/errors/store_errors.go
package errors

var (
	ErrConcurrentModification = New(ErrConflict, "concurrent modification")
	ErrDuplicateKey           = New(ErrConflict, "duplicate key")
	ErrRecordNotFound         = New(ErrNotFound, "record not found")
	ErrDatabaseOperation      = New(ErrStorageUnavailable, "database operation failed")
	ErrBlobStore              = New(ErrStorageUnavailable, "blob storage unavailable")
)
