// api/errors/document_errors.go
package errors

var (
	ErrDocumentNotFound  = New(ErrNotFound, "document not found")
	ErrDocumentConflict  = New(ErrConflict, "document id already exists")
	ErrFileTooLarge      = New(ErrValidation, "file exceeds maximum size of 50MB")
	ErrFileMissing       = New(ErrValidation, "file is required")
	ErrDocumentArchived  = New(ErrInvalidState, "document is archived")
	ErrInvalidTransition = New(ErrInvalidState, "invalid status transition")
	ErrCommentNotFound   = New(ErrNotFound, "comment not found")
)
