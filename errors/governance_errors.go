// api/errors/governance_errors.go
package errors

var (
	ErrProtocolNotFound = New(ErrNotFound, "protocol not found")
	ErrProtocolConflict = New(ErrConflict, "protocol id already exists")

	ErrSOPNotFound = New(ErrNotFound, "SOP not found")
	ErrSOPConflict = New(ErrConflict, "SOP id already exists")

	ErrTemplateNotFound = New(ErrNotFound, "document template not found")
	ErrTemplateConflict = New(ErrConflict, "template id already exists")
	ErrTemplateNotValid = New(ErrInvalidState, "template is not approved and in effect")

	ErrInvalidVersion = New(ErrValidation, "version must be MAJOR.MINOR")
)
