// api/errors/compliance_errors.go
package errors

var (
	ErrDeviationNotFound = New(ErrNotFound, "deviation not found")
	ErrDeviationConflict = New(ErrConflict, "deviation id already exists")

	ErrESignatureNotFound = New(ErrNotFound, "e-signature not found")
	ErrESignatureConflict = New(ErrConflict, "e-signature id already exists")
	ErrNotSigner          = New(ErrInvalidState, "actor is not the designated signer")

	ErrRoleNotFound        = New(ErrNotFound, "role not found")
	ErrRoleConflict        = New(ErrConflict, "role id or name already exists")
	ErrSystemRoleImmutable = New(ErrInvalidState, "system role permissions cannot be modified")
)
