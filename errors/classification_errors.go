// api/errors/classification_errors.go
package errors

var (
	ErrZoneNotFound        = New(ErrNotFound, "zone not found")
	ErrSectionNotFound     = New(ErrNotFound, "section not found")
	ErrArtifactNotFound    = New(ErrNotFound, "artifact not found")
	ErrSubArtifactNotFound = New(ErrNotFound, "sub-artifact not found")

	ErrZoneConflict        = New(ErrConflict, "zone number already exists")
	ErrSectionConflict     = New(ErrConflict, "section number already exists in zone")
	ErrArtifactConflict    = New(ErrConflict, "artifact number already exists in section")
	ErrSubArtifactConflict = New(ErrConflict, "sub-artifact number already exists in artifact")

	ErrGraphUnavailable = New(ErrStorageUnavailable, "classification graph unavailable")
)
