// api/model/esignature.go
package model

import (
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

type SignatureStatus string

const (
	SignatureStatusPending SignatureStatus = "PENDING"
	SignatureStatusSigned  SignatureStatus = "SIGNED"
	SignatureStatusExpired SignatureStatus = "EXPIRED"
	SignatureStatusRevoked SignatureStatus = "REVOKED"
)

type Certificate struct {
	Issuer       string     `json:"issuer,omitempty" bson:"issuer,omitempty"`
	SerialNumber string     `json:"serialNumber,omitempty" bson:"serialNumber,omitempty"`
	ValidFrom    *time.Time `json:"validFrom,omitempty" bson:"validFrom,omitempty"`
	ValidTo      *time.Time `json:"validTo,omitempty" bson:"validTo,omitempty"`
}

type ESignature struct {
	Base          `bson:",inline"`
	ESignatureID  string          `json:"eSignatureId" bson:"eSignatureId" validate:"required,max=64"`
	UserID        string          `json:"user" bson:"user" validate:"required"`
	DocumentID    string          `json:"document" bson:"document" validate:"required"`
	Type          string          `json:"type" bson:"type" validate:"required,oneof=ELECTRONIC DIGITAL WET"`
	Status        SignatureStatus `json:"status" bson:"status"`
	SignedAt      *time.Time      `json:"signedAt,omitempty" bson:"signedAt,omitempty"`
	ExpiresAt     *time.Time      `json:"expiresAt,omitempty" bson:"expiresAt,omitempty"`
	SignatureData string          `json:"signatureData,omitempty" bson:"signatureData,omitempty"`
	Certificate   Certificate     `json:"certificate" bson:"certificate"`
	CreatedBy     string          `json:"createdBy" bson:"createdBy"`
	UpdatedBy     string          `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`

	Valid bool `json:"isValid" bson:"-"`
}

func (e *ESignature) Initialize(actor string, now time.Time) {
	e.Status = SignatureStatusPending
	e.SignedAt = nil
	e.CreatedBy = actor
	e.UpdatedBy = actor
	e.Touch(now)
	e.Evaluate(now)
}

// IsValid is true for a signed signature that has not expired.
func (e *ESignature) IsValid(now time.Time) bool {
	if e.Status != SignatureStatusSigned {
		return false
	}
	return e.ExpiresAt == nil || e.ExpiresAt.After(now)
}

// Evaluate flips a pending or signed signature to EXPIRED once expiresAt has passed.
// It reports whether the stored status changed.
func (e *ESignature) Evaluate(now time.Time) bool {
	changed := false
	if e.ExpiresAt != nil && !e.ExpiresAt.After(now) &&
		(e.Status == SignatureStatusPending || e.Status == SignatureStatusSigned) {
		e.Status = SignatureStatusExpired
		changed = true
	}
	e.Valid = e.IsValid(now)
	return changed
}

func (e *ESignature) Sign(actor, signatureData string, now time.Time) error {
	e.Evaluate(now)
	if e.Status != SignatureStatusPending {
		return etmf_errors.Newf(etmf_errors.ErrInvalidState, "cannot sign a signature in status %s", e.Status)
	}
	if actor != e.UserID {
		return etmf_errors.ErrNotSigner
	}
	if signatureData == "" {
		return etmf_errors.Validation("signature data is required")
	}
	signedAt := now
	e.SignatureData = signatureData
	e.SignedAt = &signedAt
	e.Status = SignatureStatusSigned
	e.UpdatedBy = actor
	e.Touch(now)
	e.Evaluate(now)
	return nil
}

func (e *ESignature) Revoke(actor string, now time.Time) error {
	e.Evaluate(now)
	if e.Status != SignatureStatusPending && e.Status != SignatureStatusSigned {
		return etmf_errors.Newf(etmf_errors.ErrInvalidState, "cannot revoke a signature in status %s", e.Status)
	}
	e.Status = SignatureStatusRevoked
	e.UpdatedBy = actor
	e.Touch(now)
	e.Evaluate(now)
	return nil
}

func (e *ESignature) SetExpiry(expiresAt time.Time, actor string, now time.Time) error {
	if e.Status == SignatureStatusRevoked {
		return etmf_errors.New(etmf_errors.ErrInvalidState, "signature is revoked")
	}
	e.ExpiresAt = &expiresAt
	e.UpdatedBy = actor
	e.Touch(now)
	e.Evaluate(now)
	return nil
}
