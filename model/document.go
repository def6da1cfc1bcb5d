// api/model/document.go
package model

import (
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

// MaxFileSize is the largest file a document version may reference.
const MaxFileSize int64 = 50 * 1024 * 1024

type DocumentStatus string

const (
	DocumentStatusDraft           DocumentStatus = "DRAFT"
	DocumentStatusInReview        DocumentStatus = "IN_REVIEW"
	DocumentStatusInQC            DocumentStatus = "IN_QC"
	DocumentStatusPendingApproval DocumentStatus = "PENDING_APPROVAL"
	DocumentStatusApproved        DocumentStatus = "APPROVED"
	DocumentStatusRejected        DocumentStatus = "REJECTED"
	DocumentStatusArchived        DocumentStatus = "ARCHIVED"
	DocumentStatusExpired         DocumentStatus = "EXPIRED"
)

type DocumentType string

const (
	DocumentTypeProtocol             DocumentType = "PROTOCOL"
	DocumentTypeInvestigatorBrochure DocumentType = "INVESTIGATOR_BROCHURE"
	DocumentTypeInformedConsent      DocumentType = "INFORMED_CONSENT"
	DocumentTypeRegulatory           DocumentType = "REGULATORY_DOCUMENT"
	DocumentTypeClinicalReport       DocumentType = "CLINICAL_REPORT"
	DocumentTypeSafetyReport         DocumentType = "SAFETY_REPORT"
	DocumentTypeQuality              DocumentType = "QUALITY_DOCUMENT"
	DocumentTypeTraining             DocumentType = "TRAINING_DOCUMENT"
	DocumentTypeOther                DocumentType = "OTHER"
)

type AccessLevel string

const (
	AccessLevelPublic       AccessLevel = "PUBLIC"
	AccessLevelRestricted   AccessLevel = "RESTRICTED"
	AccessLevelConfidential AccessLevel = "CONFIDENTIAL"
)

// FileRef points at the stored bytes of one document version.
type FileRef struct {
	URL      string `json:"fileUrl" bson:"fileUrl"`
	Name     string `json:"fileName" bson:"fileName"`
	Size     int64  `json:"fileSize" bson:"fileSize"`
	MimeType string `json:"mimeType" bson:"mimeType"`
}

type Approval struct {
	UserID     string    `json:"user" bson:"user"`
	ApprovedAt time.Time `json:"approvedAt" bson:"approvedAt"`
	Signature  string    `json:"signature,omitempty" bson:"signature,omitempty"`
	Comments   string    `json:"comments,omitempty" bson:"comments,omitempty"`
}

// VersionSnapshot is the frozen file reference of a superseded version.
type VersionSnapshot struct {
	Version       int       `json:"version" bson:"version"`
	File          FileRef   `json:"file" bson:"file"`
	UploadedAt    time.Time `json:"uploadedAt" bson:"uploadedAt"`
	UploadedBy    string    `json:"uploadedBy" bson:"uploadedBy"`
	ChangeSummary string    `json:"changeSummary,omitempty" bson:"changeSummary,omitempty"`
}

type Reply struct {
	ID        string    `json:"id" bson:"id"`
	Content   string    `json:"content" bson:"content"`
	UserID    string    `json:"user" bson:"user"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

type Comment struct {
	ID        string    `json:"id" bson:"id"`
	Content   string    `json:"content" bson:"content"`
	UserID    string    `json:"user" bson:"user"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	Replies   []Reply   `json:"replies" bson:"replies"`
}

type Document struct {
	Base             `bson:",inline"`
	DocumentID       string             `json:"documentId" bson:"documentId" validate:"omitempty,max=64"`
	Title            string             `json:"title" bson:"title" validate:"required,max=100"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	DocumentType     DocumentType       `json:"documentType,omitempty" bson:"documentType,omitempty" validate:"omitempty,oneof=PROTOCOL INVESTIGATOR_BROCHURE INFORMED_CONSENT REGULATORY_DOCUMENT CLINICAL_REPORT SAFETY_REPORT QUALITY_DOCUMENT TRAINING_DOCUMENT OTHER"`
	TMFReference     string             `json:"tmfReference,omitempty" bson:"tmfReference,omitempty"`
	Classification   ClassificationPath `json:"classification" bson:"classification"`
	Version          int                `json:"version" bson:"version"`
	Study            string             `json:"study,omitempty" bson:"study,omitempty"`
	Site             string             `json:"site,omitempty" bson:"site,omitempty"`
	Country          string             `json:"country,omitempty" bson:"country,omitempty"`
	File             FileRef            `json:"file" bson:"file"`
	Language         string             `json:"language" bson:"language"`
	DocumentDate     time.Time          `json:"documentDate" bson:"documentDate"`
	CreationDate     time.Time          `json:"creationDate" bson:"creationDate"`
	ModificationDate time.Time          `json:"modificationDate" bson:"modificationDate"`
	ImportDate       time.Time          `json:"importDate" bson:"importDate"`
	ApprovalDate     *time.Time         `json:"approvalDate,omitempty" bson:"approvalDate,omitempty"`
	ExpirationDate   *time.Time         `json:"expirationDate,omitempty" bson:"expirationDate,omitempty"`
	Author           string             `json:"author,omitempty" bson:"author,omitempty"`
	UploadedBy       string             `json:"uploadedBy" bson:"uploadedBy"`
	Status           DocumentStatus     `json:"status" bson:"status"`
	AccessLevel      AccessLevel        `json:"accessLevel" bson:"accessLevel" validate:"omitempty,oneof=PUBLIC RESTRICTED CONFIDENTIAL"`
	Tags             []string           `json:"tags" bson:"tags"`
	Approvers        []Approval         `json:"approvers" bson:"approvers"`
	PreviousVersions []VersionSnapshot  `json:"previousVersions" bson:"previousVersions"`
	AuditTrail       AuditTrail         `json:"auditTrail" bson:"auditTrail"`
	Comments         []Comment          `json:"comments" bson:"comments"`

	// EffectiveStatus is computed on read and never stored.
	EffectiveStatus DocumentStatus `json:"effectiveStatus,omitempty" bson:"-"`
}

// DocumentPatch carries the metadata fields updateMetadata may change.
type DocumentPatch struct {
	Title          *string             `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description    *string             `json:"description,omitempty"`
	DocumentType   *DocumentType       `json:"documentType,omitempty" validate:"omitempty,oneof=PROTOCOL INVESTIGATOR_BROCHURE INFORMED_CONSENT REGULATORY_DOCUMENT CLINICAL_REPORT SAFETY_REPORT QUALITY_DOCUMENT TRAINING_DOCUMENT OTHER"`
	Classification *ClassificationPath `json:"classification,omitempty"`
	Study          *string             `json:"study,omitempty"`
	Site           *string             `json:"site,omitempty"`
	Country        *string             `json:"country,omitempty"`
	Language       *string             `json:"language,omitempty"`
	DocumentDate   *time.Time          `json:"documentDate,omitempty"`
	ExpirationDate *time.Time          `json:"expirationDate,omitempty"`
	AccessLevel    *AccessLevel        `json:"accessLevel,omitempty" validate:"omitempty,oneof=PUBLIC RESTRICTED CONFIDENTIAL"`
}

// DocumentFilter narrows document listings. Empty fields are ignored.
type DocumentFilter struct {
	ZoneID        string
	SectionID     string
	ArtifactID    string
	SubArtifactID string
	Status        DocumentStatus
	Study         string
	Site          string
	DocumentType  DocumentType
	Tag           string
}

// ValidateFileSize rejects files above MaxFileSize.
func ValidateFileSize(size int64) error {
	if size < 0 {
		return etmf_errors.Validation("file size cannot be negative")
	}
	if size > MaxFileSize {
		return etmf_errors.ErrFileTooLarge
	}
	return nil
}
