// api/model/document_lifecycle.go
package model

import (
	"strings"
	"time"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

const (
	ActionDocumentCreated = "DOCUMENT_CREATED"
	ActionSubmitForReview = "SUBMIT_FOR_REVIEW"
	ActionCompleteReview  = "COMPLETE_REVIEW"
	ActionPassQC          = "PASS_QC"
	ActionApprove         = "APPROVE"
	ActionReject          = "REJECT"
	ActionArchive         = "ARCHIVE"
	ActionVersionAdded    = "VERSION_ADDED"
	ActionApproverAdded   = "APPROVER_ADDED"
	ActionMetadataUpdated = "METADATA_UPDATED"
	ActionCommentAdded    = "COMMENT_ADDED"
	ActionReplyAdded      = "REPLY_ADDED"
	ActionTagAdded        = "TAG_ADDED"
	ActionTagRemoved      = "TAG_REMOVED"
)

// Initialize sets the defaults of a freshly created document.
func (d *Document) Initialize(actor string, now time.Time) {
	d.Version = 1
	d.Status = DocumentStatusDraft
	d.UploadedBy = actor
	if d.Author == "" {
		d.Author = actor
	}
	if d.Language == "" {
		d.Language = "en"
	}
	if d.AccessLevel == "" {
		d.AccessLevel = AccessLevelRestricted
	}
	if d.DocumentDate.IsZero() {
		d.DocumentDate = now
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	d.CreationDate = now
	d.ImportDate = now
	d.ModificationDate = now
	d.Approvers = []Approval{}
	d.PreviousVersions = []VersionSnapshot{}
	d.Comments = []Comment{}
	d.AuditTrail = AuditTrail{}
	d.AuditTrail.Append(ActionDocumentCreated, actor, now, map[string]interface{}{
		"status":  string(DocumentStatusDraft),
		"version": d.Version,
	})
	d.Touch(now)
}

// EffectiveStatusAt derives EXPIRED for documents past their expiration date.
func (d *Document) EffectiveStatusAt(now time.Time) DocumentStatus {
	if d.Status != DocumentStatusArchived && d.ExpirationDate != nil && !d.ExpirationDate.After(now) {
		return DocumentStatusExpired
	}
	return d.Status
}

// Evaluate fills EffectiveStatus for presentation.
func (d *Document) Evaluate(now time.Time) {
	d.EffectiveStatus = d.EffectiveStatusAt(now)
}

func (d *Document) transition(action string, to DocumentStatus, actor string, now time.Time, from ...DocumentStatus) error {
	current := d.EffectiveStatusAt(now)
	allowed := false
	for _, s := range from {
		if s == current {
			allowed = true
			break
		}
	}
	if !allowed {
		return etmf_errors.Wrap(etmf_errors.ErrInvalidState, etmf_errors.ErrInvalidTransition,
			"cannot "+strings.ToLower(strings.ReplaceAll(action, "_", " "))+" a document in status "+string(current))
	}
	d.Status = to
	d.mutated(action, actor, now, statusChange(string(current), string(to)))
	return nil
}

func (d *Document) mutated(action, actor string, now time.Time, details map[string]interface{}) {
	d.ModificationDate = now
	d.AuditTrail.Append(action, actor, now, details)
	d.Touch(now)
}

func (d *Document) SubmitForReview(actor string, now time.Time) error {
	return d.transition(ActionSubmitForReview, DocumentStatusInReview, actor, now,
		DocumentStatusDraft, DocumentStatusRejected)
}

func (d *Document) CompleteReview(actor string, now time.Time) error {
	return d.transition(ActionCompleteReview, DocumentStatusInQC, actor, now, DocumentStatusInReview)
}

func (d *Document) PassQC(actor string, now time.Time) error {
	return d.transition(ActionPassQC, DocumentStatusPendingApproval, actor, now, DocumentStatusInQC)
}

func (d *Document) Approve(actor string, now time.Time) error {
	if err := d.transition(ActionApprove, DocumentStatusApproved, actor, now, DocumentStatusPendingApproval); err != nil {
		return err
	}
	approvedAt := now
	d.ApprovalDate = &approvedAt
	return nil
}

func (d *Document) Reject(actor, reason string, now time.Time) error {
	if err := d.transition(ActionReject, DocumentStatusRejected, actor, now,
		DocumentStatusDraft, DocumentStatusInReview, DocumentStatusInQC, DocumentStatusPendingApproval); err != nil {
		return err
	}
	if reason != "" {
		d.AuditTrail[len(d.AuditTrail)-1].Details["reason"] = reason
	}
	return nil
}

// Archive stands in for deletion and is legal from every state but ARCHIVED.
func (d *Document) Archive(actor string, now time.Time) error {
	return d.transition(ActionArchive, DocumentStatusArchived, actor, now,
		DocumentStatusDraft, DocumentStatusInReview, DocumentStatusInQC, DocumentStatusPendingApproval,
		DocumentStatusApproved, DocumentStatusRejected, DocumentStatusExpired)
}

// AddVersion snapshots the current file and advances the version.
func (d *Document) AddVersion(file FileRef, actor, changeSummary string, now time.Time) error {
	if d.Status == DocumentStatusArchived {
		return etmf_errors.ErrDocumentArchived
	}
	if err := ValidateFileSize(file.Size); err != nil {
		return err
	}
	d.PreviousVersions = append(d.PreviousVersions, VersionSnapshot{
		Version:       d.Version,
		File:          d.File,
		UploadedAt:    d.ModificationDate,
		UploadedBy:    d.UploadedBy,
		ChangeSummary: changeSummary,
	})
	d.Version++
	d.File = file
	d.UploadedBy = actor
	d.mutated(ActionVersionAdded, actor, now, map[string]interface{}{
		"version":       d.Version,
		"changeSummary": changeSummary,
	})
	return nil
}

// AddApprover records an approval signature without changing status.
func (d *Document) AddApprover(actor, signature, comments string, now time.Time) {
	d.Approvers = append(d.Approvers, Approval{
		UserID:     actor,
		ApprovedAt: now,
		Signature:  signature,
		Comments:   comments,
	})
	d.mutated(ActionApproverAdded, actor, now, nil)
}

func (d *Document) UpdateMetadata(patch DocumentPatch, actor string, now time.Time) error {
	if d.Status == DocumentStatusArchived {
		return etmf_errors.ErrDocumentArchived
	}
	changed := []string{}
	if patch.Title != nil {
		d.Title = *patch.Title
		changed = append(changed, "title")
	}
	if patch.Description != nil {
		d.Description = *patch.Description
		changed = append(changed, "description")
	}
	if patch.DocumentType != nil {
		d.DocumentType = *patch.DocumentType
		changed = append(changed, "documentType")
	}
	if patch.Classification != nil {
		d.Classification = *patch.Classification
		changed = append(changed, "classification")
	}
	if patch.Study != nil {
		d.Study = *patch.Study
		changed = append(changed, "study")
	}
	if patch.Site != nil {
		d.Site = *patch.Site
		changed = append(changed, "site")
	}
	if patch.Country != nil {
		d.Country = *patch.Country
		changed = append(changed, "country")
	}
	if patch.Language != nil {
		d.Language = *patch.Language
		changed = append(changed, "language")
	}
	if patch.DocumentDate != nil {
		d.DocumentDate = *patch.DocumentDate
		changed = append(changed, "documentDate")
	}
	if patch.ExpirationDate != nil {
		expiration := *patch.ExpirationDate
		d.ExpirationDate = &expiration
		changed = append(changed, "expirationDate")
	}
	if patch.AccessLevel != nil {
		d.AccessLevel = *patch.AccessLevel
		changed = append(changed, "accessLevel")
	}
	if len(changed) == 0 {
		return etmf_errors.Validation("no metadata fields to update")
	}
	d.mutated(ActionMetadataUpdated, actor, now, map[string]interface{}{"fields": changed})
	return nil
}

func (d *Document) AddComment(id, actor, content string, now time.Time) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, etmf_errors.Validation("comment content is required")
	}
	d.Comments = append(d.Comments, Comment{
		ID:        id,
		Content:   content,
		UserID:    actor,
		CreatedAt: now,
		Replies:   []Reply{},
	})
	d.mutated(ActionCommentAdded, actor, now, map[string]interface{}{"commentId": id})
	return &d.Comments[len(d.Comments)-1], nil
}

func (d *Document) AddReply(commentID, id, actor, content string, now time.Time) (*Reply, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, etmf_errors.Validation("reply content is required")
	}
	for i := range d.Comments {
		if d.Comments[i].ID != commentID {
			continue
		}
		d.Comments[i].Replies = append(d.Comments[i].Replies, Reply{
			ID:        id,
			Content:   content,
			UserID:    actor,
			CreatedAt: now,
		})
		d.mutated(ActionReplyAdded, actor, now, map[string]interface{}{"commentId": commentID, "replyId": id})
		replies := d.Comments[i].Replies
		return &replies[len(replies)-1], nil
	}
	return nil, etmf_errors.ErrCommentNotFound
}

// AddTag is idempotent and reports whether the tag was new.
func (d *Document) AddTag(tag, actor string, now time.Time) (bool, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false, etmf_errors.Validation("tag cannot be empty")
	}
	if containsString(d.Tags, tag) {
		return false, nil
	}
	d.Tags = append(d.Tags, tag)
	d.mutated(ActionTagAdded, actor, now, map[string]interface{}{"tag": tag})
	return true, nil
}

func (d *Document) RemoveTag(tag, actor string, now time.Time) bool {
	kept := d.Tags[:0]
	removed := false
	for _, t := range d.Tags {
		if t == tag {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	d.Tags = kept
	if removed {
		d.mutated(ActionTagRemoved, actor, now, map[string]interface{}{"tag": tag})
	}
	return removed
}
