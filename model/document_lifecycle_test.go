// api/model/document_lifecycle_test.go
package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
)

func newDocument() *model.Document {
	doc := &model.Document{
		Title: "Clinical Study Protocol",
		File:  model.FileRef{URL: "http://blob/v1.pdf", Name: "v1.pdf", Size: 1024, MimeType: "application/pdf"},
	}
	doc.Initialize("uploader", now)
	return doc
}

func TestDocumentInitialize(t *testing.T) {
	doc := newDocument()

	assert.Equal(t, 1, doc.Version)
	assert.Equal(t, model.DocumentStatusDraft, doc.Status)
	assert.Equal(t, "uploader", doc.UploadedBy)
	assert.Equal(t, "uploader", doc.Author)
	assert.Equal(t, "en", doc.Language)
	assert.Equal(t, model.AccessLevelRestricted, doc.AccessLevel)
	require.Len(t, doc.AuditTrail, 1)
	assert.Equal(t, model.ActionDocumentCreated, doc.AuditTrail[0].Action)
}

func TestDocumentHappyPath(t *testing.T) {
	doc := newDocument()

	require.NoError(t, doc.SubmitForReview("u1", now))
	require.NoError(t, doc.CompleteReview("u2", now))
	require.NoError(t, doc.PassQC("u3", now))
	require.NoError(t, doc.Approve("u4", now))

	assert.Equal(t, model.DocumentStatusApproved, doc.Status)
	require.NotNil(t, doc.ApprovalDate)
	assert.Len(t, doc.AuditTrail, 5)
	last := doc.AuditTrail[len(doc.AuditTrail)-1]
	assert.Equal(t, model.ActionApprove, last.Action)
	assert.Equal(t, "PENDING_APPROVAL", last.Details["from"])
	assert.Equal(t, "APPROVED", last.Details["to"])
}

func TestDocumentInvalidTransitions(t *testing.T) {
	doc := newDocument()

	err := doc.Approve("u", now)
	assert.True(t, errors.Is(err, etmf_errors.ErrInvalidState))
	assert.Equal(t, model.DocumentStatusDraft, doc.Status)
	assert.Len(t, doc.AuditTrail, 1)

	require.NoError(t, doc.Reject("u", "wrong template", now))
	assert.Equal(t, "wrong template", doc.AuditTrail[len(doc.AuditTrail)-1].Details["reason"])
	require.NoError(t, doc.SubmitForReview("u", now))

	require.NoError(t, doc.Archive("u", now))
	assert.True(t, errors.Is(doc.Archive("u", now), etmf_errors.ErrInvalidState))
	assert.True(t, errors.Is(doc.SubmitForReview("u", now), etmf_errors.ErrInvalidState))
}

func TestDocumentExpiry(t *testing.T) {
	doc := newDocument()
	past := now.Add(-time.Hour)
	doc.ExpirationDate = &past

	doc.Evaluate(now)
	assert.Equal(t, model.DocumentStatusExpired, doc.EffectiveStatus)
	assert.Equal(t, model.DocumentStatusDraft, doc.Status)

	err := doc.SubmitForReview("u", now)
	assert.True(t, errors.Is(err, etmf_errors.ErrInvalidState))

	require.NoError(t, doc.Archive("u", now))
	assert.Equal(t, model.DocumentStatusArchived, doc.EffectiveStatusAt(now))
}

func TestDocumentAddVersion(t *testing.T) {
	doc := newDocument()

	next := model.FileRef{URL: "http://blob/v2.pdf", Name: "v2.pdf", Size: 2048}
	require.NoError(t, doc.AddVersion(next, "editor", "fixed typos", now.Add(time.Minute)))

	assert.Equal(t, 2, doc.Version)
	assert.Equal(t, next, doc.File)
	require.Len(t, doc.PreviousVersions, 1)
	assert.Equal(t, 1, doc.PreviousVersions[0].Version)
	assert.Equal(t, "v1.pdf", doc.PreviousVersions[0].File.Name)
	assert.Equal(t, "uploader", doc.PreviousVersions[0].UploadedBy)

	err := doc.AddVersion(model.FileRef{Size: model.MaxFileSize + 1}, "editor", "", now)
	assert.True(t, errors.Is(err, etmf_errors.ErrFileTooLarge))
	assert.Equal(t, 2, doc.Version)

	require.NoError(t, doc.Archive("u", now))
	err = doc.AddVersion(next, "editor", "", now)
	assert.True(t, errors.Is(err, etmf_errors.ErrDocumentArchived))
}

func TestDocumentCommentsAndTags(t *testing.T) {
	doc := newDocument()

	c, err := doc.AddComment("c1", "alice", "  please check page 3 ", now)
	require.NoError(t, err)
	assert.Equal(t, "please check page 3", c.Content)

	_, err = doc.AddComment("c2", "alice", "   ", now)
	assert.True(t, errors.Is(err, etmf_errors.ErrValidation))

	r, err := doc.AddReply("c1", "r1", "bob", "done", now)
	require.NoError(t, err)
	assert.Equal(t, "r1", r.ID)
	assert.Len(t, doc.Comments[0].Replies, 1)

	_, err = doc.AddReply("missing", "r2", "bob", "done", now)
	assert.True(t, errors.Is(err, etmf_errors.ErrCommentNotFound))

	added, err := doc.AddTag("gcp", "alice", now)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = doc.AddTag("gcp", "alice", now)
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"gcp"}, doc.Tags)

	assert.True(t, doc.RemoveTag("gcp", "alice", now))
	assert.False(t, doc.RemoveTag("gcp", "alice", now))
	assert.Empty(t, doc.Tags)
}

func TestDocumentUpdateMetadata(t *testing.T) {
	doc := newDocument()

	title := "Amended Protocol"
	require.NoError(t, doc.UpdateMetadata(model.DocumentPatch{Title: &title}, "editor", now))
	assert.Equal(t, title, doc.Title)

	err := doc.UpdateMetadata(model.DocumentPatch{}, "editor", now)
	assert.True(t, errors.Is(err, etmf_errors.ErrValidation))
}

func TestValidateFileSize(t *testing.T) {
	assert.NoError(t, model.ValidateFileSize(model.MaxFileSize))
	assert.True(t, errors.Is(model.ValidateFileSize(model.MaxFileSize+1), etmf_errors.ErrFileTooLarge))
	assert.True(t, errors.Is(model.ValidateFileSize(-1), etmf_errors.ErrValidation))
}
