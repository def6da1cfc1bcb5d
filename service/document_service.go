// api/service/document_service.go
package service

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/dao"
	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
	"github.com/dev-mohitbeniwal/etmf/api/metrics"
	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

// FileUpload is the binary part of an upload request.
type FileUpload struct {
	Content  io.Reader
	Size     int64
	Filename string
	MimeType string
}

// IDocumentService defines the interface for document operations
type IDocumentService interface {
	Upload(ctx context.Context, meta model.Document, file FileUpload, actor string) (*model.Document, error)
	Create(ctx context.Context, doc model.Document, actor string) (*model.Document, error)
	Get(ctx context.Context, id string) (*model.Document, error)
	List(ctx context.Context, filter model.DocumentFilter, limit, offset int) ([]*model.Document, int64, error)
	ListExpired(ctx context.Context) ([]*model.Document, error)

	SubmitForReview(ctx context.Context, id, actor string) (*model.Document, error)
	CompleteReview(ctx context.Context, id, actor string) (*model.Document, error)
	PassQC(ctx context.Context, id, actor string) (*model.Document, error)
	Approve(ctx context.Context, id, actor string) (*model.Document, error)
	Reject(ctx context.Context, id, actor, reason string) (*model.Document, error)
	Archive(ctx context.Context, id, actor string) (*model.Document, error)

	AddVersion(ctx context.Context, id string, file FileUpload, changeSummary, actor string) (*model.Document, error)
	AddApprover(ctx context.Context, id, actor, signature, comments string) (*model.Document, error)
	UpdateMetadata(ctx context.Context, id string, patch model.DocumentPatch, actor string) (*model.Document, error)

	AddComment(ctx context.Context, id, actor, content string) (*model.Comment, error)
	AddReply(ctx context.Context, id, commentID, actor, content string) (*model.Reply, error)
	ListComments(ctx context.Context, id string) ([]model.Comment, error)

	AddTag(ctx context.Context, id, tag, actor string) (*model.Document, error)
	RemoveTag(ctx context.Context, id, tag, actor string) (*model.Document, error)
}

// DocumentService handles business logic for document operations
type DocumentService struct {
	base
}

var _ IDocumentService = &DocumentService{}

func NewDocumentService(deps Dependencies) *DocumentService {
	return &DocumentService{base: newBase(deps, "document")}
}

func newDocumentID() string {
	return "DOC-" + strings.ToUpper(uuid.NewString()[:8])
}

// Upload stores the file and then persists the document record. The size check runs before
// anything is uploaded, no record is written when the upload fails, and the file is removed
// again when the record cannot be written.
func (s *DocumentService) Upload(ctx context.Context, meta model.Document, file FileUpload, actor string) (result *model.Document, err error) {
	start := time.Now()
	defer func() {
		err = s.done("upload", start, err, zap.String("fileName", file.Filename), zap.Int64("fileSize", file.Size))
	}()

	if err := model.ValidateFileSize(file.Size); err != nil {
		return nil, err
	}
	if file.Content == nil || strings.TrimSpace(file.Filename) == "" {
		return nil, etmf_errors.ErrFileMissing
	}
	meta.File = model.FileRef{Name: file.Filename, Size: file.Size, MimeType: file.MimeType}
	if err := s.prepare(ctx, &meta); err != nil {
		return nil, err
	}

	url, err := s.BlobStore.Store(ctx, file.Content, file.Size, file.Filename, file.MimeType)
	if err != nil {
		return nil, err
	}
	metrics.UploadedBytes.Observe(float64(file.Size))
	meta.File.URL = url

	doc, err := s.persist(ctx, meta, actor)
	if err != nil {
		s.discardBlob(ctx, url, err)
		return nil, err
	}
	return doc, nil
}

// Create registers a document whose file is already stored.
func (s *DocumentService) Create(ctx context.Context, doc model.Document, actor string) (result *model.Document, err error) {
	start := time.Now()
	defer func() { err = s.done("create", start, err, zap.String("title", doc.Title)) }()

	if strings.TrimSpace(doc.File.URL) == "" {
		return nil, etmf_errors.ErrFileMissing
	}
	if err := s.prepare(ctx, &doc); err != nil {
		return nil, err
	}
	return s.persist(ctx, doc, actor)
}

// prepare validates the metadata and fails early on identifiers that are already taken.
func (s *DocumentService) prepare(ctx context.Context, doc *model.Document) error {
	if err := s.ValidationUtil.ValidateDocument(*doc); err != nil {
		return err
	}
	if err := validatePath(ctx, s.Store, doc.Classification); err != nil {
		return err
	}
	if doc.DocumentID == "" {
		doc.DocumentID = newDocumentID()
		return nil
	}
	taken, err := s.Store.Documents.Count(ctx, bson.M{"documentId": doc.DocumentID})
	if err != nil {
		return err
	}
	if taken > 0 {
		return etmf_errors.ErrDocumentConflict
	}
	return nil
}

func (s *DocumentService) persist(ctx context.Context, doc model.Document, actor string) (*model.Document, error) {
	now := s.now()
	doc.Base = model.Base{}
	doc.Initialize(actor, now)

	if err := s.Store.Documents.Create(ctx, &doc); err != nil {
		return nil, err
	}
	s.saved(ctx, &doc, actor, model.ActionDocumentCreated, now)
	return &doc, nil
}

// saved runs the side effects every successful write shares.
func (s *DocumentService) saved(ctx context.Context, doc *model.Document, actor, action string, now time.Time) {
	doc.Evaluate(now)
	s.CacheService.SetDocument(ctx, doc)
	s.EventBus.Publish(ctx, util.EventDocumentSaved, *doc)
	s.record(ctx, actor, action, doc.ID, map[string]interface{}{
		"documentId": doc.DocumentID,
		"status":     doc.Status,
		"version":    doc.Version,
	})
}

func (s *DocumentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if doc, ok := s.CacheService.GetDocument(ctx, id); ok {
		doc.Evaluate(s.now())
		return doc, nil
	}

	doc, err := s.Store.Documents.Get(ctx, id)
	if err != nil {
		logger.Debug("Document lookup failed", zap.String("documentID", id), zap.Error(err))
		return nil, err
	}
	s.CacheService.SetDocument(ctx, doc)
	doc.Evaluate(s.now())
	return doc, nil
}

func (s *DocumentService) List(ctx context.Context, filter model.DocumentFilter, limit, offset int) ([]*model.Document, int64, error) {
	now := s.now()
	// Status filters match the effective status, so expired documents only list as EXPIRED.
	var query bson.M
	switch filter.Status {
	case model.DocumentStatusExpired:
		filter.Status = ""
		query = dao.DocumentQuery(filter)
		for k, v := range dao.ExpiredDocumentsQuery(now) {
			query[k] = v
		}
	case "", model.DocumentStatusArchived:
		query = dao.DocumentQuery(filter)
	default:
		query = dao.DocumentQuery(filter)
		for k, v := range dao.NotExpiredQuery(now) {
			query[k] = v
		}
	}

	total, err := s.Store.Documents.Count(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	docs, err := s.Store.Documents.List(ctx, query, dao.ListOptions{
		Limit:     limit,
		Offset:    offset,
		SortField: "createdAt",
		SortDesc:  true,
	})
	if err != nil {
		return nil, 0, err
	}
	for _, d := range docs {
		d.Evaluate(now)
	}
	return docs, total, nil
}

// ListExpired returns every document whose effective status is EXPIRED.
func (s *DocumentService) ListExpired(ctx context.Context) ([]*model.Document, error) {
	now := s.now()
	docs, err := s.Store.Documents.List(ctx, dao.ExpiredDocumentsQuery(now), dao.ListOptions{SortField: "expirationDate"})
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		d.Evaluate(now)
	}
	return docs, nil
}

// mutate applies one lifecycle operation under the document's revision guard.
func (s *DocumentService) mutate(ctx context.Context, operation, action, id, actor string, apply func(*model.Document, time.Time) error) (result *model.Document, err error) {
	start := time.Now()
	defer func() {
		err = s.done(operation, start, err, zap.String("documentID", id), zap.String("actor", actor))
	}()

	now := s.now()
	doc, err := s.Store.Documents.Mutate(ctx, id, func(d *model.Document) error {
		return apply(d, now)
	})
	if err != nil {
		return nil, err
	}
	s.saved(ctx, doc, actor, action, now)
	return doc, nil
}

func (s *DocumentService) SubmitForReview(ctx context.Context, id, actor string) (*model.Document, error) {
	return s.mutate(ctx, "submitForReview", model.ActionSubmitForReview, id, actor, func(d *model.Document, now time.Time) error {
		return d.SubmitForReview(actor, now)
	})
}

func (s *DocumentService) CompleteReview(ctx context.Context, id, actor string) (*model.Document, error) {
	return s.mutate(ctx, "completeReview", model.ActionCompleteReview, id, actor, func(d *model.Document, now time.Time) error {
		return d.CompleteReview(actor, now)
	})
}

func (s *DocumentService) PassQC(ctx context.Context, id, actor string) (*model.Document, error) {
	return s.mutate(ctx, "passQC", model.ActionPassQC, id, actor, func(d *model.Document, now time.Time) error {
		return d.PassQC(actor, now)
	})
}

func (s *DocumentService) Approve(ctx context.Context, id, actor string) (*model.Document, error) {
	return s.mutate(ctx, "approve", model.ActionApprove, id, actor, func(d *model.Document, now time.Time) error {
		return d.Approve(actor, now)
	})
}

func (s *DocumentService) Reject(ctx context.Context, id, actor, reason string) (*model.Document, error) {
	return s.mutate(ctx, "reject", model.ActionReject, id, actor, func(d *model.Document, now time.Time) error {
		return d.Reject(actor, reason, now)
	})
}

func (s *DocumentService) Archive(ctx context.Context, id, actor string) (*model.Document, error) {
	return s.mutate(ctx, "archive", model.ActionArchive, id, actor, func(d *model.Document, now time.Time) error {
		return d.Archive(actor, now)
	})
}

// AddVersion uploads the new file and then makes it the current version. Archived documents
// are refused before the upload.
func (s *DocumentService) AddVersion(ctx context.Context, id string, file FileUpload, changeSummary, actor string) (*model.Document, error) {
	if err := model.ValidateFileSize(file.Size); err != nil {
		return nil, err
	}
	if file.Content == nil || strings.TrimSpace(file.Filename) == "" {
		return nil, etmf_errors.ErrFileMissing
	}
	current, err := s.Store.Documents.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == model.DocumentStatusArchived {
		return nil, etmf_errors.ErrDocumentArchived
	}

	url, err := s.BlobStore.Store(ctx, file.Content, file.Size, file.Filename, file.MimeType)
	if err != nil {
		metrics.ObserveOperation(s.entity, "addVersion", err)
		logger.Error("Failed to store new document version", zap.String("documentID", id), zap.Error(err))
		return nil, err
	}
	metrics.UploadedBytes.Observe(float64(file.Size))

	ref := model.FileRef{URL: url, Name: file.Filename, Size: file.Size, MimeType: file.MimeType}
	doc, err := s.mutate(ctx, "addVersion", model.ActionVersionAdded, id, actor, func(d *model.Document, now time.Time) error {
		return d.AddVersion(ref, actor, changeSummary, now)
	})
	if err != nil {
		s.discardBlob(ctx, url, err)
		return nil, err
	}
	return doc, nil
}

// discardBlob removes a file whose document write failed. The caller's deadline may already
// have passed, so removal runs detached from it and is bounded by the blob store.
func (s *DocumentService) discardBlob(ctx context.Context, fileURL string, cause error) {
	if err := s.BlobStore.Remove(context.WithoutCancel(ctx), fileURL); err != nil {
		logger.Error("Failed to remove orphaned file",
			zap.String("fileUrl", fileURL),
			zap.NamedError("cause", cause),
			zap.Error(err))
		return
	}
	logger.Warn("Removed file of unpersisted document", zap.String("fileUrl", fileURL), zap.Error(cause))
}

func (s *DocumentService) AddApprover(ctx context.Context, id, actor, signature, comments string) (*model.Document, error) {
	return s.mutate(ctx, "addApprover", model.ActionApproverAdded, id, actor, func(d *model.Document, now time.Time) error {
		d.AddApprover(actor, signature, comments, now)
		return nil
	})
}

func (s *DocumentService) UpdateMetadata(ctx context.Context, id string, patch model.DocumentPatch, actor string) (*model.Document, error) {
	if err := s.ValidationUtil.ValidateStruct(patch); err != nil {
		return nil, err
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, etmf_errors.Validation("title cannot be blank")
	}
	if patch.Classification != nil {
		if err := validatePath(ctx, s.Store, *patch.Classification); err != nil {
			return nil, err
		}
	}
	return s.mutate(ctx, "updateMetadata", model.ActionMetadataUpdated, id, actor, func(d *model.Document, now time.Time) error {
		return d.UpdateMetadata(patch, actor, now)
	})
}

func (s *DocumentService) AddComment(ctx context.Context, id, actor, content string) (*model.Comment, error) {
	commentID := uuid.NewString()
	var added model.Comment
	_, err := s.mutate(ctx, "addComment", model.ActionCommentAdded, id, actor, func(d *model.Document, now time.Time) error {
		c, err := d.AddComment(commentID, actor, content, now)
		if err != nil {
			return err
		}
		added = *c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *DocumentService) AddReply(ctx context.Context, id, commentID, actor, content string) (*model.Reply, error) {
	replyID := uuid.NewString()
	var added model.Reply
	_, err := s.mutate(ctx, "addReply", model.ActionReplyAdded, id, actor, func(d *model.Document, now time.Time) error {
		r, err := d.AddReply(commentID, replyID, actor, content, now)
		if err != nil {
			return err
		}
		added = *r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (s *DocumentService) ListComments(ctx context.Context, id string) ([]model.Comment, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc.Comments == nil {
		return []model.Comment{}, nil
	}
	return doc.Comments, nil
}

func (s *DocumentService) AddTag(ctx context.Context, id, tag, actor string) (*model.Document, error) {
	return s.mutate(ctx, "addTag", model.ActionTagAdded, id, actor, func(d *model.Document, now time.Time) error {
		added, err := d.AddTag(tag, actor, now)
		if err != nil {
			return err
		}
		if !added {
			return dao.ErrNoChange
		}
		return nil
	})
}

func (s *DocumentService) RemoveTag(ctx context.Context, id, tag, actor string) (*model.Document, error) {
	return s.mutate(ctx, "removeTag", model.ActionTagRemoved, id, actor, func(d *model.Document, now time.Time) error {
		if !d.RemoveTag(tag, actor, now) {
			return dao.ErrNoChange
		}
		return nil
	})
}
