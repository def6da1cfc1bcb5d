// api/controller/document_controller.go
package controller

import (
	"encoding/json"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
	helper_util "github.com/dev-mohitbeniwal/etmf/api/util/helper"
)

type DocumentController struct {
	documentService service.IDocumentService
}

func NewDocumentController(documentService service.IDocumentService) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

type rejectDocumentRequest struct {
	Reason string `json:"reason"`
}

type approverRequest struct {
	Signature string `json:"signature"`
	Comments  string `json:"comments"`
}

type contentRequest struct {
	Content string `json:"content"`
}

type tagRequest struct {
	Tag string `json:"tag"`
}

// RegisterRoutes registers the API routes for documents
func (dc *DocumentController) RegisterRoutes(r *gin.RouterGroup) {
	documents := r.Group("/documents")
	{
		documents.GET("", dc.ListDocuments)
		documents.POST("", dc.CreateDocument)
		documents.POST("/upload", dc.UploadDocument)
		documents.GET("/expired", dc.ListExpiredDocuments)
		documents.GET("/:id", dc.GetDocument)
		documents.PATCH("/:id", dc.UpdateMetadata)
		documents.DELETE("/:id", dc.Archive)

		documents.POST("/:id/submit", dc.SubmitForReview)
		documents.POST("/:id/complete-review", dc.CompleteReview)
		documents.POST("/:id/pass-qc", dc.PassQC)
		documents.POST("/:id/approve", dc.Approve)
		documents.POST("/:id/reject", dc.Reject)
		documents.POST("/:id/archive", dc.Archive)

		documents.POST("/:id/versions", dc.AddVersion)
		documents.POST("/:id/approvers", dc.AddApprover)
		documents.POST("/:id/tags", dc.AddTag)
		documents.DELETE("/:id/tags/:tag", dc.RemoveTag)

		documents.GET("/:id/comments", dc.ListComments)
		documents.POST("/:id/comments", dc.AddComment)
		documents.POST("/:id/comments/:commentId/replies", dc.AddReply)
	}
}

// fileFromForm opens the "file" part of a multipart request.
func fileFromForm(c *gin.Context) (service.FileUpload, multipart.File, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		util.RespondWithServiceError(c, etmf_errors.ErrFileMissing)
		return service.FileUpload{}, nil, false
	}
	f, err := header.Open()
	if err != nil {
		util.RespondWithServiceError(c, etmf_errors.Wrap(etmf_errors.ErrValidation, err, "unreadable file"))
		return service.FileUpload{}, nil, false
	}
	return service.FileUpload{
		Content:  f,
		Size:     header.Size,
		Filename: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
	}, f, true
}

// UploadDocument accepts a multipart request with a "file" part and a "metadata" JSON field.
func (dc *DocumentController) UploadDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var meta model.Document
	if raw := c.PostForm("metadata"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &meta); err != nil {
			util.RespondWithServiceError(c, etmf_errors.Wrap(etmf_errors.ErrValidation, err, "invalid metadata"))
			return
		}
	}
	file, f, ok := fileFromForm(c)
	if !ok {
		return
	}
	defer f.Close()

	doc, err := dc.documentService.Upload(c, meta, file, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (dc *DocumentController) CreateDocument(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var doc model.Document
	if !bindJSON(c, &doc) {
		return
	}
	created, err := dc.documentService.Create(c, doc, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (dc *DocumentController) GetDocument(c *gin.Context) {
	doc, err := dc.documentService.Get(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (dc *DocumentController) ListDocuments(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	filter := model.DocumentFilter{
		ZoneID:        c.Query("zoneId"),
		SectionID:     c.Query("sectionId"),
		ArtifactID:    c.Query("artifactId"),
		SubArtifactID: c.Query("subArtifactId"),
		Status:        model.DocumentStatus(c.Query("status")),
		Study:         c.Query("study"),
		Site:          c.Query("site"),
		DocumentType:  model.DocumentType(c.Query("documentType")),
		Tag:           c.Query("tag"),
	}
	docs, total, err := dc.documentService.List(c, filter, limit, offset)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	respondPage(c, docs, total, limit, offset)
}

func (dc *DocumentController) ListExpiredDocuments(c *gin.Context) {
	docs, err := dc.documentService.ListExpired(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (dc *DocumentController) UpdateMetadata(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var patch model.DocumentPatch
	if !bindJSON(c, &patch) {
		return
	}
	doc, err := dc.documentService.UpdateMetadata(c, c.Param("id"), patch, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// transition runs one of the body-less lifecycle operations.
func (dc *DocumentController) transition(c *gin.Context, op func(c *gin.Context, id, actor string) (*model.Document, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	doc, err := op(c, c.Param("id"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (dc *DocumentController) SubmitForReview(c *gin.Context) {
	dc.transition(c, func(c *gin.Context, id, actor string) (*model.Document, error) {
		return dc.documentService.SubmitForReview(c, id, actor)
	})
}

func (dc *DocumentController) CompleteReview(c *gin.Context) {
	dc.transition(c, func(c *gin.Context, id, actor string) (*model.Document, error) {
		return dc.documentService.CompleteReview(c, id, actor)
	})
}

func (dc *DocumentController) PassQC(c *gin.Context) {
	dc.transition(c, func(c *gin.Context, id, actor string) (*model.Document, error) {
		return dc.documentService.PassQC(c, id, actor)
	})
}

func (dc *DocumentController) Approve(c *gin.Context) {
	dc.transition(c, func(c *gin.Context, id, actor string) (*model.Document, error) {
		return dc.documentService.Approve(c, id, actor)
	})
}

func (dc *DocumentController) Archive(c *gin.Context) {
	dc.transition(c, func(c *gin.Context, id, actor string) (*model.Document, error) {
		return dc.documentService.Archive(c, id, actor)
	})
}

func (dc *DocumentController) Reject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req rejectDocumentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	doc, err := dc.documentService.Reject(c, c.Param("id"), actor, req.Reason)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// AddVersion accepts a multipart request with a "file" part and an optional "changeSummary" field.
func (dc *DocumentController) AddVersion(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	file, f, ok := fileFromForm(c)
	if !ok {
		return
	}
	defer f.Close()

	doc, err := dc.documentService.AddVersion(c, c.Param("id"), file, c.PostForm("changeSummary"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (dc *DocumentController) AddApprover(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req approverRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	doc, err := dc.documentService.AddApprover(c, c.Param("id"), actor, req.Signature, req.Comments)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (dc *DocumentController) AddTag(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req tagRequest
	if !bindJSON(c, &req) {
		return
	}
	doc, err := dc.documentService.AddTag(c, c.Param("id"), req.Tag, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (dc *DocumentController) RemoveTag(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	doc, err := dc.documentService.RemoveTag(c, c.Param("id"), c.Param("tag"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (dc *DocumentController) ListComments(c *gin.Context) {
	comments, err := dc.documentService.ListComments(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (dc *DocumentController) AddComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req contentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := dc.documentService.AddComment(c, c.Param("id"), actor, req.Content)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (dc *DocumentController) AddReply(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req contentRequest
	if !bindJSON(c, &req) {
		return
	}
	reply, err := dc.documentService.AddReply(c, c.Param("id"), c.Param("commentId"), actor, req.Content)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}
