// api/controller/document_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/etmf/api/controller"
	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	mock_service "github.com/dev-mohitbeniwal/etmf/api/test/service_mock"
)

func multipartUpload(t *testing.T, path, metadata string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if metadata != "" {
		require.NoError(t, w.WriteField("metadata", metadata))
	}
	if content != nil {
		part, err := w.CreateFormFile("file", "protocol.pdf")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestDocumentController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDocumentService := mock_service.NewMockIDocumentService(ctrl)
	documentController := controller.NewDocumentController(mockDocumentService)
	router := setupRouter(documentController, "user-1")
	anonymous := setupRouter(documentController, "")

	t.Run("UploadDocument_Success", func(t *testing.T) {
		mockDocumentService.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), "user-1").
			DoAndReturn(func(_ interface{}, meta model.Document, file service.FileUpload, _ string) (*model.Document, error) {
				assert.Equal(t, "Protocol v1", meta.Title)
				assert.Equal(t, "protocol.pdf", file.Filename)
				assert.Equal(t, int64(8), file.Size)
				return &model.Document{Base: model.Base{ID: "d1"}, Title: meta.Title, Status: model.DocumentStatusDraft}, nil
			})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartUpload(t, "/api/v1/documents/upload", `{"title":"Protocol v1"}`, []byte("%PDF-1.7")))

		assert.Equal(t, http.StatusCreated, w.Code)
		var got model.Document
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "d1", got.ID)
	})

	t.Run("UploadDocument_MissingFile", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartUpload(t, "/api/v1/documents/upload", `{"title":"No file"}`, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UploadDocument_TooLarge", func(t *testing.T) {
		mockDocumentService.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, etmf_errors.ErrFileTooLarge)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, multipartUpload(t, "/api/v1/documents/upload", "", []byte("big")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ValidationError")
	})

	t.Run("UploadDocument_Unauthorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		anonymous.ServeHTTP(w, multipartUpload(t, "/api/v1/documents/upload", "", []byte("x")))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GetDocument_Success", func(t *testing.T) {
		mockDocumentService.EXPECT().
			Get(gomock.Any(), "d1").
			Return(&model.Document{Base: model.Base{ID: "d1"}, Title: "Protocol"}, nil)

		w := perform(anonymous, http.MethodGet, "/api/v1/documents/d1", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GetDocument_NotFound", func(t *testing.T) {
		mockDocumentService.EXPECT().
			Get(gomock.Any(), "missing").
			Return(nil, etmf_errors.ErrDocumentNotFound)

		w := perform(router, http.MethodGet, "/api/v1/documents/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NotFound")
	})

	t.Run("ListDocuments_Filters", func(t *testing.T) {
		mockDocumentService.EXPECT().
			List(gomock.Any(), model.DocumentFilter{Status: model.DocumentStatusExpired, Study: "ST-1"}, 10, 20).
			Return([]*model.Document{{Title: "Old CV"}}, int64(21), nil)

		w := perform(router, http.MethodGet, "/api/v1/documents?status=EXPIRED&study=ST-1&limit=10&offset=20", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var page struct {
			Items []model.Document `json:"items"`
			Total int64            `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, int64(21), page.Total)
		assert.Len(t, page.Items, 1)
	})

	t.Run("ListDocuments_InvalidPagination", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/api/v1/documents?limit=0", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("SubmitForReview_InvalidTransition", func(t *testing.T) {
		mockDocumentService.EXPECT().
			SubmitForReview(gomock.Any(), "d1", "user-1").
			Return(nil, etmf_errors.Wrap(etmf_errors.ErrInvalidState, etmf_errors.ErrInvalidTransition, "cannot submit"))

		w := perform(router, http.MethodPost, "/api/v1/documents/d1/submit", "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "InvalidState")
	})

	t.Run("Approve_Unauthorized", func(t *testing.T) {
		w := perform(anonymous, http.MethodPost, "/api/v1/documents/d1/approve", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Reject_WithReason", func(t *testing.T) {
		mockDocumentService.EXPECT().
			Reject(gomock.Any(), "d1", "user-1", "wrong template").
			Return(&model.Document{Status: model.DocumentStatusRejected}, nil)

		w := perform(router, http.MethodPost, "/api/v1/documents/d1/reject", `{"reason":"wrong template"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Reject_EmptyBody", func(t *testing.T) {
		mockDocumentService.EXPECT().
			Reject(gomock.Any(), "d1", "user-1", "").
			Return(&model.Document{Status: model.DocumentStatusRejected}, nil)

		w := perform(router, http.MethodPost, "/api/v1/documents/d1/reject", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Archive_ViaDelete", func(t *testing.T) {
		mockDocumentService.EXPECT().
			Archive(gomock.Any(), "d1", "user-1").
			Return(&model.Document{Status: model.DocumentStatusArchived}, nil)

		w := perform(router, http.MethodDelete, "/api/v1/documents/d1", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UpdateMetadata_BadJSON", func(t *testing.T) {
		w := perform(router, http.MethodPatch, "/api/v1/documents/d1", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("AddComment_Created", func(t *testing.T) {
		mockDocumentService.EXPECT().
			AddComment(gomock.Any(), "d1", "user-1", "Missing page 3").
			Return(&model.Comment{ID: "c1", Content: "Missing page 3"}, nil)

		w := perform(router, http.MethodPost, "/api/v1/documents/d1/comments", `{"content":"Missing page 3"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("AddReply_CommentNotFound", func(t *testing.T) {
		mockDocumentService.EXPECT().
			AddReply(gomock.Any(), "d1", "c9", "user-1", "Added").
			Return(nil, etmf_errors.ErrCommentNotFound)

		w := perform(router, http.MethodPost, "/api/v1/documents/d1/comments/c9/replies", `{"content":"Added"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("RemoveTag", func(t *testing.T) {
		mockDocumentService.EXPECT().
			RemoveTag(gomock.Any(), "d1", "site-101", "user-1").
			Return(&model.Document{Tags: []string{}}, nil)

		w := perform(router, http.MethodDelete, "/api/v1/documents/d1/tags/site-101", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("StorageUnavailable", func(t *testing.T) {
		mockDocumentService.EXPECT().
			ListExpired(gomock.Any()).
			Return(nil, etmf_errors.ErrDatabaseOperation)

		w := perform(router, http.MethodGet, "/api/v1/documents/expired", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
