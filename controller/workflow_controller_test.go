// api/controller/workflow_controller_test.go
package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/etmf/api/controller"
	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/model"
	mock_service "github.com/dev-mohitbeniwal/etmf/api/test/service_mock"
)

func TestWorkflowController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWorkflowService := mock_service.NewMockIWorkflowService(ctrl)
	workflowController := controller.NewWorkflowController(mockWorkflowService)
	router := setupRouter(workflowController, "reviewer")
	anonymous := setupRouter(workflowController, "")

	t.Run("CreateWorkflow_Success", func(t *testing.T) {
		mockWorkflowService.EXPECT().
			Create(gomock.Any(), gomock.Any(), "reviewer").
			Return(&model.Workflow{WorkflowID: "WF-1", Status: model.WorkflowStatusDraft}, nil)

		body := `{"name":"Review","type":"DOCUMENT_REVIEW","documentId":"d1","steps":[{"order":0,"name":"Review","type":"REVIEW","assignees":["reviewer"]}]}`
		w := perform(router, http.MethodPost, "/api/v1/workflows", body)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("CreateWorkflow_DocumentNotFound", func(t *testing.T) {
		mockWorkflowService.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, etmf_errors.ErrDocumentNotFound)

		w := perform(router, http.MethodPost, "/api/v1/workflows", `{"name":"Review","documentId":"missing"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("CompleteStep_Success", func(t *testing.T) {
		mockWorkflowService.EXPECT().
			CompleteStep(gomock.Any(), "wf1", 0, "reviewer", "looks good").
			Return(&model.Workflow{CurrentStep: 1}, nil)

		w := perform(router, http.MethodPost, "/api/v1/workflows/wf1/steps/0/complete", `{"comments":"looks good"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("CompleteStep_OutOfOrder", func(t *testing.T) {
		mockWorkflowService.EXPECT().
			CompleteStep(gomock.Any(), "wf1", 2, "reviewer", "").
			Return(nil, etmf_errors.ErrStepOutOfOrder)

		w := perform(router, http.MethodPost, "/api/v1/workflows/wf1/steps/2/complete", "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "OutOfOrder")
	})

	t.Run("CompleteStep_NotAssignee", func(t *testing.T) {
		mockWorkflowService.EXPECT().
			CompleteStep(gomock.Any(), "wf1", 1, "reviewer", "").
			Return(nil, etmf_errors.ErrActorNotAssignee)

		w := perform(router, http.MethodPost, "/api/v1/workflows/wf1/steps/1/complete", "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "InvalidState")
	})

	t.Run("CompleteStep_BadOrder", func(t *testing.T) {
		w := perform(router, http.MethodPost, "/api/v1/workflows/wf1/steps/first/complete", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CompleteStep_Unauthorized", func(t *testing.T) {
		w := perform(anonymous, http.MethodPost, "/api/v1/workflows/wf1/steps/0/complete", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("SkipStep_PassesReason", func(t *testing.T) {
		mockWorkflowService.EXPECT().
			SkipStep(gomock.Any(), "wf1", 1, "reviewer", "not needed").
			Return(&model.Workflow{}, nil)

		w := perform(router, http.MethodPost, "/api/v1/workflows/wf1/steps/1/skip", `{"comments":"not needed"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("AddStepComment_StepNotFound", func(t *testing.T) {
		mockWorkflowService.EXPECT().
			AddStepComment(gomock.Any(), "wf1", 9, "reviewer", "hello").
			Return(nil, etmf_errors.ErrStepNotFound)

		w := perform(router, http.MethodPost, "/api/v1/workflows/wf1/steps/9/comments", `{"text":"hello"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ListByDocument", func(t *testing.T) {
		mockWorkflowService.EXPECT().
			ListByDocument(gomock.Any(), "d1").
			Return([]*model.Workflow{{WorkflowID: "WF-1"}}, nil)

		w := perform(anonymous, http.MethodGet, "/api/v1/documents/d1/workflows", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Deprecate_AlreadyArchived", func(t *testing.T) {
		mockWorkflowService.EXPECT().
			Deprecate(gomock.Any(), "wf1", "reviewer").
			Return(nil, etmf_errors.New(etmf_errors.ErrInvalidState, "workflow is already ARCHIVED"))

		w := perform(router, http.MethodPost, "/api/v1/workflows/wf1/deprecate", "")
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
