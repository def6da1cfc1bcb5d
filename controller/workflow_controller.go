// api/controller/workflow_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

type WorkflowController struct {
	workflowService service.IWorkflowService
}

func NewWorkflowController(workflowService service.IWorkflowService) *WorkflowController {
	return &WorkflowController{
		workflowService: workflowService,
	}
}

type stepActionRequest struct {
	Comments string `json:"comments"`
}

type stepCommentRequest struct {
	Text string `json:"text"`
}

// RegisterRoutes registers the API routes for workflows
func (wc *WorkflowController) RegisterRoutes(r *gin.RouterGroup) {
	workflows := r.Group("/workflows")
	{
		workflows.POST("", wc.CreateWorkflow)
		workflows.GET("/:id", wc.GetWorkflow)
		workflows.POST("/:id/steps/:order/start", wc.StartStep)
		workflows.POST("/:id/steps/:order/complete", wc.CompleteStep)
		workflows.POST("/:id/steps/:order/reject", wc.RejectStep)
		workflows.POST("/:id/steps/:order/skip", wc.SkipStep)
		workflows.POST("/:id/steps/:order/comments", wc.AddStepComment)
		workflows.POST("/:id/archive", wc.Archive)
		workflows.POST("/:id/deprecate", wc.Deprecate)
	}
	r.GET("/documents/:id/workflows", wc.ListByDocument)
}

func (wc *WorkflowController) CreateWorkflow(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var wf model.Workflow
	if !bindJSON(c, &wf) {
		return
	}
	created, err := wc.workflowService.Create(c, wf, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (wc *WorkflowController) GetWorkflow(c *gin.Context) {
	wf, err := wc.workflowService.Get(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, wf)
}

func (wc *WorkflowController) ListByDocument(c *gin.Context) {
	workflows, err := wc.workflowService.ListByDocument(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, workflows)
}

// stepAction parses the step order and optional comments shared by the step endpoints.
func (wc *WorkflowController) stepAction(c *gin.Context, op func(id string, order int, actor, comments string) (*model.Workflow, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	order, ok := pathInt(c, "order")
	if !ok {
		return
	}
	var req stepActionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	wf, err := op(c.Param("id"), order, actor, req.Comments)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, wf)
}

func (wc *WorkflowController) StartStep(c *gin.Context) {
	wc.stepAction(c, func(id string, order int, actor, _ string) (*model.Workflow, error) {
		return wc.workflowService.StartStep(c, id, order, actor)
	})
}

func (wc *WorkflowController) CompleteStep(c *gin.Context) {
	wc.stepAction(c, func(id string, order int, actor, comments string) (*model.Workflow, error) {
		return wc.workflowService.CompleteStep(c, id, order, actor, comments)
	})
}

func (wc *WorkflowController) RejectStep(c *gin.Context) {
	wc.stepAction(c, func(id string, order int, actor, comments string) (*model.Workflow, error) {
		return wc.workflowService.RejectStep(c, id, order, actor, comments)
	})
}

func (wc *WorkflowController) SkipStep(c *gin.Context) {
	wc.stepAction(c, func(id string, order int, actor, comments string) (*model.Workflow, error) {
		return wc.workflowService.SkipStep(c, id, order, actor, comments)
	})
}

func (wc *WorkflowController) AddStepComment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	order, ok := pathInt(c, "order")
	if !ok {
		return
	}
	var req stepCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	wf, err := wc.workflowService.AddStepComment(c, c.Param("id"), order, actor, req.Text)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, wf)
}

func (wc *WorkflowController) Archive(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	wf, err := wc.workflowService.Archive(c, c.Param("id"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, wf)
}

func (wc *WorkflowController) Deprecate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	wf, err := wc.workflowService.Deprecate(c, c.Param("id"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, wf)
}
