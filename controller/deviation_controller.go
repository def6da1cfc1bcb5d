// api/controller/deviation_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

type DeviationController struct {
	deviationService service.IDeviationService
}

func NewDeviationController(deviationService service.IDeviationService) *DeviationController {
	return &DeviationController{
		deviationService: deviationService,
	}
}

type decisionRequest struct {
	Role     string `json:"role"`
	Comments string `json:"comments"`
}

type resolveRequest struct {
	ResolvedDate string `json:"resolvedDate"`
}

// RegisterRoutes registers the API routes for protocol deviations
func (dc *DeviationController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/trials/:id/deviations", dc.ListDeviations)
	r.POST("/trials/:id/deviations", dc.CreateDeviation)

	deviations := r.Group("/deviations")
	{
		deviations.GET("/:id", dc.GetDeviation)
		deviations.POST("/:id/submit", dc.Submit)
		deviations.POST("/:id/review", dc.StartReview)
		deviations.POST("/:id/reviews", dc.AddReview)
		deviations.POST("/:id/approve", dc.Approve)
		deviations.POST("/:id/reject", dc.Reject)
		deviations.POST("/:id/close", dc.Close)
		deviations.POST("/:id/resolve", dc.Resolve)
	}
}

func (dc *DeviationController) CreateDeviation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var deviation model.Deviation
	if !bindJSON(c, &deviation) {
		return
	}
	created, err := dc.deviationService.Create(c, c.Param("id"), deviation, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (dc *DeviationController) ListDeviations(c *gin.Context) {
	deviations, err := dc.deviationService.ListByTrial(c, c.Param("id"), model.DeviationStatus(c.Query("status")))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deviations)
}

func (dc *DeviationController) GetDeviation(c *gin.Context) {
	deviation, err := dc.deviationService.Get(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deviation)
}

func (dc *DeviationController) respond(c *gin.Context, deviation *model.Deviation, err error) {
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, deviation)
}

func (dc *DeviationController) Submit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	deviation, err := dc.deviationService.Submit(c, c.Param("id"), actor)
	dc.respond(c, deviation, err)
}

func (dc *DeviationController) StartReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	deviation, err := dc.deviationService.StartReview(c, c.Param("id"), actor)
	dc.respond(c, deviation, err)
}

func (dc *DeviationController) AddReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var review model.DeviationReview
	if !bindJSON(c, &review) {
		return
	}
	deviation, err := dc.deviationService.AddReview(c, c.Param("id"), review, actor)
	dc.respond(c, deviation, err)
}

func (dc *DeviationController) Approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req decisionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	deviation, err := dc.deviationService.Approve(c, c.Param("id"), actor, req.Role, req.Comments)
	dc.respond(c, deviation, err)
}

func (dc *DeviationController) Reject(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req decisionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	deviation, err := dc.deviationService.Reject(c, c.Param("id"), actor, req.Role, req.Comments)
	dc.respond(c, deviation, err)
}

func (dc *DeviationController) Close(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	deviation, err := dc.deviationService.Close(c, c.Param("id"), actor)
	dc.respond(c, deviation, err)
}

func (dc *DeviationController) Resolve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req resolveRequest
	if !bindJSON(c, &req) {
		return
	}
	resolved, ok := parseDate(c, "resolvedDate", req.ResolvedDate)
	if !ok {
		return
	}
	deviation, err := dc.deviationService.Resolve(c, c.Param("id"), resolved, actor)
	dc.respond(c, deviation, err)
}
