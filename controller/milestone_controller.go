// api/controller/milestone_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

type MilestoneController struct {
	milestoneService service.IMilestoneService
}

func NewMilestoneController(milestoneService service.IMilestoneService) *MilestoneController {
	return &MilestoneController{
		milestoneService: milestoneService,
	}
}

type completeMilestoneRequest struct {
	CompletedDate string `json:"completedDate"`
}

// RegisterRoutes registers the API routes for trial milestones
func (mc *MilestoneController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/trials/:id/milestones", mc.ListMilestones)
	r.POST("/trials/:id/milestones", mc.CreateMilestone)

	milestones := r.Group("/milestones")
	{
		milestones.GET("/:id", mc.GetMilestone)
		milestones.POST("/:id/start", mc.Start)
		milestones.POST("/:id/delay", mc.Delay)
		milestones.POST("/:id/cancel", mc.Cancel)
		milestones.POST("/:id/complete", mc.Complete)
	}
}

func (mc *MilestoneController) CreateMilestone(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var milestone model.Milestone
	if !bindJSON(c, &milestone) {
		return
	}
	created, err := mc.milestoneService.Create(c, c.Param("id"), milestone, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (mc *MilestoneController) ListMilestones(c *gin.Context) {
	milestones, err := mc.milestoneService.ListByTrial(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestones)
}

func (mc *MilestoneController) GetMilestone(c *gin.Context) {
	milestone, err := mc.milestoneService.Get(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestone)
}

func (mc *MilestoneController) move(c *gin.Context, op func(id, actor string) (*model.Milestone, error)) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	milestone, err := op(c.Param("id"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestone)
}

func (mc *MilestoneController) Start(c *gin.Context) {
	mc.move(c, func(id, actor string) (*model.Milestone, error) {
		return mc.milestoneService.Start(c, id, actor)
	})
}

func (mc *MilestoneController) Delay(c *gin.Context) {
	mc.move(c, func(id, actor string) (*model.Milestone, error) {
		return mc.milestoneService.Delay(c, id, actor)
	})
}

func (mc *MilestoneController) Cancel(c *gin.Context) {
	mc.move(c, func(id, actor string) (*model.Milestone, error) {
		return mc.milestoneService.Cancel(c, id, actor)
	})
}

func (mc *MilestoneController) Complete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req completeMilestoneRequest
	if !bindJSON(c, &req) {
		return
	}
	completed, ok := parseDate(c, "completedDate", req.CompletedDate)
	if !ok {
		return
	}
	milestone, err := mc.milestoneService.Complete(c, c.Param("id"), completed, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, milestone)
}
