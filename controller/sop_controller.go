// api/controller/sop_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
	helper_util "github.com/dev-mohitbeniwal/etmf/api/util/helper"
)

type SOPController struct {
	sopService service.ISOPService
}

func NewSOPController(sopService service.ISOPService) *SOPController {
	return &SOPController{
		sopService: sopService,
	}
}

type controlledStatusRequest struct {
	Status model.ControlledStatus `json:"status"`
}

// controlledExpiryRequest clears the expiry date when ExpiryDate is empty.
type controlledExpiryRequest struct {
	ExpiryDate string `json:"expiryDate"`
}

type relatedSOPRequest struct {
	SOPID string `json:"sopId"`
}

// RegisterRoutes registers the API routes for SOPs
func (sc *SOPController) RegisterRoutes(r *gin.RouterGroup) {
	sops := r.Group("/sops")
	{
		sops.GET("", sc.ListSOPs)
		sops.POST("", sc.CreateSOP)
		sops.GET("/:id", sc.GetSOP)
		sops.POST("/:id/status", sc.ChangeStatus)
		sops.PUT("/:id/expiry", sc.SetExpiry)
		sops.POST("/:id/reviews", sc.AddReview)
		sops.POST("/:id/related", sc.LinkSOP)
	}
}

func (sc *SOPController) CreateSOP(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var sop model.SOP
	if !bindJSON(c, &sop) {
		return
	}
	created, err := sc.sopService.Create(c, sop, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (sc *SOPController) ListSOPs(c *gin.Context) {
	sops, err := sc.sopService.List(c, model.SOPFilter{
		Department: c.Query("department"),
		Category:   c.Query("category"),
		Status:     model.ControlledStatus(c.Query("status")),
		Keyword:    c.Query("keyword"),
	})
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sops)
}

func (sc *SOPController) GetSOP(c *gin.Context) {
	sop, err := sc.sopService.Get(c, c.Param("id"))
	sc.respond(c, sop, err)
}

func (sc *SOPController) respond(c *gin.Context, sop *model.SOP, err error) {
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sop)
}

func (sc *SOPController) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req controlledStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	sop, err := sc.sopService.ChangeStatus(c, c.Param("id"), req.Status, actor)
	sc.respond(c, sop, err)
}

func (sc *SOPController) SetExpiry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req controlledExpiryRequest
	if !bindJSON(c, &req) {
		return
	}
	expiry, err := helper_util.ParseNullableTime(req.ExpiryDate)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	sop, err := sc.sopService.SetExpiry(c, c.Param("id"), expiry, actor)
	sc.respond(c, sop, err)
}

func (sc *SOPController) AddReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var review model.ControlledReview
	if !bindJSON(c, &review) {
		return
	}
	sop, err := sc.sopService.AddReview(c, c.Param("id"), review, actor)
	sc.respond(c, sop, err)
}

func (sc *SOPController) LinkSOP(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req relatedSOPRequest
	if !bindJSON(c, &req) {
		return
	}
	sop, err := sc.sopService.LinkSOP(c, c.Param("id"), req.SOPID, actor)
	sc.respond(c, sop, err)
}
