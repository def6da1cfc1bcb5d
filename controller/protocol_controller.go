// api/controller/protocol_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

type ProtocolController struct {
	protocolService service.IProtocolService
}

func NewProtocolController(protocolService service.IProtocolService) *ProtocolController {
	return &ProtocolController{
		protocolService: protocolService,
	}
}

type protocolStatusRequest struct {
	Status model.ProtocolStatus `json:"status"`
}

// RegisterRoutes registers the API routes for trial protocols
func (pc *ProtocolController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/trials/:id/protocols", pc.ListProtocols)
	r.POST("/trials/:id/protocols", pc.CreateProtocol)

	protocols := r.Group("/protocols")
	{
		protocols.GET("/:id", pc.GetProtocol)
		protocols.POST("/:id/status", pc.ChangeStatus)
		protocols.POST("/:id/amendments", pc.Amend)
		protocols.POST("/:id/approvals", pc.RecordApproval)
	}
}

func (pc *ProtocolController) CreateProtocol(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var protocol model.Protocol
	if !bindJSON(c, &protocol) {
		return
	}
	created, err := pc.protocolService.Create(c, c.Param("id"), protocol, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (pc *ProtocolController) ListProtocols(c *gin.Context) {
	protocols, err := pc.protocolService.ListByTrial(c, c.Param("id"), model.ProtocolStatus(c.Query("status")))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, protocols)
}

func (pc *ProtocolController) GetProtocol(c *gin.Context) {
	protocol, err := pc.protocolService.Get(c, c.Param("id"))
	pc.respond(c, protocol, err)
}

func (pc *ProtocolController) respond(c *gin.Context, protocol *model.Protocol, err error) {
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, protocol)
}

func (pc *ProtocolController) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req protocolStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	protocol, err := pc.protocolService.ChangeStatus(c, c.Param("id"), req.Status, actor)
	pc.respond(c, protocol, err)
}

func (pc *ProtocolController) Amend(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var amendment model.Amendment
	if !bindJSON(c, &amendment) {
		return
	}
	protocol, err := pc.protocolService.Amend(c, c.Param("id"), amendment, actor)
	pc.respond(c, protocol, err)
}

func (pc *ProtocolController) RecordApproval(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var approval model.RegulatoryApproval
	if !bindJSON(c, &approval) {
		return
	}
	protocol, err := pc.protocolService.RecordApproval(c, c.Param("id"), approval, actor)
	pc.respond(c, protocol, err)
}
