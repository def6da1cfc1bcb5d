// api/controller/classification_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

type ClassificationController struct {
	classificationService service.IClassificationService
}

func NewClassificationController(classificationService service.IClassificationService) *ClassificationController {
	return &ClassificationController{
		classificationService: classificationService,
	}
}

// RegisterRoutes registers the API routes for the TMF classification hierarchy
func (cc *ClassificationController) RegisterRoutes(r *gin.RouterGroup) {
	tmf := r.Group("/tmf")
	{
		tmf.GET("/tree", cc.Tree)
		tmf.POST("/paths/validate", cc.ValidatePath)

		tmf.GET("/zones", cc.ListZones)
		tmf.POST("/zones", cc.CreateZone)
		tmf.GET("/zones/:id", cc.GetZone)
		tmf.PATCH("/zones/:id/deactivate", cc.DeactivateZone)

		tmf.GET("/zones/:id/sections", cc.ListSections)
		tmf.POST("/zones/:id/sections", cc.CreateSection)
		tmf.GET("/sections/:id", cc.GetSection)
		tmf.PATCH("/sections/:id/deactivate", cc.DeactivateSection)

		tmf.GET("/sections/:id/artifacts", cc.ListArtifacts)
		tmf.POST("/sections/:id/artifacts", cc.CreateArtifact)
		tmf.GET("/artifacts/:id", cc.GetArtifact)
		tmf.PATCH("/artifacts/:id/deactivate", cc.DeactivateArtifact)

		tmf.GET("/artifacts/:id/subartifacts", cc.ListSubArtifacts)
		tmf.POST("/artifacts/:id/subartifacts", cc.CreateSubArtifact)
		tmf.GET("/subartifacts/:id", cc.GetSubArtifact)
		tmf.PATCH("/subartifacts/:id/deactivate", cc.DeactivateSubArtifact)
	}
}

func (cc *ClassificationController) Tree(c *gin.Context) {
	tree, err := cc.classificationService.Tree(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

func (cc *ClassificationController) ValidatePath(c *gin.Context) {
	var path model.ClassificationPath
	if !bindJSON(c, &path) {
		return
	}
	if err := cc.classificationService.ValidatePath(c, path); err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// Zones

func (cc *ClassificationController) CreateZone(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var zone model.Zone
	if !bindJSON(c, &zone) {
		return
	}
	created, err := cc.classificationService.CreateZone(c, zone, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *ClassificationController) ListZones(c *gin.Context) {
	zones, err := cc.classificationService.ListZones(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, zones)
}

func (cc *ClassificationController) GetZone(c *gin.Context) {
	zone, err := cc.classificationService.GetZone(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, zone)
}

func (cc *ClassificationController) DeactivateZone(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	zone, err := cc.classificationService.DeactivateZone(c, c.Param("id"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, zone)
}

// Sections

func (cc *ClassificationController) CreateSection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var section model.Section
	if !bindJSON(c, &section) {
		return
	}
	created, err := cc.classificationService.CreateSection(c, c.Param("id"), section, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *ClassificationController) ListSections(c *gin.Context) {
	sections, err := cc.classificationService.ListSections(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}

func (cc *ClassificationController) GetSection(c *gin.Context) {
	section, err := cc.classificationService.GetSection(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (cc *ClassificationController) DeactivateSection(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	section, err := cc.classificationService.DeactivateSection(c, c.Param("id"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, section)
}

// Artifacts

func (cc *ClassificationController) CreateArtifact(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var artifact model.Artifact
	if !bindJSON(c, &artifact) {
		return
	}
	created, err := cc.classificationService.CreateArtifact(c, c.Param("id"), artifact, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *ClassificationController) ListArtifacts(c *gin.Context) {
	artifacts, err := cc.classificationService.ListArtifacts(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifacts)
}

func (cc *ClassificationController) GetArtifact(c *gin.Context) {
	artifact, err := cc.classificationService.GetArtifact(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

func (cc *ClassificationController) DeactivateArtifact(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	artifact, err := cc.classificationService.DeactivateArtifact(c, c.Param("id"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, artifact)
}

// SubArtifacts

func (cc *ClassificationController) CreateSubArtifact(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var sub model.SubArtifact
	if !bindJSON(c, &sub) {
		return
	}
	created, err := cc.classificationService.CreateSubArtifact(c, c.Param("id"), sub, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (cc *ClassificationController) ListSubArtifacts(c *gin.Context) {
	subs, err := cc.classificationService.ListSubArtifacts(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (cc *ClassificationController) GetSubArtifact(c *gin.Context) {
	sub, err := cc.classificationService.GetSubArtifact(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (cc *ClassificationController) DeactivateSubArtifact(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	sub, err := cc.classificationService.DeactivateSubArtifact(c, c.Param("id"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}
