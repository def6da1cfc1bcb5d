// api/controller/template_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
	helper_util "github.com/dev-mohitbeniwal/etmf/api/util/helper"
)

type TemplateController struct {
	templateService service.ITemplateService
}

func NewTemplateController(templateService service.ITemplateService) *TemplateController {
	return &TemplateController{
		templateService: templateService,
	}
}

type renderRequest struct {
	Values map[string]string `json:"values"`
}

// RegisterRoutes registers the API routes for document templates
func (tc *TemplateController) RegisterRoutes(r *gin.RouterGroup) {
	templates := r.Group("/templates")
	{
		templates.GET("", tc.ListTemplates)
		templates.POST("", tc.CreateTemplate)
		templates.GET("/:id", tc.GetTemplate)
		templates.POST("/:id/status", tc.ChangeStatus)
		templates.PUT("/:id/expiry", tc.SetExpiry)
		templates.POST("/:id/reviews", tc.AddReview)
		templates.POST("/:id/render", tc.Render)
	}
}

func (tc *TemplateController) CreateTemplate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var template model.DocumentTemplate
	if !bindJSON(c, &template) {
		return
	}
	created, err := tc.templateService.Create(c, template, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (tc *TemplateController) ListTemplates(c *gin.Context) {
	templates, err := tc.templateService.List(c, model.TemplateFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Status:   model.ControlledStatus(c.Query("status")),
	})
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (tc *TemplateController) GetTemplate(c *gin.Context) {
	template, err := tc.templateService.Get(c, c.Param("id"))
	tc.respond(c, template, err)
}

func (tc *TemplateController) respond(c *gin.Context, template *model.DocumentTemplate, err error) {
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func (tc *TemplateController) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req controlledStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	template, err := tc.templateService.ChangeStatus(c, c.Param("id"), req.Status, actor)
	tc.respond(c, template, err)
}

func (tc *TemplateController) SetExpiry(c *gin.Context) {
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
	template, err := tc.templateService.SetExpiry(c, c.Param("id"), expiry, actor)
	tc.respond(c, template, err)
}

func (tc *TemplateController) AddReview(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var review model.ControlledReview
	if !bindJSON(c, &review) {
		return
	}
	template, err := tc.templateService.AddReview(c, c.Param("id"), review, actor)
	tc.respond(c, template, err)
}

func (tc *TemplateController) Render(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req renderRequest
	if !bindJSON(c, &req) {
		return
	}
	content, err := tc.templateService.Render(c, c.Param("id"), req.Values, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}
