// api/controller/site_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

type SiteController struct {
	siteService service.ISiteService
}

func NewSiteController(siteService service.ISiteService) *SiteController {
	return &SiteController{
		siteService: siteService,
	}
}

type siteStatusRequest struct {
	Status model.SiteStatus `json:"status"`
}

type siteEndRequest struct {
	ActualEndDate string `json:"actualEndDate"`
}

type enrollmentRequest struct {
	EnrollmentTarget int `json:"enrollmentTarget"`
	ActualEnrollment int `json:"actualEnrollment"`
}

// RegisterRoutes registers the API routes for trial sites
func (sc *SiteController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/trials/:id/sites", sc.ListSites)
	r.POST("/trials/:id/sites", sc.CreateSite)

	sites := r.Group("/sites")
	{
		sites.GET("/:id", sc.GetSite)
		sites.POST("/:id/status", sc.ChangeStatus)
		sites.POST("/:id/end", sc.SetActualEndDate)
		sites.PATCH("/:id/enrollment", sc.UpdateEnrollment)
	}
}

func (sc *SiteController) CreateSite(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var site model.Site
	if !bindJSON(c, &site) {
		return
	}
	created, err := sc.siteService.Create(c, c.Param("id"), site, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (sc *SiteController) ListSites(c *gin.Context) {
	sites, err := sc.siteService.ListByTrial(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sites)
}

func (sc *SiteController) GetSite(c *gin.Context) {
	site, err := sc.siteService.Get(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"site": site, "enrollmentProgress": site.EnrollmentProgress()})
}

func (sc *SiteController) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req siteStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	site, err := sc.siteService.ChangeStatus(c, c.Param("id"), req.Status, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

func (sc *SiteController) SetActualEndDate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req siteEndRequest
	if !bindJSON(c, &req) {
		return
	}
	end, ok := parseDate(c, "actualEndDate", req.ActualEndDate)
	if !ok {
		return
	}
	site, err := sc.siteService.SetActualEndDate(c, c.Param("id"), end, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}

func (sc *SiteController) UpdateEnrollment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req enrollmentRequest
	if !bindJSON(c, &req) {
		return
	}
	site, err := sc.siteService.UpdateEnrollment(c, c.Param("id"), req.EnrollmentTarget, req.ActualEnrollment, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, site)
}
