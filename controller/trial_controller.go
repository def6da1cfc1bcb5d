// api/controller/trial_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
	helper_util "github.com/dev-mohitbeniwal/etmf/api/util/helper"
)

type TrialController struct {
	trialService service.ITrialService
}

func NewTrialController(trialService service.ITrialService) *TrialController {
	return &TrialController{
		trialService: trialService,
	}
}

type trialDatesRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type trialStatusRequest struct {
	Status model.TrialStatus `json:"status"`
}

// RegisterRoutes registers the API routes for trials
func (tc *TrialController) RegisterRoutes(r *gin.RouterGroup) {
	trials := r.Group("/trials")
	{
		trials.GET("", tc.ListTrials)
		trials.POST("", tc.CreateTrial)
		trials.GET("/study/:studyId", tc.GetTrialByStudyID)
		trials.GET("/:id", tc.GetTrial)
		trials.PATCH("/:id/dates", tc.UpdateDates)
		trials.POST("/:id/status", tc.ChangeStatus)
		trials.POST("/:id/team", tc.AddTeamMember)
		trials.DELETE("/:id/team/:userId", tc.RemoveTeamMember)
		trials.POST("/:id/countries", tc.AddCountry)
		trials.DELETE("/:id", tc.ArchiveTrial)
	}
}

func (tc *TrialController) CreateTrial(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var trial model.Trial
	if !bindJSON(c, &trial) {
		return
	}
	created, err := tc.trialService.Create(c, trial, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (tc *TrialController) GetTrial(c *gin.Context) {
	trial, err := tc.trialService.Get(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trial)
}

func (tc *TrialController) GetTrialByStudyID(c *gin.Context) {
	trial, err := tc.trialService.GetByStudyID(c, c.Param("studyId"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trial)
}

func (tc *TrialController) ListTrials(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	trials, total, err := tc.trialService.List(c, model.TrialStatus(c.Query("status")), limit, offset)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	respondPage(c, trials, total, limit, offset)
}

func (tc *TrialController) UpdateDates(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req trialDatesRequest
	if !bindJSON(c, &req) {
		return
	}
	start, ok := parseDate(c, "startDate", req.StartDate)
	if !ok {
		return
	}
	end, ok := parseDate(c, "endDate", req.EndDate)
	if !ok {
		return
	}
	trial, err := tc.trialService.UpdateDates(c, c.Param("id"), start, end, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trial)
}

func (tc *TrialController) ChangeStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req trialStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	trial, err := tc.trialService.ChangeStatus(c, c.Param("id"), req.Status, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trial)
}

func (tc *TrialController) AddTeamMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var member model.TeamMember
	if !bindJSON(c, &member) {
		return
	}
	trial, err := tc.trialService.AddTeamMember(c, c.Param("id"), member, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trial)
}

func (tc *TrialController) RemoveTeamMember(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	trial, err := tc.trialService.RemoveTeamMember(c, c.Param("id"), c.Param("userId"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trial)
}

func (tc *TrialController) AddCountry(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var country model.CountryEntry
	if !bindJSON(c, &country) {
		return
	}
	trial, err := tc.trialService.AddCountry(c, c.Param("id"), country, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trial)
}

func (tc *TrialController) ArchiveTrial(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	trial, err := tc.trialService.Archive(c, c.Param("id"), actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trial)
}
