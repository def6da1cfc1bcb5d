// api/controller/controllers.go
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
	helper_util "github.com/dev-mohitbeniwal/etmf/api/util/helper"
)

type Controllers struct {
	Classification *ClassificationController
	Document       *DocumentController
	Workflow       *WorkflowController
	Trial          *TrialController
	Site           *SiteController
	Milestone      *MilestoneController
	Deviation      *DeviationController
	ESignature     *ESignatureController
	Role           *RoleController
	Protocol       *ProtocolController
	SOP            *SOPController
	Template       *TemplateController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Classification: NewClassificationController(services.Classification),
		Document:       NewDocumentController(services.Document),
		Workflow:       NewWorkflowController(services.Workflow),
		Trial:          NewTrialController(services.Trial),
		Site:           NewSiteController(services.Site),
		Milestone:      NewMilestoneController(services.Milestone),
		Deviation:      NewDeviationController(services.Deviation),
		ESignature:     NewESignatureController(services.ESignature),
		Role:           NewRoleController(services.Role),
		Protocol:       NewProtocolController(services.Protocol),
		SOP:            NewSOPController(services.SOP),
		Template:       NewTemplateController(services.Template),
	}
}

// RegisterRoutes mounts every controller on r.
func (cs *Controllers) RegisterRoutes(r *gin.RouterGroup) {
	cs.Classification.RegisterRoutes(r)
	cs.Document.RegisterRoutes(r)
	cs.Workflow.RegisterRoutes(r)
	cs.Trial.RegisterRoutes(r)
	cs.Site.RegisterRoutes(r)
	cs.Milestone.RegisterRoutes(r)
	cs.Deviation.RegisterRoutes(r)
	cs.ESignature.RegisterRoutes(r)
	cs.Role.RegisterRoutes(r)
	cs.Protocol.RegisterRoutes(r)
	cs.SOP.RegisterRoutes(r)
	cs.Template.RegisterRoutes(r)
}

// requireActor writes 401 and reports false when no user is attached to the request.
func requireActor(c *gin.Context) (string, bool) {
	actor, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return "", false
	}
	return actor, true
}

func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		util.RespondWithServiceError(c, etmf_errors.Wrap(etmf_errors.ErrValidation, err, "invalid request body"))
		return false
	}
	return true
}

// bindOptionalJSON accepts an empty body.
func bindOptionalJSON(c *gin.Context, v interface{}) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return true
	}
	return bindJSON(c, v)
}

// parseDate writes 400 and reports false when value is not a date.
func parseDate(c *gin.Context, field, value string) (time.Time, bool) {
	if value == "" {
		util.RespondWithServiceError(c, etmf_errors.Validation("%s is required", field))
		return time.Time{}, false
	}
	t, err := helper_util.ParseTime(value)
	if err != nil {
		util.RespondWithServiceError(c, etmf_errors.Validation("%s: %v", field, err))
		return time.Time{}, false
	}
	return t, true
}

// pathInt writes 400 and reports false when the path parameter is not an integer.
func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		util.RespondWithServiceError(c, etmf_errors.Validation("%s must be an integer", name))
		return 0, false
	}
	return v, true
}

func respondPage(c *gin.Context, items interface{}, total int64, limit, offset int) {
	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}
