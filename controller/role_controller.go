// api/controller/role_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/etmf/api/model"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/util"
	helper_util "github.com/dev-mohitbeniwal/etmf/api/util/helper"
)

type RoleController struct {
	roleService service.IRoleService
}

func NewRoleController(roleService service.IRoleService) *RoleController {
	return &RoleController{
		roleService: roleService,
	}
}

type roleStatusRequest struct {
	Status model.RoleStatus `json:"status"`
}

// RegisterRoutes registers the API routes for roles
func (rc *RoleController) RegisterRoutes(r *gin.RouterGroup) {
	roles := r.Group("/roles")
	{
		roles.POST("", rc.CreateRole)
		roles.GET("", rc.ListRoles)
		roles.GET("/:id", rc.GetRole)
		roles.PUT("/:id/permissions", rc.UpdatePermissions)
		roles.PATCH("/:id", rc.UpdateDetails)
		roles.POST("/:id/status", rc.SetStatus)
	}
}

// CreateRole endpoint
func (rc *RoleController) CreateRole(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var role model.Role
	if !bindJSON(c, &role) {
		return
	}
	created, err := rc.roleService.Create(c, role, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetRole endpoint
func (rc *RoleController) GetRole(c *gin.Context) {
	role, err := rc.roleService.Get(c, c.Param("id"))
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

// ListRoles endpoint
func (rc *RoleController) ListRoles(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	roles, err := rc.roleService.List(c, model.RoleStatus(c.Query("status")), limit, offset)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (rc *RoleController) UpdatePermissions(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var permissions model.Permissions
	if !bindJSON(c, &permissions) {
		return
	}
	role, err := rc.roleService.UpdatePermissions(c, c.Param("id"), permissions, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (rc *RoleController) UpdateDetails(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var details model.RoleDetails
	if !bindJSON(c, &details) {
		return
	}
	role, err := rc.roleService.UpdateDetails(c, c.Param("id"), details, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (rc *RoleController) SetStatus(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req roleStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	role, err := rc.roleService.SetStatus(c, c.Param("id"), req.Status, actor)
	if err != nil {
		util.RespondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}
