package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/app/services"
	"github.com/yigit/practicum/internal/middleware"
)

// dictionaryHandlers serves one single-name reference table. R is the request body type and
// name extracts the submitted name from it.
type dictionaryHandlers[T any, R any] struct {
	service services.DictionaryService[T]
	entity  string
	name    func(*R) string
}

func (h dictionaryHandlers[T, R]) list(ctx *gin.Context) {
	items, err := h.service.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, items, "")
}

func (h dictionaryHandlers[T, R]) create(ctx *gin.Context) {
	var req R
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	item, err := h.service.Create(ctx.Request.Context(), h.name(&req))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, item, h.entity+" created")
}

func (h dictionaryHandlers[T, R]) update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req R
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	item, err := h.service.Update(ctx.Request.Context(), id, h.name(&req))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, item, h.entity+" updated")
}

func (h dictionaryHandlers[T, R]) delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, nil, h.entity+" deleted")
}

// ReferenceController handles the admin reference tables: locations, groups and roles
type ReferenceController struct {
	locations dictionaryHandlers[models.Location, dto.LocationRequest]
	groups    dictionaryHandlers[models.Group, dto.GroupRequest]
	roles     dictionaryHandlers[models.Role, dto.RoleRequest]
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(locations services.LocationService, groups services.GroupService, roles services.RoleService) *ReferenceController {
	return &ReferenceController{
		locations: dictionaryHandlers[models.Location, dto.LocationRequest]{
			service: locations,
			entity:  "Location",
			name:    func(r *dto.LocationRequest) string { return r.Location },
		},
		groups: dictionaryHandlers[models.Group, dto.GroupRequest]{
			service: groups,
			entity:  "Group",
			name:    func(r *dto.GroupRequest) string { return r.GroupName },
		},
		roles: dictionaryHandlers[models.Role, dto.RoleRequest]{
			service: roles,
			entity:  "Role",
			name:    func(r *dto.RoleRequest) string { return r.RoleName },
		},
	}
}

// GetLocations lists practice locations
// @Summary List locations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Location}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /admin/locations [get]
func (c *ReferenceController) GetLocations(ctx *gin.Context) { c.locations.list(ctx) }

// CreateLocation adds a practice location
// @Summary Create location
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LocationRequest true "Location"
// @Success 201 {object} dto.APIResponse{data=models.Location}
// @Failure 400 {object} dto.ErrorResponse "Location is empty"
// @Router /admin/locations [post]
func (c *ReferenceController) CreateLocation(ctx *gin.Context) { c.locations.create(ctx) }

// UpdateLocation renames a practice location
// @Summary Update location
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param request body dto.LocationRequest true "Location"
// @Success 200 {object} dto.APIResponse{data=models.Location}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Location not found"
// @Router /admin/locations/{id} [put]
func (c *ReferenceController) UpdateLocation(ctx *gin.Context) { c.locations.update(ctx) }

// DeleteLocation removes a location no practice refers to
// @Summary Delete location
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Location is used by a practice"
// @Failure 404 {object} dto.ErrorResponse "Location not found"
// @Router /admin/locations/{id} [delete]
func (c *ReferenceController) DeleteLocation(ctx *gin.Context) { c.locations.delete(ctx) }

// GetGroups lists student groups
// @Summary List groups
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Group}
// @Router /admin/groups [get]
func (c *ReferenceController) GetGroups(ctx *gin.Context) { c.groups.list(ctx) }

// CreateGroup adds a student group
// @Summary Create group
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GroupRequest true "Group"
// @Success 201 {object} dto.APIResponse{data=models.Group}
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/groups [post]
func (c *ReferenceController) CreateGroup(ctx *gin.Context) { c.groups.create(ctx) }

// UpdateGroup renames a student group
// @Summary Update group
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param request body dto.GroupRequest true "Group"
// @Success 200 {object} dto.APIResponse{data=models.Group}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/groups/{id} [put]
func (c *ReferenceController) UpdateGroup(ctx *gin.Context) { c.groups.update(ctx) }

// DeleteGroup removes a group without students
// @Summary Delete group
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Group has students"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/groups/{id} [delete]
func (c *ReferenceController) DeleteGroup(ctx *gin.Context) { c.groups.delete(ctx) }

// GetRoles lists supervisor roles
// @Summary List roles
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Role}
// @Router /admin/roles [get]
func (c *ReferenceController) GetRoles(ctx *gin.Context) { c.roles.list(ctx) }

// CreateRole adds a supervisor role
// @Summary Create role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RoleRequest true "Role"
// @Success 201 {object} dto.APIResponse{data=models.Role}
// @Router /admin/roles [post]
func (c *ReferenceController) CreateRole(ctx *gin.Context) { c.roles.create(ctx) }

// UpdateRole renames a supervisor role
// @Summary Update role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Param request body dto.RoleRequest true "Role"
// @Success 200 {object} dto.APIResponse{data=models.Role}
// @Router /admin/roles/{id} [put]
func (c *ReferenceController) UpdateRole(ctx *gin.Context) { c.roles.update(ctx) }

// DeleteRole removes a role no supervisor holds
// @Summary Delete role
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Role ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Role is assigned to supervisors"
// @Router /admin/roles/{id} [delete]
func (c *ReferenceController) DeleteRole(ctx *gin.Context) { c.roles.delete(ctx) }
