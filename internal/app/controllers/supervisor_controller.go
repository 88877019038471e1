package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/app/services"
	"github.com/yigit/practicum/internal/middleware"
)

// SupervisorController handles practice supervisors
type SupervisorController struct {
	supervisorService services.SupervisorService
}

// NewSupervisorController creates a new SupervisorController
func NewSupervisorController(supervisorService services.SupervisorService) *SupervisorController {
	return &SupervisorController{
		supervisorService: supervisorService,
	}
}

func valueOrZero(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

// GetSupervisors lists supervisors joined with practice, role, position and organization
// @Summary List supervisors
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.SupervisorDetails}
// @Router /admin/supervisors [get]
func (c *SupervisorController) GetSupervisors(ctx *gin.Context) {
	supervisors, err := c.supervisorService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, supervisors, "")
}

// CreateSupervisor adds a supervisor
// @Summary Create supervisor
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SupervisorRequest true "Supervisor"
// @Success 201 {object} dto.APIResponse{data=models.Supervisor}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Practice, position or role not found"
// @Router /admin/supervisors [post]
func (c *SupervisorController) CreateSupervisor(ctx *gin.Context) {
	var req dto.SupervisorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	supervisor, err := c.supervisorService.Create(ctx.Request.Context(), &models.Supervisor{
		FullName:   req.FullName,
		PracticeID: valueOrZero(req.PracticeID),
		PositionID: valueOrZero(req.PositionID),
		RoleID:     valueOrZero(req.RoleID),
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, supervisor, "Supervisor created")
}

// UpdateSupervisor renames a supervisor and changes the supplied references
// @Summary Update supervisor
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supervisor ID"
// @Param request body dto.SupervisorRequest true "Supervisor"
// @Success 200 {object} dto.APIResponse{data=models.Supervisor}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/supervisors/{id} [put]
func (c *SupervisorController) UpdateSupervisor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.SupervisorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	supervisor, err := c.supervisorService.Update(ctx.Request.Context(), id, models.SupervisorPatch{
		FullName:   req.FullName,
		PracticeID: req.PracticeID,
		PositionID: req.PositionID,
		RoleID:     req.RoleID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, supervisor, "Supervisor updated")
}

// DeleteSupervisor removes a supervisor
// @Summary Delete supervisor
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Supervisor ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/supervisors/{id} [delete]
func (c *SupervisorController) DeleteSupervisor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.supervisorService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, nil, "Supervisor deleted")
}
