package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/app/services"
	"github.com/yigit/practicum/internal/middleware"
)

// PositionController handles organization positions
type PositionController struct {
	positionService services.PositionService
}

// NewPositionController creates a new PositionController
func NewPositionController(positionService services.PositionService) *PositionController {
	return &PositionController{
		positionService: positionService,
	}
}

// GetPositions lists positions with their organization
// @Summary List positions
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Position}
// @Router /admin/positions [get]
func (c *PositionController) GetPositions(ctx *gin.Context) {
	positions, err := c.positionService.GetAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, positions, "")
}

// CreatePosition adds a position to an organization
// @Summary Create position
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PositionRequest true "Position"
// @Success 201 {object} dto.APIResponse{data=models.Position}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Organization not found"
// @Router /admin/positions [post]
func (c *PositionController) CreatePosition(ctx *gin.Context) {
	var req dto.PositionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	position, err := c.positionService.Create(ctx.Request.Context(), req.PositionName, req.OrganizationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, position, "Position created")
}

// UpdatePosition changes a position's name and organization
// @Summary Update position
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Param request body dto.PositionRequest true "Position"
// @Success 200 {object} dto.APIResponse{data=models.Position}
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/positions/{id} [put]
func (c *PositionController) UpdatePosition(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.PositionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	position, err := c.positionService.Update(ctx.Request.Context(), id, req.PositionName, req.OrganizationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, position, "Position updated")
}

// DeletePosition removes a position no supervisor holds
// @Summary Delete position
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Position ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Position is assigned to supervisors"
// @Router /admin/positions/{id} [delete]
func (c *PositionController) DeletePosition(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.positionService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, nil, "Position deleted")
}
