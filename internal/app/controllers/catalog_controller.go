package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/services"
	"github.com/yigit/practicum/internal/middleware"
)

// CatalogController serves the read-only organization and practice lists
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetOrganizations lists organizations
// @Summary List organizations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Organization}
// @Router /admin/organizations [get]
func (c *CatalogController) GetOrganizations(ctx *gin.Context) {
	organizations, err := c.catalogService.GetOrganizations(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, organizations, "")
}

// GetPractices lists practices
// @Summary List practices
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Practice}
// @Router /admin/practices [get]
func (c *CatalogController) GetPractices(ctx *gin.Context) {
	practices, err := c.catalogService.GetPractices(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, practices, "")
}
