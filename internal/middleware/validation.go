package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/models/dto"
)

// BindJSON binds the request body into obj, running the binding tags through the validator.
// On failure it writes a 400 and returns false.
func BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}
