package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/app/services"
	"github.com/yigit/practicum/internal/middleware"
)

// TransactionController exposes the composite student mutations
type TransactionController struct {
	transactionService services.TransactionService
}

// NewTransactionController creates a new TransactionController
func NewTransactionController(transactionService services.TransactionService) *TransactionController {
	return &TransactionController{transactionService: transactionService}
}

// MoveStudent changes a student's group and records the move in their diary
// @Summary Move student to another group
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MoveStudentRequest true "Move"
// @Success 200 {object} dto.APIResponse{data=models.MoveStudentResult}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Student or group not found"
// @Failure 500 {object} dto.ErrorResponse "Transaction rolled back"
// @Router /transactions/move-student [post]
func (c *TransactionController) MoveStudent(ctx *gin.Context) {
	var req dto.MoveStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.transactionService.MoveStudent(ctx.Request.Context(), req.StudentID, req.NewGroupID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, result, "Student moved")
}

// DeleteStudent removes a student with all their works and diary entries
// @Summary Delete student
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DeleteStudentRequest true "Student"
// @Success 200 {object} dto.APIResponse{data=models.DeleteStudentResult}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /transactions/delete-student [post]
func (c *TransactionController) DeleteStudent(ctx *gin.Context) {
	var req dto.DeleteStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.transactionService.DeleteStudent(ctx.Request.Context(), req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, result, "Student deleted")
}
