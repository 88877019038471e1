package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/app/services"
	"github.com/yigit/practicum/internal/middleware"
	"github.com/yigit/practicum/internal/pkg/validation"
)

// ProcedureController calls the stored procedures
type ProcedureController struct {
	procedureService services.ProcedureService
}

// NewProcedureController creates a new ProcedureController
func NewProcedureController(procedureService services.ProcedureService) *ProcedureController {
	return &ProcedureController{procedureService: procedureService}
}

// AddStudent calls add_student
// @Summary Add student
// @Description Creates the user account and student row in one call. The password is stored as a bcrypt hash.
// @Tags procedures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddStudentRequest true "Student"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid data or username taken"
// @Failure 404 {object} dto.ErrorResponse "Group or practice not found"
// @Router /procedures/add-student [post]
func (c *ProcedureController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	err := c.procedureService.AddStudent(ctx.Request.Context(), services.AddStudentInput{
		Username:   req.Username,
		Password:   req.Password,
		FullName:   req.FullName,
		GroupID:    req.GroupID,
		PracticeID: req.PracticeID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, nil, "Student added")
}

// ClosePractice calls close_practice
// @Summary Close practice
// @Tags procedures
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ClosePracticeRequest true "Practice"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.ErrorResponse "Practice not found"
// @Router /procedures/close-practice [post]
func (c *ProcedureController) ClosePractice(ctx *gin.Context) {
	var req dto.ClosePracticeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	endDate, err := validation.ParseDate("end_date", req.EndDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.procedureService.ClosePractice(ctx.Request.Context(), req.PracticeID, endDate); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, nil, "Practice closed")
}
