package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/app/services"
	"github.com/yigit/practicum/internal/middleware"
	"github.com/yigit/practicum/internal/pkg/apperrors"
)

// StudentController serves the signed-in student's profile, diary and individual works.
// Every handler acts on behalf of the session user only.
type StudentController struct {
	studentService services.StudentService
	diaryService   services.DiaryService
	workService    services.IndividualWorkService
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService services.StudentService,
	diaryService services.DiaryService,
	workService services.IndividualWorkService,
) *StudentController {
	return &StudentController{
		studentService: studentService,
		diaryService:   diaryService,
		workService:    workService,
	}
}

// GetProfile returns the student's group, practice and supervisors
// @Summary Student profile
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.StudentProfile}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /student/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	profile, err := c.studentService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, profile, "")
}

// GetDiary lists the student's live diary entries
// @Summary List diary entries
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.DiaryEntry}
// @Failure 403 {object} dto.ErrorResponse "Account is not a student"
// @Router /student/diary [get]
func (c *StudentController) GetDiary(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	entries, err := c.diaryService.List(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, entries, "")
}

// GetDiaryEntry returns one of the student's diary entries
// @Summary Get diary entry
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.APIResponse{data=models.DiaryEntry}
// @Failure 403 {object} dto.ErrorResponse "Entry belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /student/diary/{id} [get]
func (c *StudentController) GetDiaryEntry(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	entry, err := c.diaryService.Get(ctx.Request.Context(), userID, entryID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, entry, "")
}

// CreateDiaryEntry adds a diary entry; work_date defaults to today
// @Summary Create diary entry
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DiaryEntryRequest true "Entry"
// @Success 201 {object} dto.APIResponse{data=models.DiaryEntry}
// @Failure 400 {object} dto.ErrorResponse
// @Router /student/diary [post]
func (c *StudentController) CreateDiaryEntry(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	var req dto.DiaryEntryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	workDate, err := parseOptionalDate("work_date", req.WorkDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entry, err := c.diaryService.Create(ctx.Request.Context(), userID, workDate, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, entry, "Diary entry created")
}

// UpdateDiaryEntry changes an entry's description and, when given, its date
// @Summary Update diary entry
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Param request body dto.DiaryEntryRequest true "Entry"
// @Success 200 {object} dto.APIResponse{data=models.DiaryEntry}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/diary/{id} [put]
func (c *StudentController) UpdateDiaryEntry(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.DiaryEntryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	workDate, err := parseOptionalDate("work_date", req.WorkDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	entry, err := c.diaryService.Update(ctx.Request.Context(), userID, entryID, workDate, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, entry, "Diary entry updated")
}

// DeleteDiaryEntry soft deletes an entry
// @Summary Delete diary entry
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/diary/{id} [delete]
func (c *StudentController) DeleteDiaryEntry(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	entryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.diaryService.Delete(ctx.Request.Context(), userID, entryID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, nil, "Diary entry deleted")
}

// GetIndividualWorks lists the student's live individual works
// @Summary List individual works
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.IndividualWork}
// @Router /student/individual-works [get]
func (c *StudentController) GetIndividualWorks(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}

	works, err := c.workService.List(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, works, "")
}

// GetIndividualWork returns one of the student's individual works
// @Summary Get individual work
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work ID"
// @Success 200 {object} dto.APIResponse{data=models.IndividualWork}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/individual-works/{id} [get]
func (c *StudentController) GetIndividualWork(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	workID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	work, err := c.workService.Get(ctx.Request.Context(), userID, workID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, work, "")
}

// workPatch converts the request into a patch, parsing the supplied dates
func workPatch(req *dto.IndividualWorkRequest) (models.IndividualWorkPatch, error) {
	issueDate, err := parseOptionalDate("issue_date", req.IssueDate)
	if err != nil {
		return models.IndividualWorkPatch{}, err
	}
	deadline, err := parseOptionalDate("issue_deadline", req.IssueDeadline)
	if err != nil {
		return models.IndividualWorkPatch{}, err
	}
	return models.IndividualWorkPatch{
		IssueDate:     issueDate,
		Description:   req.WorkDescription,
		IssueDeadline: deadline,
		CompleteMark:  req.CompleteMark,
	}, nil
}

// CreateIndividualWork adds an individual work
// @Summary Create individual work
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.IndividualWorkRequest true "Work"
// @Success 201 {object} dto.APIResponse{data=models.IndividualWork}
// @Failure 400 {object} dto.ErrorResponse
// @Router /student/individual-works [post]
func (c *StudentController) CreateIndividualWork(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	var req dto.IndividualWorkRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	patch, err := workPatch(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	if patch.IssueDate == nil || patch.IssueDeadline == nil || patch.Description == nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("issue_date, work_description and issue_deadline are required"))
		return
	}

	input := services.NewIndividualWork{
		IssueDate:     *patch.IssueDate,
		Description:   *patch.Description,
		IssueDeadline: *patch.IssueDeadline,
	}
	if patch.CompleteMark != nil {
		input.CompleteMark = *patch.CompleteMark
	}

	work, err := c.workService.Create(ctx.Request.Context(), userID, input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, work, "Individual work created")
}

// UpdateIndividualWork changes the supplied fields of an individual work
// @Summary Update individual work
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work ID"
// @Param request body dto.IndividualWorkRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.IndividualWork}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/individual-works/{id} [put]
func (c *StudentController) UpdateIndividualWork(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	workID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.IndividualWorkRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	patch, err := workPatch(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	work, err := c.workService.Update(ctx.Request.Context(), userID, workID, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, work, "Individual work updated")
}

// DeleteIndividualWork soft deletes an individual work
// @Summary Delete individual work
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param id path int true "Work ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /student/individual-works/{id} [delete]
func (c *StudentController) DeleteIndividualWork(ctx *gin.Context) {
	userID, ok := sessionUserID(ctx)
	if !ok {
		return
	}
	workID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.workService.Delete(ctx.Request.Context(), userID, workID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, nil, "Individual work deleted")
}
