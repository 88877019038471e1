package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/app/services"
	"github.com/yigit/practicum/internal/middleware"
)

// QueryController serves the report catalog, the view builders and the dynamic query gateway
type QueryController struct {
	queryService services.QueryService
}

// NewQueryController creates a new QueryController
func NewQueryController(queryService services.QueryService) *QueryController {
	return &QueryController{
		queryService: queryService,
	}
}

// ListReports returns the names accepted by GetReport
// @Summary List reports
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /queries [get]
func (c *QueryController) ListReports(ctx *gin.Context) {
	respondOK(ctx, c.queryService.ReportNames(), "")
}

// GetReport runs a fixed report by name
// @Summary Run report
// @Description Runs one of the fixed reports, e.g. users, students-with-groups, supervisors-details
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Param report path string true "Report name"
// @Success 200 {object} dto.APIResponse{data=models.ResultSet}
// @Failure 404 {object} dto.ErrorResponse "Unknown report"
// @Router /queries/{report} [get]
func (c *QueryController) GetReport(ctx *gin.Context) {
	result, err := c.queryService.RunReport(ctx.Request.Context(), ctx.Param("report"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, result, "")
}

// CreateStudentGroupsView (re)creates the student_groups view
// @Summary Create student groups view
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /queries/create-views [post]
func (c *QueryController) CreateStudentGroupsView(ctx *gin.Context) {
	if err := c.queryService.CreateStudentGroupsView(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, nil, "View student_groups created")
}

// CreatePracticeStudentsView (re)creates the practice_students view
// @Summary Create practice students view
// @Tags queries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /queries/create-practice-view [post]
func (c *QueryController) CreatePracticeStudentsView(ctx *gin.Context) {
	if err := c.queryService.CreatePracticeStudentsView(ctx.Request.Context()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, nil, "View practice_students created")
}

// ExecuteDynamic runs caller-supplied SELECT text
// @Summary Dynamic query
// @Description Only text starting with SELECT is accepted. It runs in a read-only transaction.
// @Tags queries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DynamicQueryRequest true "Query"
// @Success 200 {object} dto.DynamicQueryResponse
// @Failure 400 {object} dto.ErrorResponse "Query is empty"
// @Failure 403 {object} dto.ErrorResponse "Only SELECT queries are allowed"
// @Failure 500 {object} dto.ErrorResponse "Query failed"
// @Router /queries/dynamic [post]
func (c *QueryController) ExecuteDynamic(ctx *gin.Context) {
	var req dto.DynamicQueryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.queryService.ExecuteDynamic(ctx.Request.Context(), req.Query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DynamicQueryResponse{
		Success:  true,
		Columns:  result.Columns,
		Rows:     result.Rows,
		RowCount: result.RowCount,
	})
}

// StudentsCount calls get_students_count
// @Summary Students in a practice
// @Tags functions
// @Produce json
// @Security BearerAuth
// @Param practice_id path int true "Practice ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentsCountResponse}
// @Router /functions/students-count/{practice_id} [get]
func (c *QueryController) StudentsCount(ctx *gin.Context) {
	practiceID, ok := parseIDParam(ctx, "practice_id")
	if !ok {
		return
	}

	count, err := c.queryService.StudentsCount(ctx.Request.Context(), practiceID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.StudentsCountResponse{PracticeID: practiceID, StudentCount: count}, "")
}

// AverageDiaryEntries calls get_avg_diary_entries
// @Summary Average diary entries per student
// @Tags functions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AverageDiaryEntriesResponse}
// @Router /functions/avg-diary-entries [get]
func (c *QueryController) AverageDiaryEntries(ctx *gin.Context) {
	avg, err := c.queryService.AverageDiaryEntries(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.AverageDiaryEntriesResponse{AvgEntries: avg}, "")
}
