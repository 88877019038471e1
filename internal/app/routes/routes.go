package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/practicum/internal/app/controllers"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth        *controllers.AuthController
	Reference   *controllers.ReferenceController
	Position    *controllers.PositionController
	Supervisor  *controllers.SupervisorController
	Catalog     *controllers.CatalogController
	Student     *controllers.StudentController
	Query       *controllers.QueryController
	Procedure   *controllers.ProcedureController
	Transaction *controllers.TransactionController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"status": "ok"}, ""))
	})

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.GET("/check", authMiddleware.JWTAuth(), c.Auth.Check)
	}

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	// --- Student routes: the session user acts on their own rows ---
	student := authenticated.Group("/student")
	{
		student.GET("/profile", c.Student.GetProfile)

		student.GET("/diary", c.Student.GetDiary)
		student.POST("/diary", c.Student.CreateDiaryEntry)
		student.GET("/diary/:id", c.Student.GetDiaryEntry)
		student.PUT("/diary/:id", c.Student.UpdateDiaryEntry)
		student.DELETE("/diary/:id", c.Student.DeleteDiaryEntry)

		student.GET("/individual-works", c.Student.GetIndividualWorks)
		student.POST("/individual-works", c.Student.CreateIndividualWork)
		student.GET("/individual-works/:id", c.Student.GetIndividualWork)
		student.PUT("/individual-works/:id", c.Student.UpdateIndividualWork)
		student.DELETE("/individual-works/:id", c.Student.DeleteIndividualWork)
	}

	// --- Administrator routes ---
	adminOnly := authenticated.Group("")
	adminOnly.Use(authMiddleware.AdminRequired())

	admin := adminOnly.Group("/admin")
	{
		admin.GET("/locations", c.Reference.GetLocations)
		admin.POST("/locations", c.Reference.CreateLocation)
		admin.PUT("/locations/:id", c.Reference.UpdateLocation)
		admin.DELETE("/locations/:id", c.Reference.DeleteLocation)

		admin.GET("/groups", c.Reference.GetGroups)
		admin.POST("/groups", c.Reference.CreateGroup)
		admin.PUT("/groups/:id", c.Reference.UpdateGroup)
		admin.DELETE("/groups/:id", c.Reference.DeleteGroup)

		admin.GET("/roles", c.Reference.GetRoles)
		admin.POST("/roles", c.Reference.CreateRole)
		admin.PUT("/roles/:id", c.Reference.UpdateRole)
		admin.DELETE("/roles/:id", c.Reference.DeleteRole)

		admin.GET("/positions", c.Position.GetPositions)
		admin.POST("/positions", c.Position.CreatePosition)
		admin.PUT("/positions/:id", c.Position.UpdatePosition)
		admin.DELETE("/positions/:id", c.Position.DeletePosition)

		admin.GET("/supervisors", c.Supervisor.GetSupervisors)
		admin.POST("/supervisors", c.Supervisor.CreateSupervisor)
		admin.PUT("/supervisors/:id", c.Supervisor.UpdateSupervisor)
		admin.DELETE("/supervisors/:id", c.Supervisor.DeleteSupervisor)

		admin.GET("/organizations", c.Catalog.GetOrganizations)
		admin.GET("/practices", c.Catalog.GetPractices)
	}

	queries := adminOnly.Group("/queries")
	{
		queries.GET("", c.Query.ListReports)
		queries.GET("/:report", c.Query.GetReport)
		queries.POST("/create-views", c.Query.CreateStudentGroupsView)
		queries.POST("/create-practice-view", c.Query.CreatePracticeStudentsView)
		queries.POST("/dynamic", c.Query.ExecuteDynamic)
	}

	functions := adminOnly.Group("/functions")
	{
		functions.GET("/students-count/:practice_id", c.Query.StudentsCount)
		functions.GET("/avg-diary-entries", c.Query.AverageDiaryEntries)
	}

	procedures := adminOnly.Group("/procedures")
	{
		procedures.POST("/add-student", c.Procedure.AddStudent)
		procedures.POST("/close-practice", c.Procedure.ClosePractice)
	}

	transactions := adminOnly.Group("/transactions")
	{
		transactions.POST("/move-student", c.Transaction.MoveStudent)
		transactions.POST("/delete-student", c.Transaction.DeleteStudent)
	}
}
