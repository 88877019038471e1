package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appauth "github.com/yigit/practicum/internal/app/auth"
	"github.com/yigit/practicum/internal/app/models"
	"github.com/yigit/practicum/internal/app/models/dto"
	"github.com/yigit/practicum/internal/app/services"
	"github.com/yigit/practicum/internal/db"
	"github.com/yigit/practicum/internal/middleware"
	"github.com/yigit/practicum/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withUser stands in for JWTAuth
func withUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

// selectStore answers RunSelect; the other ReportStore methods are not reached
type selectStore struct {
	services.ReportStore
	queries []string
}

func (s *selectStore) RunSelect(_ context.Context, _ db.Querier, sql string) (*models.ResultSet, error) {
	s.queries = append(s.queries, sql)
	return &models.ResultSet{
		Columns:  []string{"user_id", "username"},
		Rows:     []map[string]any{{"user_id": 1, "username": "admin"}},
		RowCount: 1,
	}, nil
}

type directRunner struct{}

func (directRunner) InReadOnlyTx(ctx context.Context, fn func(ctx context.Context, q db.Querier) error) error {
	return fn(ctx, nil)
}

func TestQueryController_ExecuteDynamic(t *testing.T) {
	store := &selectStore{}
	ctrl := NewQueryController(services.NewQueryService(store, directRunner{}))
	r := gin.New()
	r.POST("/queries/dynamic", ctrl.ExecuteDynamic)

	w := doJSON(r, http.MethodPost, "/queries/dynamic", `{"query":"DELETE FROM users"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, errorCode(t, w))

	w = doJSON(r, http.MethodPost, "/queries/dynamic", `{"query":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.queries)

	w = doJSON(r, http.MethodPost, "/queries/dynamic", `{"query":"select user_id, username from users"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.DynamicQueryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(1), resp.RowCount)
	assert.Equal(t, "admin", resp.Rows[0]["username"])
	assert.Equal(t, []string{"select user_id, username from users"}, store.queries)
}

// stubDiary returns canned results per entry id
type stubDiary struct {
	services.DiaryService
	created *time.Time
}

func (s *stubDiary) Get(_ context.Context, userID, entryID int64) (*models.DiaryEntry, error) {
	switch entryID {
	case 1:
		return &models.DiaryEntry{ID: 1, Description: "mine"}, nil
	case 2:
		return nil, appauth.ErrNotRowOwner
	default:
		return nil, apperrors.ErrDiaryEntryNotFound
	}
}

func (s *stubDiary) Create(_ context.Context, _ int64, workDate *time.Time, description string) (*models.DiaryEntry, error) {
	s.created = workDate
	return &models.DiaryEntry{ID: 9, Description: description}, nil
}

func TestStudentController_DiaryOwnership(t *testing.T) {
	ctrl := NewStudentController(nil, &stubDiary{}, nil)
	r := gin.New()
	r.GET("/diary/:id", withUser(10), ctrl.GetDiaryEntry)

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodGet, "/diary/1", "").Code)

	w := doJSON(r, http.MethodGet, "/diary/2", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, errorCode(t, w))

	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodGet, "/diary/3", "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/diary/abc", "").Code)
}

func TestStudentController_RequiresSession(t *testing.T) {
	ctrl := NewStudentController(nil, &stubDiary{}, nil)
	r := gin.New()
	r.GET("/diary/:id", ctrl.GetDiaryEntry)

	assert.Equal(t, http.StatusUnauthorized, doJSON(r, http.MethodGet, "/diary/1", "").Code)
}

func TestStudentController_CreateDiaryEntryDates(t *testing.T) {
	diary := &stubDiary{}
	ctrl := NewStudentController(nil, diary, nil)
	r := gin.New()
	r.POST("/diary", withUser(10), ctrl.CreateDiaryEntry)

	w := doJSON(r, http.MethodPost, "/diary", `{"description":"wrote tests"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Nil(t, diary.created)

	w = doJSON(r, http.MethodPost, "/diary", `{"work_date":"2024-09-03","description":"x"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, diary.created)
	assert.Equal(t, time.Date(2024, 9, 3, 0, 0, 0, 0, time.UTC), *diary.created)

	w = doJSON(r, http.MethodPost, "/diary", `{"work_date":"03.09.2024","description":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type stubWorks struct {
	services.IndividualWorkService
	input *services.NewIndividualWork
	patch *models.IndividualWorkPatch
}

func (s *stubWorks) Create(_ context.Context, _ int64, input services.NewIndividualWork) (*models.IndividualWork, error) {
	s.input = &input
	return &models.IndividualWork{ID: 1, Description: input.Description}, nil
}

func (s *stubWorks) Update(_ context.Context, _ int64, _ int64, patch models.IndividualWorkPatch) (*models.IndividualWork, error) {
	s.patch = &patch
	return &models.IndividualWork{ID: 1}, nil
}

func TestStudentController_IndividualWorks(t *testing.T) {
	works := &stubWorks{}
	ctrl := NewStudentController(nil, nil, works)
	r := gin.New()
	r.POST("/works", withUser(10), ctrl.CreateIndividualWork)
	r.PUT("/works/:id", withUser(10), ctrl.UpdateIndividualWork)

	w := doJSON(r, http.MethodPost, "/works", `{"work_description":"report"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, works.input)

	w = doJSON(r, http.MethodPost, "/works", `{"issue_date":"2024-09-01","work_description":"report","issue_deadline":"2024-09-15","complete_mark":true}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, works.input.CompleteMark)
	assert.Equal(t, "report", works.input.Description)

	w = doJSON(r, http.MethodPut, "/works/1", `{"complete_mark":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, works.patch.CompleteMark)
	assert.False(t, *works.patch.CompleteMark)
	assert.Nil(t, works.patch.Description)
	assert.Nil(t, works.patch.IssueDate)
}

type stubLocations struct {
	services.LocationService
}

func (stubLocations) Delete(_ context.Context, id int64) error {
	if id == 1 {
		return apperrors.ErrLocationInUse
	}
	return nil
}

func (stubLocations) Create(_ context.Context, name string) (*models.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("location is required")
	}
	return &models.Location{ID: 3, Location: name}, nil
}

func TestReferenceController_Locations(t *testing.T) {
	ctrl := NewReferenceController(stubLocations{}, nil, nil)
	r := gin.New()
	r.POST("/locations", ctrl.CreateLocation)
	r.DELETE("/locations/:id", ctrl.DeleteLocation)

	w := doJSON(r, http.MethodDelete, "/locations/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeConflict, errorCode(t, w))

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/locations/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodDelete, "/locations/0", "").Code)

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/locations", `{"location":"  "}`).Code)

	w = doJSON(r, http.MethodPost, "/locations", `{"location":"Kazan"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"Kazan"`)
}

type stubTransactions struct {
	services.TransactionService
}

func (stubTransactions) MoveStudent(_ context.Context, studentID, groupID int64) (*models.MoveStudentResult, error) {
	if groupID == 404 {
		return nil, apperrors.ErrGroupNotFound
	}
	return &models.MoveStudentResult{StudentID: studentID, OldGroupID: 1, NewGroupID: groupID, DiaryEntryID: 5}, nil
}

func TestTransactionController_MoveStudent(t *testing.T) {
	ctrl := NewTransactionController(stubTransactions{})
	r := gin.New()
	r.POST("/move", ctrl.MoveStudent)

	w := doJSON(r, http.MethodPost, "/move", `{"student_id":1,"new_group_id":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                     `json:"success"`
		Data    models.MoveStudentResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(5), resp.Data.DiaryEntryID)

	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPost, "/move", `{"student_id":1,"new_group_id":404}`).Code)
}
