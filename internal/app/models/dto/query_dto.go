package dto

// DynamicQueryRequest carries free-text SQL for the dynamic query gateway
type DynamicQueryRequest struct {
	Query string `json:"query"`
}

// DynamicQueryResponse is the flat result shape of the dynamic query gateway
type DynamicQueryResponse struct {
	Success  bool             `json:"success" example:"true"`
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int64            `json:"rowCount" example:"1"`
}

// StudentsCountResponse is the result of get_students_count
type StudentsCountResponse struct {
	PracticeID   int64 `json:"practice_id"`
	StudentCount int64 `json:"student_count"`
}

// AverageDiaryEntriesResponse is the result of get_avg_diary_entries
type AverageDiaryEntriesResponse struct {
	AvgEntries float64 `json:"avg_entries"`
}

// AddStudentRequest is the body of the add_student procedure
type AddStudentRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	GroupID    int64  `json:"group_id" binding:"required,gt=0"`
	PracticeID int64  `json:"practice_id" binding:"required,gt=0"`
}

// ClosePracticeRequest is the body of the close_practice procedure
type ClosePracticeRequest struct {
	PracticeID int64  `json:"practice_id" binding:"required,gt=0"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
}
