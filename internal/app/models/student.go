package models

import "time"

// Student defines the 'student' table row
type Student struct {
	ID         int64 `json:"student_id" db:"student_id"`
	UserID     int64 `json:"user_id" db:"user_id"`
	GroupID    int64 `json:"group_id" db:"group_id"`
	PracticeID int64 `json:"practice_id" db:"practice_id"`
}

// StudentProfile is the student-facing view of a student and its practice
type StudentProfile struct {
	UserID      int64               `json:"user_id"`
	Username    string              `json:"username"`
	FullName    string              `json:"full_name"`
	GroupName   string              `json:"group_name"`
	PracticeID  int64               `json:"practice_id"`
	StartDate   time.Time           `json:"start_date"`
	EndDate     time.Time           `json:"end_date"`
	Location    string              `json:"location"`
	Supervisors []ProfileSupervisor `json:"supervisors"`
}

// ProfileSupervisor is a supervisor as listed in a student profile
type ProfileSupervisor struct {
	ID               int64  `json:"supervisor_id"`
	FullName         string `json:"full_name"`
	PositionName     string `json:"position_name"`
	OrganizationName string `json:"organization_name"`
	RoleName         string `json:"role_name"`
}

// NewStudent carries the inputs of the add_student procedure
type NewStudent struct {
	Username     string
	PasswordHash string
	FullName     string
	GroupID      int64
	PracticeID   int64
}
