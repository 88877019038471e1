package models

import "time"

// DiaryEntry defines a 'work_diary' row. Soft-deleted rows never leave the repository layer
// on student-facing paths.
type DiaryEntry struct {
	ID          int64     `json:"entry_id" db:"entry_id"`
	StudentID   int64     `json:"-" db:"student_id"`
	WorkDate    time.Time `json:"work_date" db:"work_date"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
	IsDeleted   bool      `json:"-" db:"is_deleted"`
}
