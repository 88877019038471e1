package models

import "time"

// IndividualWork defines an 'individual_work' row
type IndividualWork struct {
	ID            int64     `json:"individual_work_id" db:"individual_work_id"`
	StudentID     int64     `json:"-" db:"student_id"`
	IssueDate     time.Time `json:"issue_date" db:"issue_date"`
	Description   string    `json:"work_description" db:"work_description"`
	IssueDeadline time.Time `json:"issue_deadline" db:"issue_deadline"`
	CompleteMark  bool      `json:"complete_mark" db:"complete_mark"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
	IsDeleted     bool      `json:"-" db:"is_deleted"`
}

// IndividualWorkPatch lists the fields of a partial update; nil fields are left unchanged.
type IndividualWorkPatch struct {
	IssueDate     *time.Time
	Description   *string
	IssueDeadline *time.Time
	CompleteMark  *bool
}

// IsEmpty reports whether the patch changes nothing
func (p IndividualWorkPatch) IsEmpty() bool {
	return p.IssueDate == nil && p.Description == nil && p.IssueDeadline == nil && p.CompleteMark == nil
}
