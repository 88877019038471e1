package models

// ResultSet is a generic tabular result: one map per row keyed by column name.
type ResultSet struct {
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int64            `json:"rowCount"`
}

// MoveStudentResult describes a committed group transfer
type MoveStudentResult struct {
	StudentID    int64 `json:"student_id"`
	OldGroupID   int64 `json:"old_group_id"`
	NewGroupID   int64 `json:"new_group_id"`
	DiaryEntryID int64 `json:"diary_entry_id"`
}

// DeleteStudentResult describes a committed student purge
type DeleteStudentResult struct {
	StudentID              int64 `json:"student_id"`
	IndividualWorksDeleted int64 `json:"individual_works_deleted"`
	DiaryEntriesDeleted    int64 `json:"diary_entries_deleted"`
}
