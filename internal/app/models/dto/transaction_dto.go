package dto

// MoveStudentRequest is the body of the move-student transaction
type MoveStudentRequest struct {
	StudentID  int64 `json:"student_id"`
	NewGroupID int64 `json:"new_group_id"`
}

// DeleteStudentRequest is the body of the delete-student transaction
type DeleteStudentRequest struct {
	StudentID int64 `json:"student_id"`
}
