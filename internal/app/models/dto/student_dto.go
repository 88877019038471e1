package dto

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// DiaryEntryRequest is the body of diary create/update
type DiaryEntryRequest struct {
	WorkDate    *string `json:"work_date" binding:"omitempty,datetime=2006-01-02"`
	Description string  `json:"description"`
}

// IndividualWorkRequest is the body of individual work create/update. On update only the
// supplied fields change.
type IndividualWorkRequest struct {
	IssueDate       *string `json:"issue_date" binding:"omitempty,datetime=2006-01-02"`
	WorkDescription *string `json:"work_description"`
	IssueDeadline   *string `json:"issue_deadline" binding:"omitempty,datetime=2006-01-02"`
	CompleteMark    *bool   `json:"complete_mark"`
}
