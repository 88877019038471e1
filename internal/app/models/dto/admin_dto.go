package dto

// LocationRequest is the body of location create/update
type LocationRequest struct {
	Location string `json:"location"`
}

// GroupRequest is the body of group create/update
type GroupRequest struct {
	GroupName string `json:"group_name"`
}

// RoleRequest is the body of role create/update
type RoleRequest struct {
	RoleName string `json:"role_name"`
}

// PositionRequest is the body of position create/update
type PositionRequest struct {
	PositionName   string `json:"position_name"`
	OrganizationID int64  `json:"organization_id" binding:"gte=0"`
}

// SupervisorRequest is the body of supervisor create/update. On update omitted ids keep
// their current value.
type SupervisorRequest struct {
	FullName   string `json:"full_name"`
	PracticeID *int64 `json:"practice_id" binding:"omitempty,gt=0"`
	PositionID *int64 `json:"position_id" binding:"omitempty,gt=0"`
	RoleID     *int64 `json:"role_id" binding:"omitempty,gt=0"`
}
