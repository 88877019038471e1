package models

import "time"

// Location defines a practice site ('practice_location' table)
type Location struct {
	ID       int64  `json:"location_id" db:"location_id"`
	Location string `json:"location" db:"location"`
}

// Group defines a student cohort ('student_groups' table)
type Group struct {
	ID   int64  `json:"group_id" db:"group_id"`
	Name string `json:"group_name" db:"group_name"`
}

// Role defines a supervisory role ('roles' table)
type Role struct {
	ID   int64  `json:"role_id" db:"role_id"`
	Name string `json:"role_name" db:"role_name"`
}

// Organization defines an external practice organization ('practice_organization' table)
type Organization struct {
	ID   int64  `json:"organization_id" db:"organization_id"`
	Name string `json:"organization_name" db:"organization_name"`
}

// Position defines a role within an organization ('user_position' table)
type Position struct {
	ID               int64  `json:"position_id" db:"position_id"`
	Name             string `json:"position_name" db:"position_name"`
	OrganizationID   int64  `json:"organization_id" db:"organization_id"`
	OrganizationName string `json:"organization_name,omitempty" db:"-"`
}

// Practice defines a practicum interval at one location ('practice' table)
type Practice struct {
	ID         int64     `json:"practice_id" db:"practice_id"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
	LocationID int64     `json:"location_id" db:"location_id"`
}

// Supervisor defines a practice supervisor ('supervisor' table)
type Supervisor struct {
	ID         int64  `json:"supervisor_id" db:"supervisor_id"`
	FullName   string `json:"full_name" db:"full_name"`
	PracticeID int64  `json:"practice_id" db:"practice_id"`
	PositionID int64  `json:"position_id" db:"position_id"`
	RoleID     int64  `json:"role_id" db:"role_id"`
}

// SupervisorDetails is a supervisor joined with its practice, role, position and organization
type SupervisorDetails struct {
	Supervisor
	PracticeStart    time.Time `json:"practice_start"`
	PracticeEnd      time.Time `json:"practice_end"`
	RoleName         string    `json:"role_name"`
	PositionName     string    `json:"position_name"`
	OrganizationName string    `json:"organization_name"`
}

// SupervisorPatch carries the foreign keys an update may change; nil keeps the current value.
type SupervisorPatch struct {
	FullName   string
	PracticeID *int64
	PositionID *int64
	RoleID     *int64
}
