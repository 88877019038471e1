package models

// User defines the user model based on the 'users' table
type User struct {
	ID       int64  `json:"id" db:"user_id" example:"1"`
	Username string `json:"username" db:"username" example:"ivanov"`
	Password string `json:"-" db:"password"` // bcrypt hash, never serialized
	FullName string `json:"fullName" db:"full_name" example:"Ivan Ivanov"`
	IsAdmin  bool   `json:"isAdmin" db:"-"`
}
