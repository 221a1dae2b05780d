package models

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleDojang UserRole = "dojang"
)

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	Role         UserRole  `json:"role" db:"role"`
	DojangID     *int      `json:"dojang_id,omitempty" db:"dojang_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
