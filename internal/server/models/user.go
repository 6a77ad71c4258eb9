// Package models defines the persisted DevHub records.
package models

import "time"

// Account roles. Role is carried as a plain string in both the database
// and session tokens.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStudent
}

// CodingHandles are the optional external profile handles. Stored as a
// single jsonb column.
type CodingHandles struct {
	GitHub     string `json:"github"`
	LeetCode   string `json:"leetcode"`
	LinkedIn   string `json:"linkedin"`
	Telegram   string `json:"telegram"`
	Codeforces string `json:"codeforces"`
}

// User is an account record. The password hash is never serialized.
type User struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	PasswordHash  string        `json:"-"`
	Role          string        `json:"role"`
	Title         string        `json:"title"`
	CodingHandles CodingHandles `json:"codingHandles"`
	Attendance    int           `json:"attendance"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
