package models

import "time"

// Task statuses.
const (
	TaskStatusActive    = "Active"
	TaskStatusDraft     = "Draft"
	TaskStatusCompleted = "Completed"
)

// Task content types.
const (
	TaskTypeLink  = "link"
	TaskTypeVideo = "video"
	TaskTypePDF   = "pdf"
)

// Task difficulties.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// ValidTaskStatus reports whether status is a known task status.
func ValidTaskStatus(status string) bool {
	return status == TaskStatusActive || status == TaskStatusDraft || status == TaskStatusCompleted
}

// Task is a unit of work assigned to students. StudentID is nil for tasks
// addressed to the whole cohort.
type Task struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Module     string    `json:"module"`
	StudentID  *string   `json:"student,omitempty"`
	Status     string    `json:"status"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Type       string    `json:"type"`
	Content    string    `json:"content,omitempty"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
