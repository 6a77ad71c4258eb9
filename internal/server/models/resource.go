package models

import "time"

// Resource content types.
const (
	ResourceTypeVideo = "video"
	ResourceTypePDF   = "pdf"
	ResourceTypeLink  = "link"
)

// Resource progress statuses, tracked per resource by students.
const (
	ResourceStatusNotStarted = "Not Started"
	ResourceStatusInProgress = "In-Progress"
	ResourceStatusDone       = "Done"
	ResourceStatusNeedHelp   = "Need-Help"
)

// ValidResourceType reports whether t is a known resource type.
func ValidResourceType(t string) bool {
	return t == ResourceTypeVideo || t == ResourceTypePDF || t == ResourceTypeLink
}

// ValidResourceStatus reports whether status is a known resource status.
func ValidResourceStatus(status string) bool {
	switch status {
	case ResourceStatusNotStarted, ResourceStatusInProgress, ResourceStatusDone, ResourceStatusNeedHelp:
		return true
	}
	return false
}

// Resource is a learning material shared with students.
type Resource struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Type        string    `json:"type"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
