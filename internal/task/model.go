// File: internal/task/model.go
package task

// Task is a to-do item. Owner is the ID of the user who created it; the
// seed tasks loaded at startup carry owner 0 and therefore belong to
// nobody (only admins ever see them).
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`
	Period    string `json:"period"`
	Completed bool   `json:"completed"`
	Owner     int64  `json:"owner"`
}

const (
	TypePersonal = "personal"
	TypeOfficial = "official"

	PeriodDaily  = "daily"
	PeriodWeekly = "weekly"
)

// CreateTaskRequest is the POST /api/tasks payload. All three fields must
// be present and non-empty.
type CreateTaskRequest struct {
	Text   string `json:"text" binding:"required"`
	Type   string `json:"type" binding:"required"`
	Period string `json:"period" binding:"required"`
}

// UpdateTaskRequest is the PUT /api/tasks/:id payload. A missing field
// reads as false, mirroring the original API's loose handling.
type UpdateTaskRequest struct {
	Completed bool `json:"completed"`
}
