package domain

import "time"

type Task struct {
	ID          uint64
	Title       string
	Description string
	DueDate     *time.Time
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	UserID      uint64
}

type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	IsCompleted bool
}

// UpdateTaskInput carries PATCH-style partial updates. Pointer fields are
// only applied when present in the payload; DueDateSet distinguishes
// "clear the deadline" (set, nil DueDate) from "leave it alone" (not set).
type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	DueDateSet  bool
	IsCompleted *bool
}

// TaskFilter narrows list results. A nil Completed means no completion
// filter; an empty Search means no substring filter.
type TaskFilter struct {
	Completed *bool
	Search    string
}
