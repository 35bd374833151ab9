package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	IsCompleted bool    `json:"is_completed"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	UserID      uint64  `json:"user_id"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	IsCompleted *bool   `json:"is_completed"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	IsCompleted *bool   `json:"is_completed"`
}

type TaskResponse struct {
	Task TaskItem `json:"task"`
}

type TaskMessageResponse struct {
	Message string   `json:"message"`
	Task    TaskItem `json:"task"`
}

type TaskListResponse struct {
	Tasks []TaskItem `json:"tasks"`
	Count int        `json:"count"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
