package mapper

import (
	"time"

	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/dto"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		IsCompleted: task.IsCompleted,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
		UserID:      task.UserID,
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(time.RFC3339)
		item.DueDate = &value
	}

	return item
}
