package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/dto"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrMissingTitle       = errors.New("title is required")
	ErrInvalidDueDate     = errors.New("invalid due date format")
)

// dueDateLayouts accepts RFC3339 (trailing Z included) plus the naive
// date-time and date forms clients commonly send.
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrMissingTitle
	}

	description := ""
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
	}

	isCompleted := false
	if req.IsCompleted != nil {
		isCompleted = *req.IsCompleted
	}

	var dueDate *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		parsed, err := parseDueDate(*req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidDueDate
		}
		dueDate = &parsed
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		IsCompleted: isCompleted,
	}, nil
}

// BuildUpdateTaskInput applies PATCH semantics: only fields present in the
// raw payload are carried over. An empty object is a valid no-op update.
// id, created_at and user_id keys are ignored outright, never errored.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		// An empty trimmed title is allowed here, unlike on create.
		value := strings.TrimSpace(*req.Title)
		input.Title = &value
	}

	if hasJSONField(raw, "description") {
		value := ""
		if req.Description != nil {
			value = strings.TrimSpace(*req.Description)
		}
		input.Description = &value
	}

	if hasJSONField(raw, "due_date") {
		input.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
			}
			// Empty string clears the deadline, same as null.
			if *req.DueDate != "" {
				parsed, err := parseDueDate(*req.DueDate)
				if err != nil {
					return domain.UpdateTaskInput{}, ErrInvalidDueDate
				}
				input.DueDate = &parsed
			}
		}
	}

	if hasJSONField(raw, "is_completed") {
		if req.IsCompleted == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.IsCompleted = req.IsCompleted
	}

	return input, nil
}

func parseDueDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
