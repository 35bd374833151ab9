package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/dto"
	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/mapper"
	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/middleware"
	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/validation"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/ports"
	"github.com/WinchoCode/Qpurpuse-API/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
		)
		return
	}

	filter := domain.TaskFilter{Search: c.Query("search")}

	switch strings.ToLower(c.Query("completed")) {
	case "true":
		completed := true
		filter.Completed = &completed
	case "false":
		completed := false
		filter.Completed = &completed
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), ownerID, filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	items := mapper.ToTaskItems(tasks)
	c.JSON(http.StatusOK, dto.TaskListResponse{Tasks: items, Count: len(items)})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
		)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	var req dto.CreateTaskRequest
	raw, err := validation.DecodeJSON(body, &req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, taskValidationKey(err), lang),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), ownerID, input)
	if err != nil {
		zap.L().Error("failed to create task", zap.Uint64("owner_id", ownerID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskMessageResponse{
		Message: "Task created successfully",
		Task:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
		)
		return
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), ownerID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{Task: mapper.ToTaskItem(task)})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
		)
		return
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := validation.DecodeJSON(body, &req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, taskValidationKey(err), lang),
		)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), ownerID, taskID, input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.TaskMessageResponse{
		Message: "Task updated successfully",
		Task:    mapper.ToTaskItem(task),
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
		)
		return
	}

	taskID, err := parseTaskID(c)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), ownerID, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Task deleted successfully"})
}

func parseTaskID(c *gin.Context) (uint64, error) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		return 0, errors.New("invalid task id")
	}
	return taskID, nil
}

func taskValidationKey(err error) string {
	switch {
	case errors.Is(err, validation.ErrMissingTitle):
		return apierrors.MsgMissingTitle
	case errors.Is(err, validation.ErrInvalidDueDate):
		return apierrors.MsgInvalidDueDate
	default:
		return apierrors.MsgInvalidTaskPayload
	}
}
