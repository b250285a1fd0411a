package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samikassu/crewboard/internal/domain/entity"
	"github.com/samikassu/crewboard/internal/handler/http/dto"
	"github.com/samikassu/crewboard/internal/ledger"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

type TaskHandler struct {
	sessionUsecase usecasecontract.ISessionUseCase
}

func NewTaskHandler(sessionUsecase usecasecontract.ISessionUseCase) *TaskHandler {
	return &TaskHandler{
		sessionUsecase: sessionUsecase,
	}
}

// ListTasks returns the full task board, newest first.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	tasks, err := h.sessionUsecase.ListTasks(c.Request.Context(), sessionID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, tasks)
}

// CreateTask creates a new task. Admin only.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	draft := ledger.TaskDraft{
		Title:       req.Title,
		Description: req.Description,
		Points:      req.Points,
		Type:        entity.TaskType(req.Type),
		Category:    entity.TaskCategory(req.Category),
		IsGroupTask: req.IsGroupTask,
		ExpiresAt:   req.ExpiresAt,
	}
	task, err := h.sessionUsecase.CreateTask(c.Request.Context(), sessionID, draft)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, task)
}

// ClaimTask records completion and collects the reward. A repeat claim is
// reported as not applied rather than as an error.
func (h *TaskHandler) ClaimTask(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	taskID := c.Param("taskID")
	result, err := h.sessionUsecase.ClaimTask(c.Request.Context(), sessionID, taskID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ClaimTaskResponse{
		Applied:       result.Applied,
		PointsAwarded: result.PointsAwarded,
	})
}
