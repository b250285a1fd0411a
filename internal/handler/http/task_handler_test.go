package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/samikassu/crewboard/internal/domain/entity"
	handler "github.com/samikassu/crewboard/internal/handler/http"
	"github.com/samikassu/crewboard/internal/handler/http/dto"
	"github.com/samikassu/crewboard/internal/handler/http/mocks"
	"github.com/samikassu/crewboard/internal/ledger"
	"github.com/samikassu/crewboard/internal/usecase"
)

func TestCreateTaskForwardsDraft(t *testing.T) {
	var got ledger.TaskDraft
	mockUsecase := &mocks.MockSessionUsecase{
		CreateTaskFn: func(ctx context.Context, sessionID string, draft ledger.TaskDraft) (*entity.Task, error) {
			got = draft
			return &entity.Task{ID: "t1", Title: draft.Title, Points: draft.Points}, nil
		},
	}
	h := handler.NewTaskHandler(mockUsecase)
	r := gin.Default()
	r.POST("/tasks", withSession("s1"), h.CreateTask)

	body, _ := json.Marshal(dto.CreateTaskRequest{
		Title:       "Gym week",
		Points:      200,
		Type:        "WEEKLY",
		Category:    "FITNESS",
		IsGroupTask: true,
	})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Gym week", got.Title)
	assert.Equal(t, entity.TaskTypeWeekly, got.Type)
	assert.Equal(t, entity.TaskCategoryFitness, got.Category)
	assert.True(t, got.IsGroupTask)
}

func TestCreateTaskByMemberIsForbidden(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		CreateTaskFn: func(ctx context.Context, sessionID string, draft ledger.TaskDraft) (*entity.Task, error) {
			return nil, usecase.ErrNotAuthorized
		},
	}
	h := handler.NewTaskHandler(mockUsecase)
	r := gin.Default()
	r.POST("/tasks", withSession("s1"), h.CreateTask)

	body, _ := json.Marshal(dto.CreateTaskRequest{Title: "nope", Points: 10, Type: "WEEKLY", Category: "OTHER"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tasks", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestClaimTaskReportsRepeatAsNotApplied(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		ClaimTaskFn: func(ctx context.Context, sessionID, taskID string) (*ledger.ClaimResult, error) {
			assert.Equal(t, "t1", taskID)
			return &ledger.ClaimResult{Applied: false}, nil
		},
	}
	h := handler.NewTaskHandler(mockUsecase)
	r := gin.Default()
	r.POST("/tasks/:taskID/claim", withSession("s1"), h.ClaimTask)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tasks/t1/claim", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ClaimTaskResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Applied)
	assert.Zero(t, resp.PointsAwarded)
}

func TestClaimTaskOnStaleSessionIsUnavailable(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		ClaimTaskFn: func(ctx context.Context, sessionID, taskID string) (*ledger.ClaimResult, error) {
			return nil, usecase.ErrSyncFailure
		},
	}
	h := handler.NewTaskHandler(mockUsecase)
	r := gin.Default()
	r.POST("/tasks/:taskID/claim", withSession("s1"), h.ClaimTask)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/tasks/t1/claim", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
