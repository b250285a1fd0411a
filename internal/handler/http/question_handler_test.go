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
)

func TestVoteQuestionReportsDrop(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		VoteQuestionFn: func(ctx context.Context, sessionID, questionID string, direction ledger.VoteDirection) (*ledger.VoteResult, error) {
			assert.Equal(t, "q1", questionID)
			assert.Equal(t, ledger.VoteDown, direction)
			return &ledger.VoteResult{Applied: true, Dropped: true, PenaltyApplied: true}, nil
		},
	}
	h := handler.NewQuestionHandler(mockUsecase)
	r := gin.Default()
	r.POST("/questions/:questionID/vote", withSession("s1"), h.VoteQuestion)

	body, _ := json.Marshal(dto.VoteQuestionRequest{Direction: "down"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/questions/q1/vote", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.VoteQuestionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Applied)
	assert.True(t, resp.Dropped)
	assert.True(t, resp.PenaltyApplied)
}

func TestVoteQuestionInvalidDirectionIsBadRequest(t *testing.T) {
	h := handler.NewQuestionHandler(&mocks.MockSessionUsecase{})
	r := gin.Default()
	r.POST("/questions/:questionID/vote", withSession("s1"), h.VoteQuestion)

	body, _ := json.Marshal(dto.VoteQuestionRequest{Direction: "sideways"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/questions/q1/vote", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddSolutionOnClosedQuestionIsReported(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		AddSolutionFn: func(ctx context.Context, sessionID, questionID, content string) (*entity.Solution, error) {
			return nil, nil
		},
	}
	h := handler.NewQuestionHandler(mockUsecase)
	r := gin.Default()
	r.POST("/questions/:questionID/solutions", withSession("s1"), h.AddSolution)

	body, _ := json.Marshal(dto.AddSolutionRequest{Content: "idea"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/questions/q1/solutions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "not accepting solutions")
}

func TestMarkBestAnswer(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		MarkBestAnswerFn: func(ctx context.Context, sessionID, questionID, solutionID string) (bool, error) {
			assert.Equal(t, "q1", questionID)
			assert.Equal(t, "s9", solutionID)
			return true, nil
		},
	}
	h := handler.NewQuestionHandler(mockUsecase)
	r := gin.Default()
	r.POST("/questions/:questionID/solutions/:solutionID/best", withSession("s1"), h.MarkBestAnswer)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/questions/q1/solutions/s9/best", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"applied":true`)
}

func TestPostQuestion(t *testing.T) {
	mockUsecase := &mocks.MockSessionUsecase{
		PostQuestionFn: func(ctx context.Context, sessionID, title, content string) (*entity.Question, error) {
			return &entity.Question{ID: "q1", Title: title, IsInterestCheck: true}, nil
		},
	}
	h := handler.NewQuestionHandler(mockUsecase)
	r := gin.Default()
	r.POST("/questions", withSession("s1"), h.PostQuestion)

	body, _ := json.Marshal(dto.PostQuestionRequest{Title: "Movie night?"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/questions", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"is_interest_check":true`)
}
