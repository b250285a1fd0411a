package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samikassu/crewboard/internal/handler/http/dto"
	"github.com/samikassu/crewboard/internal/ledger"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

type QuestionHandler struct {
	sessionUsecase usecasecontract.ISessionUseCase
}

func NewQuestionHandler(sessionUsecase usecasecontract.ISessionUseCase) *QuestionHandler {
	return &QuestionHandler{
		sessionUsecase: sessionUsecase,
	}
}

// ListQuestions returns the council board, newest first.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	questions, err := h.sessionUsecase.ListQuestions(c.Request.Context(), sessionID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, questions)
}

// PostQuestion creates a question. A member post opens as an interest check;
// an admin post goes straight to the council.
func (h *QuestionHandler) PostQuestion(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	var req dto.PostQuestionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	question, err := h.sessionUsecase.PostQuestion(c.Request.Context(), sessionID, req.Title, req.Content)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, question)
}

// VoteQuestion casts one up or down vote. The response reports whether the
// vote stuck and whether it tipped the question into a drop.
func (h *QuestionHandler) VoteQuestion(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	var req dto.VoteQuestionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	questionID := c.Param("questionID")
	result, err := h.sessionUsecase.VoteQuestion(c.Request.Context(), sessionID, questionID, ledger.VoteDirection(req.Direction))
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.VoteQuestionResponse{
		Applied:        result.Applied,
		Dropped:        result.Dropped,
		PenaltyApplied: result.PenaltyApplied,
	})
}

// AddSolution proposes an answer under an open question.
func (h *QuestionHandler) AddSolution(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	var req dto.AddSolutionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	questionID := c.Param("questionID")
	solution, err := h.sessionUsecase.AddSolution(c.Request.Context(), sessionID, questionID, req.Content)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	if solution == nil {
		MessageHandler(c, http.StatusOK, "Question is not accepting solutions")
		return
	}
	SuccessHandler(c, http.StatusCreated, solution)
}

// VoteSolution casts the caller's single solution vote for this question.
func (h *QuestionHandler) VoteSolution(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	questionID := c.Param("questionID")
	solutionID := c.Param("solutionID")
	applied, err := h.sessionUsecase.VoteSolution(c.Request.Context(), sessionID, questionID, solutionID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"applied": applied})
}

// MarkBestAnswer marks the winning solution and awards its author a bonus. Admin only.
func (h *QuestionHandler) MarkBestAnswer(c *gin.Context) {
	sessionID, ok := SessionIDFromContext(c)
	if !ok {
		return
	}

	questionID := c.Param("questionID")
	solutionID := c.Param("solutionID")
	applied, err := h.sessionUsecase.MarkBestAnswer(c.Request.Context(), sessionID, questionID, solutionID)
	if err != nil {
		UsecaseErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"applied": applied})
}
