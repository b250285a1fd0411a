package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samikassu/crewboard/internal/handler/http/dto"
	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

type AIHandler struct {
	aiUsecase usecasecontract.IAIUseCase
}

func NewAIHandler(aiUsecase usecasecontract.IAIUseCase) *AIHandler {
	return &AIHandler{
		aiUsecase: aiUsecase,
	}
}

// HandleChat forwards a mentor chat turn to the model.
func (h *AIHandler) HandleChat(c *gin.Context) {
	var req dto.ChatRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	reply, err := h.aiUsecase.Chat(c.Request.Context(), req.History, req.Message)
	if err != nil {
		ErrorHandler(c, http.StatusBadGateway, "Mentor is unavailable right now")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ChatResponse{Reply: reply})
}

// HandleGenerateImage renders an image for the prompt and streams it back as PNG.
func (h *AIHandler) HandleGenerateImage(c *gin.Context) {
	var req dto.GenerateImageRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	image, err := h.aiUsecase.GenerateImage(c.Request.Context(), req.Prompt, req.Resolution)
	if err != nil {
		ErrorHandler(c, http.StatusBadGateway, "Image generation failed")
		return
	}
	c.Data(http.StatusOK, "image/png", image)
}
