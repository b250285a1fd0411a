package usecase

import (
	"context"
	"fmt"
	"strings"

	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

const mentorSystemPrompt = "You are a wise mentor and strategist for a small crew of friends. " +
	"You provide helpful, direct, and encouraging advice on coding, fitness, and life. " +
	"Keep it cool, slightly gamified."

type AIUseCase struct {
	aiService usecasecontract.IAIService
}

// check if AIUseCase implements IAIUseCase
var _ usecasecontract.IAIUseCase = (*AIUseCase)(nil)

func NewAIUseCase(aiServ usecasecontract.IAIService) *AIUseCase {
	return &AIUseCase{
		aiService: aiServ,
	}
}

// Chat continues a mentor conversation. Failures surface to the caller;
// there is no retry here.
func (uc *AIUseCase) Chat(ctx context.Context, history []usecasecontract.ChatTurn, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("failed to chat: empty message provided")
	}
	reply, err := uc.aiService.GenerateContent(ctx, mentorSystemPrompt, history, message)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}
	return reply, nil
}

// GenerateImage renders an image for the given prompt at 1K, 2K or 4K.
func (uc *AIUseCase) GenerateImage(ctx context.Context, prompt, resolution string) ([]byte, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("failed to generate image: empty prompt provided")
	}
	switch resolution {
	case "1K", "2K", "4K":
	default:
		return nil, fmt.Errorf("failed to generate image: unsupported resolution %q", resolution)
	}
	image, err := uc.aiService.GenerateImage(ctx, prompt, resolution)
	if err != nil {
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}
	return image, nil
}
