package usecasecontract

import "context"

// ChatTurn is one prior exchange in a mentor chat.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// IAIUseCase is the generative-AI collaborator surface. Both operations may
// fail; the core only surfaces the failure, it does not retry.
type IAIUseCase interface {
	Chat(ctx context.Context, history []ChatTurn, message string) (string, error)
	GenerateImage(ctx context.Context, prompt, resolution string) ([]byte, error)
}

// IAIService is the raw model-API client behind IAIUseCase.
type IAIService interface {
	GenerateContent(ctx context.Context, system string, history []ChatTurn, message string) (string, error)
	GenerateImage(ctx context.Context, prompt, resolution string) ([]byte, error)
}
