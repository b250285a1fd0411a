package external_services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	usecasecontract "github.com/samikassu/crewboard/internal/usecase/contract"
)

const (
	geminiBaseURL    = "https://generativelanguage.googleapis.com/v1beta/models"
	geminiTextModel  = "gemini-2.0-flash"
	geminiImageModel = "gemini-2.0-flash-exp-image-generation"
)

// GeminiAIService talks to the Gemini REST API for mentor chat and image
// generation.
type GeminiAIService struct {
	apiKey string
	client *http.Client
}

func NewGeminiAIService(apiKey string) *GeminiAIService {
	return &GeminiAIService{
		apiKey: apiKey,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// make sure GeminiAIService implements the AI service contract
var _ usecasecontract.IAIService = (*GeminiAIService)(nil)

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent    `json:"system_instruction,omitempty"`
	Contents          []geminiContent   `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent sends the system prompt, prior turns and the new message to
// the text model and returns the reply text.
func (g *GeminiAIService) GenerateContent(ctx context.Context, system string, history []usecasecontract.ChatTurn, message string) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		if turn.Role == "model" || turn.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: system}}},
		Contents:          contents,
	}
	resp, err := g.call(ctx, geminiTextModel, reqBody)
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", fmt.Errorf("gemini returned no text candidates")
}

// GenerateImage asks the image model for a rendering of the prompt at the
// given resolution and returns the raw image bytes.
func (g *GeminiAIService) GenerateImage(ctx context.Context, prompt, resolution string) ([]byte, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: fmt.Sprintf("%s (render at %s resolution)", prompt, resolution)}},
		}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}
	resp, err := g.call(ctx, geminiImageModel, reqBody)
	if err != nil {
		return nil, err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				raw, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("failed to decode image payload: %w", err)
				}
				return raw, nil
			}
		}
	}
	return nil, fmt.Errorf("gemini returned no image data")
}

func (g *GeminiAIService) call(ctx context.Context, model string, body geminiRequest) (*geminiResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gemini request: %w", err)
	}
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiBaseURL, model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gemini response: %w", err)
	}
	var resp geminiResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		if resp.Error != nil {
			return nil, fmt.Errorf("gemini API error: %s", resp.Error.Message)
		}
		return nil, fmt.Errorf("gemini API returned status %d", httpResp.StatusCode)
	}
	return &resp, nil
}
