package ai

import (
	"context"
	"encoding/base64"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/numvision/ocr-number-gate/internal/ocr"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIEngine reads text from images with an OpenAI chat vision model.
type OpenAIEngine struct {
	client *openai.Client
	model  string
}

// NewOpenAIEngine creates an engine talking to the OpenAI API. baseURL
// overrides the endpoint for OpenAI-compatible servers and may be empty.
func NewOpenAIEngine(apiKey, model, baseURL string) (*OpenAIEngine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai engine requires an API key")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIEngine{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

func (e *OpenAIEngine) Name() string { return "openai" }

// Recognize sends the image as a data URL and returns the transcribed text.
func (e *OpenAIEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	dataURL := fmt.Sprintf("data:image/%s;base64,%s",
		sniffImageFormat(in.Image), base64.StdEncoding.EncodeToString(in.Image))

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     e.model,
		MaxTokens: 64,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: transcribePrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    dataURL,
							Detail: openai.ImageURLDetailAuto,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return ocr.Result{}, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return ocr.Result{}, fmt.Errorf("openai returned no choices")
	}
	return ocr.Result{Text: cleanResponse(resp.Choices[0].Message.Content)}, nil
}
