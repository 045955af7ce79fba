package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/numvision/ocr-number-gate/internal/ocr"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiEngine reads text from images with a Google Gemini vision model.
type GeminiEngine struct {
	apiKey string
	model  string
}

// NewGeminiEngine creates an engine talking to the Gemini API.
func NewGeminiEngine(apiKey, model string) (*GeminiEngine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini engine requires an API key")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiEngine{apiKey: apiKey, model: model}, nil
}

func (e *GeminiEngine) Name() string { return "gemini" }

// Recognize sends the image inline and returns the transcribed text.
func (e *GeminiEngine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(e.apiKey))
	if err != nil {
		return ocr.Result{}, fmt.Errorf("create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(e.model)
	resp, err := model.GenerateContent(ctx,
		genai.ImageData(sniffImageFormat(in.Image), in.Image),
		genai.Text(transcribePrompt),
	)
	if err != nil {
		return ocr.Result{}, fmt.Errorf("gemini generate content: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	if sb.Len() == 0 {
		return ocr.Result{}, fmt.Errorf("gemini returned no text")
	}
	return ocr.Result{Text: cleanResponse(sb.String())}, nil
}
