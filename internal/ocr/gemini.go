// Package ocr provides recognizer implementations for the extraction
// fallback. The only production implementation recognizes page rasters
// through Gemini's multimodal input.
package ocr

import (
	"context"
	"errors"
	"strings"

	genai "google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Gemini recognizes text in page images via the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini builds a Gemini-backed recognizer. model may be empty for the
// default.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing API key")
	}
	if model == "" {
		model = defaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &Gemini{client: c, model: model}, nil
}

// Recognize transcribes the visible text of one PNG page raster. It
// returns "" when the model reports no legible text.
func (g *Gemini) Recognize(ctx context.Context, pngImage []byte, lang string) (string, error) {
	instruction := "Transcribe ALL visible text in this page image, in reading order. " +
		"Return plain text only, no commentary. If the page has no legible text, return an empty response."
	if lang != "" {
		instruction += " The text is primarily in language code: " + lang + "."
	}
	content := &genai.Content{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: instruction},
			{InlineData: &genai.Blob{MIMEType: "image/png", Data: pngImage}},
		},
	}
	res, err := g.client.Models.GenerateContent(ctx, g.model, []*genai.Content{content}, nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Text()), nil
}
