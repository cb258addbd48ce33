package image

import (
	"context"

	"inkwash/internal/providers/genai"
)

// RenderRequest carries a fully built prompt to the image backend. Prompt
// assembly happens upstream so the generator stays a thin transport adapter.
type RenderRequest struct {
	Prompt      string
	AspectRatio string
	OutputMIME  string
	RequestID   string
}

// Asset is one generated image.
type Asset struct {
	Data []byte
	MIME string
}

// Generator renders a single image for a prompt.
type Generator interface {
	Generate(ctx context.Context, req RenderRequest) (*Asset, error)
}

// GeminiGenerator adapts the Gemini client to the Generator interface.
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(client *genai.Client) *GeminiGenerator {
	return &GeminiGenerator{client: client}
}

func (g *GeminiGenerator) Generate(ctx context.Context, req RenderRequest) (*Asset, error) {
	asset, err := g.client.GenerateImage(ctx, genai.ImageRequest{
		Prompt:      req.Prompt,
		AspectRatio: req.AspectRatio,
		OutputMIME:  req.OutputMIME,
		RequestID:   req.RequestID,
	})
	if err != nil {
		return nil, err
	}
	return &Asset{Data: asset.Data, MIME: asset.MIME}, nil
}

var _ Generator = (*GeminiGenerator)(nil)
