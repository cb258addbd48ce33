package vision

import (
	"context"

	"inkwash/internal/providers/genai"
)

// DescribeRequest carries an uploaded photo plus the instruction that shapes
// the description.
type DescribeRequest struct {
	Data        []byte
	MIME        string
	Instruction string
	RequestID   string
}

// Describer turns a photo into scene text.
type Describer interface {
	Describe(ctx context.Context, req DescribeRequest) (string, error)
}

// GeminiDescriber adapts the Gemini client to the Describer interface.
type GeminiDescriber struct {
	client *genai.Client
}

func NewGeminiDescriber(client *genai.Client) *GeminiDescriber {
	return &GeminiDescriber{client: client}
}

func (d *GeminiDescriber) Describe(ctx context.Context, req DescribeRequest) (string, error) {
	return d.client.DescribeImage(ctx, genai.DescribeRequest{
		Data:        req.Data,
		MIME:        req.MIME,
		Instruction: req.Instruction,
		RequestID:   req.RequestID,
	})
}

var _ Describer = (*GeminiDescriber)(nil)
