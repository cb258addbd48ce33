package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"inkwash/internal/infra"
)

// Options controls how the Gemini client is configured.
type Options struct {
	APIKey      string
	BaseURL     string
	ImageModel  string
	VisionModel string
	HTTPClient  *http.Client
	Logger      *infra.Logger
}

// Client is a lightweight facade over the Gemini REST API. It exposes the two
// capabilities the service needs: image generation through the Imagen predict
// endpoint and photo description through generateContent.
type Client struct {
	apiKey      string
	baseURL     string
	imageModel  string
	visionModel string
	httpClient  *http.Client
	logger      *infra.Logger
}

// ErrBlocked is returned when the API answered successfully but withheld the
// image, which is how safety filtering surfaces on the predict endpoint.
var ErrBlocked = errors.New("gemini returned no image")

// ErrEmptyDescription is returned when the vision model produced no usable
// text for an uploaded photo.
var ErrEmptyDescription = errors.New("gemini returned an empty description")

// APIError describes a non-2xx response from the Gemini API. Message carries
// the upstream error text verbatim so handlers can surface it unchanged.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gemini status %d", e.StatusCode)
	}
	return fmt.Sprintf("gemini status %d: %s", e.StatusCode, e.Message)
}

// ImageRequest represents the information required to generate one image.
type ImageRequest struct {
	Prompt      string
	AspectRatio string
	OutputMIME  string
	RequestID   string
}

// ImageAsset is the normalized representation returned by the Gemini client.
type ImageAsset struct {
	Data []byte
	MIME string
}

// DescribeRequest carries an uploaded photo to the vision model.
type DescribeRequest struct {
	Data        []byte
	MIME        string
	Instruction string
	RequestID   string
}

type imagenPredictRequest struct {
	Instances  []imagenInstance  `json:"instances"`
	Parameters *imagenParameters `json:"parameters,omitempty"`
}

type imagenInstance struct {
	Prompt string `json:"prompt"`
}

type imagenParameters struct {
	SampleCount    int    `json:"sampleCount,omitempty"`
	AspectRatio    string `json:"aspectRatio,omitempty"`
	OutputMimeType string `json:"outputMimeType,omitempty"`
}

type imagenPredictResponse struct {
	Predictions []imagenPrediction `json:"predictions"`
}

type imagenPrediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded,omitempty"`
	MimeType           string `json:"mimeType,omitempty"`
	RAIFilteredReason  string `json:"raiFilteredReason,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts,omitempty"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiGenerationConfig struct {
	CandidateCount int     `json:"candidateCount,omitempty"`
	Temperature    float64 `json:"temperature,omitempty"`
}

type geminiGenerateContentRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content      geminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

type geminiPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type geminiGenerateContentResponse struct {
	Candidates     []geminiCandidate     `json:"candidates"`
	PromptFeedback *geminiPromptFeedback `json:"promptFeedback,omitempty"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// NewClient constructs a Gemini client with sane defaults. Callers may provide
// a nil HTTP client; a reusable one with a generous timeout will be created.
func NewClient(opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 90 * time.Second}
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}

	imageModel := strings.TrimSpace(opts.ImageModel)
	if imageModel == "" {
		imageModel = "imagen-3.0-generate-002"
	}

	visionModel := strings.TrimSpace(opts.VisionModel)
	if visionModel == "" {
		visionModel = "gemini-2.5-flash"
	}

	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}

	return &Client{
		apiKey:      apiKey,
		baseURL:     baseURL,
		imageModel:  imageModel,
		visionModel: visionModel,
		httpClient:  client,
		logger:      logger,
	}, nil
}

// ImageModel returns the configured image model identifier.
func (c *Client) ImageModel() string {
	return c.imageModel
}

// VisionModel returns the configured vision model identifier.
func (c *Client) VisionModel() string {
	return c.visionModel
}

// GenerateImage renders a single image for the prompt. A successful API
// response that carries no image bytes is reported as ErrBlocked.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (*ImageAsset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload := imagenPredictRequest{
		Instances: []imagenInstance{{Prompt: req.Prompt}},
		Parameters: &imagenParameters{
			SampleCount:    1,
			AspectRatio:    normalizeAspect(req.AspectRatio),
			OutputMimeType: outputMIME(req.OutputMIME),
		},
	}

	var response imagenPredictResponse
	path := fmt.Sprintf("/models/%s:predict", url.PathEscape(c.imageModel))
	if err := c.invokeGemini(ctx, path, payload, &response); err != nil {
		return nil, err
	}

	for _, prediction := range response.Predictions {
		if prediction.BytesBase64Encoded == "" {
			continue
		}
		data, err := base64.StdEncoding.DecodeString(prediction.BytesBase64Encoded)
		if err != nil {
			return nil, fmt.Errorf("decode image payload: %w", err)
		}
		mime := prediction.MimeType
		if mime == "" {
			mime = outputMIME(req.OutputMIME)
		}

		c.logger.Debug().
			Str("request_id", req.RequestID).
			Str("model", c.imageModel).
			Int("bytes", len(data)).
			Msg("genai: generated image")

		return &ImageAsset{Data: data, MIME: mime}, nil
	}

	for _, prediction := range response.Predictions {
		if reason := strings.TrimSpace(prediction.RAIFilteredReason); reason != "" {
			return nil, fmt.Errorf("%w: %s", ErrBlocked, reason)
		}
	}
	return nil, ErrBlocked
}

// DescribeImage asks the vision model for a textual description of the photo.
func (c *Client) DescribeImage(ctx context.Context, req DescribeRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	payload := geminiGenerateContentRequest{
		Contents: []geminiContent{{
			Role: "user",
			Parts: []geminiPart{
				{InlineData: &geminiInlineData{
					MimeType: req.MIME,
					Data:     base64.StdEncoding.EncodeToString(req.Data),
				}},
				{Text: req.Instruction},
			},
		}},
		GenerationConfig: &geminiGenerationConfig{
			CandidateCount: 1,
			Temperature:    0.4,
		},
	}

	var response geminiGenerateContentResponse
	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.visionModel))
	if err := c.invokeGemini(ctx, path, payload, &response); err != nil {
		return "", err
	}

	if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrBlocked, response.PromptFeedback.BlockReason)
	}

	text := extractText(response)
	if text == "" {
		return "", ErrEmptyDescription
	}

	c.logger.Debug().
		Str("request_id", req.RequestID).
		Str("model", c.visionModel).
		Int("chars", len(text)).
		Msg("genai: described image")

	return text, nil
}

func (c *Client) invokeGemini(ctx context.Context, path string, payload any, out any) error {
	endpoint := strings.TrimRight(c.baseURL, "/") + path
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		var apiErr geminiErrorResponse
		if err := json.Unmarshal(data, &apiErr); err == nil && apiErr.Error.Message != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error.Message}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode gemini response: %w", err)
	}
	return nil
}

func extractText(resp geminiGenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if text := strings.TrimSpace(part.Text); text != "" {
				return text
			}
		}
	}
	return ""
}

// normalizeAspect maps arbitrary input onto the ratios the predict endpoint
// accepts, falling back to square.
func normalizeAspect(aspect string) string {
	switch trimmed := strings.TrimSpace(aspect); trimmed {
	case "1:1", "3:4", "4:3", "9:16", "16:9":
		return trimmed
	default:
		return "1:1"
	}
}

// outputMIME maps arbitrary input onto the output encodings the predict
// endpoint accepts, falling back to PNG.
func outputMIME(mime string) string {
	switch strings.ToLower(strings.TrimSpace(mime)) {
	case "image/jpeg", "image/jpg":
		return "image/jpeg"
	default:
		return "image/png"
	}
}
