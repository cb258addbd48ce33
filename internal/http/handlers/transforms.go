package handlers

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"inkwash/internal/i18n"
	"inkwash/internal/middleware"
	"inkwash/internal/providers/image"
	"inkwash/internal/providers/vision"
	"inkwash/internal/stylize"
)

type transformRequest struct {
	ImageBase64 string `json:"image_base64"`
	MIMEType    string `json:"mime_type,omitempty"`
	SourceName  string `json:"source_name,omitempty"`
	Style       string `json:"style,omitempty"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
}

// Transforms reimagines an uploaded photo. The photo is first described by
// the vision model; the description then runs through the same style template
// and generator as a typed scene. An empty description aborts the render.
func (a *App) Transforms(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())

	var req transformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", i18n.T(locale, "bad_request"))
		return
	}

	payload := strings.TrimSpace(req.ImageBase64)
	if payload == "" {
		a.error(w, http.StatusUnprocessableEntity, "empty_image", i18n.T(locale, "empty_image"))
		return
	}

	data, mime, err := decodeImagePayload(payload, req.MIMEType)
	if err != nil {
		a.error(w, http.StatusBadRequest, "invalid_image", i18n.T(locale, "invalid_image"))
		return
	}
	if a.Config != nil && a.Config.MaxImageBytes > 0 && int64(len(data)) > a.Config.MaxImageBytes {
		a.error(w, http.StatusRequestEntityTooLarge, "image_too_large", i18n.T(locale, "image_too_large"))
		return
	}

	style, ok := a.resolveStyle(req.Style)
	if !ok {
		a.error(w, http.StatusUnprocessableEntity, "unsupported_style", i18n.T(locale, "unsupported_style"))
		return
	}

	if !a.acquireRender() {
		a.error(w, http.StatusServiceUnavailable, "busy", i18n.T(locale, "busy"))
		return
	}
	defer a.releaseRender()

	requestID := middleware.RequestIDFromContext(r.Context())
	start := time.Now()

	description, err := a.Describer.Describe(r.Context(), vision.DescribeRequest{
		Data:        data,
		MIME:        mime,
		Instruction: stylize.DescribeInstruction,
		RequestID:   requestID,
	})
	if err != nil {
		a.recordFailure(true, err)
		a.Logger.Error().Err(err).Str("request_id", requestID).Msg("describe failed")
		a.writeUpstreamError(w, locale, err)
		return
	}

	prompt := stylize.Prompt(style, description)
	asset, err := a.Generator.Generate(r.Context(), image.RenderRequest{
		Prompt:      prompt,
		AspectRatio: a.aspectRatio(req.AspectRatio),
		OutputMIME:  a.outputMIME(),
		RequestID:   requestID,
	})
	if err != nil {
		a.recordFailure(true, err)
		a.Logger.Error().Err(err).Str("request_id", requestID).Str("style", style.ID).Msg("transform failed")
		a.writeUpstreamError(w, locale, err)
		return
	}

	if a.Stats != nil {
		a.Stats.TransformSucceeded()
	}
	a.Logger.Info().
		Str("request_id", requestID).
		Str("style", style.ID).
		Int("bytes", len(asset.Data)).
		Dur("elapsed", time.Since(start)).
		Msg("transform complete")

	seed := strings.TrimSpace(req.SourceName)
	if seed == "" {
		seed = description
	}

	a.json(w, http.StatusCreated, renderResponse{
		ImageBase64: base64.StdEncoding.EncodeToString(asset.Data),
		MIMEType:    asset.MIME,
		Filename:    stylize.Filename(seed, asset.MIME),
		Prompt:      prompt,
		Description: description,
		Style:       style.ID,
		ElapsedMS:   time.Since(start).Milliseconds(),
	})
}

// decodeImagePayload accepts raw base64 or a data URL and returns the bytes
// plus a best-effort MIME type. The declared type wins, then the data URL
// header, then content sniffing.
func decodeImagePayload(payload, declaredMIME string) ([]byte, string, error) {
	mime := strings.TrimSpace(declaredMIME)
	if strings.HasPrefix(payload, "data:") {
		rest := payload[len("data:"):]
		idx := strings.Index(rest, ",")
		if idx < 0 {
			return nil, "", fmt.Errorf("malformed data url")
		}
		meta := rest[:idx]
		payload = rest[idx+1:]
		if semi := strings.Index(meta, ";"); semi >= 0 {
			meta = meta[:semi]
		}
		if mime == "" && meta != "" {
			mime = meta
		}
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	if mime == "" {
		mime = http.DetectContentType(data)
	}
	return data, mime, nil
}
