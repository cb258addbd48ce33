package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"inkwash/internal/i18n"
	"inkwash/internal/middleware"
	"inkwash/internal/providers/genai"
	"inkwash/internal/providers/image"
	"inkwash/internal/stylize"
)

type renderRequest struct {
	Prompt      string `json:"prompt"`
	Style       string `json:"style,omitempty"`
	AspectRatio string `json:"aspect_ratio,omitempty"`
}

type renderResponse struct {
	ImageBase64 string `json:"image_base64"`
	MIMEType    string `json:"mime_type"`
	Filename    string `json:"filename"`
	Prompt      string `json:"prompt"`
	Description string `json:"description,omitempty"`
	Style       string `json:"style"`
	ElapsedMS   int64  `json:"elapsed_ms"`
}

// Renders turns a typed scene into a stylized image. Validation happens
// before any remote call: a blank prompt never reaches the generator.
func (a *App) Renders(w http.ResponseWriter, r *http.Request) {
	locale := middleware.LocaleFromContext(r.Context())

	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", i18n.T(locale, "bad_request"))
		return
	}

	scene := strings.TrimSpace(req.Prompt)
	if scene == "" {
		a.error(w, http.StatusUnprocessableEntity, "empty_prompt", i18n.T(locale, "empty_prompt"))
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
	prompt := stylize.Prompt(style, scene)

	asset, err := a.Generator.Generate(r.Context(), image.RenderRequest{
		Prompt:      prompt,
		AspectRatio: a.aspectRatio(req.AspectRatio),
		OutputMIME:  a.outputMIME(),
		RequestID:   requestID,
	})
	if err != nil {
		a.recordFailure(false, err)
		a.Logger.Error().Err(err).Str("request_id", requestID).Str("style", style.ID).Msg("render failed")
		a.writeUpstreamError(w, locale, err)
		return
	}

	if a.Stats != nil {
		a.Stats.RenderSucceeded()
	}
	a.Logger.Info().
		Str("request_id", requestID).
		Str("style", style.ID).
		Int("bytes", len(asset.Data)).
		Dur("elapsed", time.Since(start)).
		Msg("render complete")

	a.json(w, http.StatusCreated, renderResponse{
		ImageBase64: base64.StdEncoding.EncodeToString(asset.Data),
		MIMEType:    asset.MIME,
		Filename:    stylize.Filename(scene, asset.MIME),
		Prompt:      prompt,
		Style:       style.ID,
		ElapsedMS:   time.Since(start).Milliseconds(),
	})
}

// resolveStyle maps the optional request style onto the registry, falling
// back to the deployment default when the field is blank.
func (a *App) resolveStyle(id string) (stylize.Style, bool) {
	if strings.TrimSpace(id) == "" {
		if a.Config != nil {
			if style, ok := stylize.Lookup(a.Config.StyleDefault); ok {
				return style, true
			}
		}
		return stylize.Lookup("inkwash")
	}
	return stylize.Lookup(id)
}

func (a *App) aspectRatio(requested string) string {
	if strings.TrimSpace(requested) != "" {
		return requested
	}
	if a.Config != nil {
		return a.Config.AspectRatio
	}
	return ""
}

func (a *App) outputMIME() string {
	if a.Config != nil {
		return a.Config.OutputMIME
	}
	return ""
}

// recordFailure books the failed attempt, keeping blocked results visible as
// their own series.
func (a *App) recordFailure(transform bool, err error) {
	if a.Stats == nil {
		return
	}
	if errors.Is(err, genai.ErrBlocked) {
		a.Stats.Blocked()
	}
	if transform {
		a.Stats.TransformFailed()
	} else {
		a.Stats.RenderFailed()
	}
}

// writeUpstreamError translates provider failures into the error envelope.
// Messages reported by the remote service pass through verbatim; transport
// errors get a generic message and stay in the log.
func (a *App) writeUpstreamError(w http.ResponseWriter, locale string, err error) {
	switch {
	case errors.Is(err, genai.ErrBlocked):
		a.error(w, http.StatusUnprocessableEntity, "blocked", i18n.T(locale, "blocked"))
	case errors.Is(err, genai.ErrEmptyDescription):
		a.error(w, http.StatusBadGateway, "empty_description", i18n.T(locale, "empty_description"))
	default:
		var apiErr *genai.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			a.error(w, http.StatusBadGateway, "upstream_error", apiErr.Message)
			return
		}
		a.error(w, http.StatusBadGateway, "upstream_error", i18n.T(locale, "upstream_error"))
	}
}
