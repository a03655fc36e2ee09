// Package http provides http transport for covers
package http

import (
	"fmt"
	stdhttp "net/http"

	"podium/internal/modkit/httpkit"
	phttp "podium/internal/platform/net/http"
	"podium/internal/platform/net/http/bind"
	"podium/internal/services/api/covers/domain"
	svc "podium/internal/services/api/covers/service"
)

// Register mounts covers endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/presets", h.presets)
	r.Post("/render", h.render)
	r.Get("/{ref}", h.asset)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /covers/presets Covers coversPresets
// @Summary Venue and palette options for the cover styler
// @Tags Covers
// @Produce json
// @Success 200 {object} domain.Presets "ok"
// @Router /covers/presets [get]
func (h *handlers) presets(r *stdhttp.Request) (any, error) {
	return h.svc.Presets(r.Context())
}

// swagger:route POST /covers/render Covers coversRender
// @Summary Render a styled cover as PNG
// @Tags Covers
// @Accept json
// @Produce image/png
// @Success 200 {string} binary "png bytes, X-Cover-Ref carries the stored ref"
// @Failure 503 {object} phttp.Envelope "renderer disabled or unavailable"
// @Router /covers/render [post]
func (h *handlers) render(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := bind.ParseJSON[domain.StyleInput](r)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	out, err := h.svc.Render(r.Context(), in)
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Cover-Ref", out.Ref)
	_, _ = w.Write(out.PNG)
}

// swagger:route GET /covers/{ref} Covers coversAsset
// @Summary Serve a stored cover asset
// @Tags Covers
// @Produce image/webp
// @Success 200 {string} binary "image bytes"
// @Failure 404 {object} phttp.Envelope "unknown ref"
// @Router /covers/{ref} [get]
func (h *handlers) asset(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	a, err := h.svc.Asset(r.Context(), httpkit.Param(r, "ref"))
	if err != nil {
		phttp.RespondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(a.Data)))
	_, _ = w.Write(a.Data)
}
