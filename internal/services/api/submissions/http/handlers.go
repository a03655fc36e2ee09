// Package http provides http transport for submissions
package http

import (
	"io"
	"mime/multipart"
	stdhttp "net/http"
	"strings"

	"podium/internal/modkit/httpkit"
	perr "podium/internal/platform/errors"
	ptime "podium/internal/platform/time"
	"podium/internal/services/api/submissions/domain"
	svc "podium/internal/services/api/submissions/service"
)

// Register mounts submissions endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	r.Post("/", httpkit.Handle(h.create))
	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)
	httpkit.PostJSON[domain.ApproveInput](r, "/{id}/approve", h.approve)
	httpkit.Post(r, "/{id}/reject", h.reject)
}

type handlers struct{ svc svc.Service }

// maxFormMemory bounds in-memory multipart buffering; larger parts spill to disk
const maxFormMemory = 8 << 20

// swagger:route POST /submissions Submissions submissionsCreate
// @Summary Submit a talk proposal
// @Tags Submissions
// @Accept multipart/form-data
// @Produce json
// @Success 201 {object} domain.Submission "created"
// @Failure 400 {object} phttp.Envelope "validation failure"
// @Router /submissions [post]
func (h *handlers) create(r *stdhttp.Request) httpkit.Response {
	in, cover, err := parseCreateForm(r)
	if err != nil {
		return httpkit.Error(err)
	}
	out, err := h.svc.Create(r.Context(), in, cover)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Created(out)
}

// swagger:route GET /submissions Submissions submissionsList
// @Summary List submissions, optionally filtered to one calendar date
// @Tags Submissions
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {array} domain.Submission "ok"
// @Router /submissions [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		return h.svc.List(r.Context())
	}
	day, err := ptime.ParseDate(raw)
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("invalid date %q, want YYYY-MM-DD", raw), "date")
	}
	return h.svc.ListByDate(r.Context(), day)
}

// swagger:route GET /submissions/{id} Submissions submissionsGet
// @Summary Fetch a single submission
// @Tags Submissions
// @Produce json
// @Success 200 {object} domain.Submission "ok"
// @Failure 404 {object} phttp.Envelope "unknown id"
// @Router /submissions/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}

// swagger:route POST /submissions/{id}/approve Submissions submissionsApprove
// @Summary Approve a pending submission at a ranked preference
// @Tags Submissions
// @Accept json
// @Produce json
// @Success 200 {object} domain.Submission "ok"
// @Failure 409 {object} phttp.Envelope "not pending"
// @Router /submissions/{id}/approve [post]
func (h *handlers) approve(r *stdhttp.Request, in domain.ApproveInput) (any, error) {
	return h.svc.Approve(r.Context(), httpkit.Param(r, "id"), in)
}

// swagger:route POST /submissions/{id}/reject Submissions submissionsReject
// @Summary Reject a pending submission
// @Tags Submissions
// @Produce json
// @Success 200 {object} domain.Submission "ok"
// @Failure 409 {object} phttp.Envelope "not pending"
// @Router /submissions/{id}/reject [post]
func (h *handlers) reject(r *stdhttp.Request) (any, error) {
	return h.svc.Reject(r.Context(), httpkit.Param(r, "id"))
}

// parseCreateForm maps the multipart form onto CreateInput plus the raw image
func parseCreateForm(r *stdhttp.Request) (domain.CreateInput, domain.CoverUpload, error) {
	var in domain.CreateInput
	var cover domain.CoverUpload

	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return in, cover, perr.InvalidArgf("expected multipart form: %v", err)
	}

	in.SpeakerName = r.FormValue("speaker_name")
	in.SpeakerPosition = r.FormValue("speaker_position")
	in.Phone = r.FormValue("phone")
	in.Title = r.FormValue("title")
	in.Description = r.FormValue("description")
	in.TalkType = r.FormValue("talk_type")
	in.Keywords = formValues(r.MultipartForm, "keywords")
	in.Preferences = formValues(r.MultipartForm, "preferences")
	in.AgreeToTerms = r.FormValue("agree_to_terms") == "true"

	f, fh, err := r.FormFile("cover_image")
	if err != nil {
		return in, cover, perr.WithField(perr.InvalidArgf("cover image is required"), "cover_image")
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, domain.MaxCoverBytes+1))
	if err != nil {
		return in, cover, perr.InvalidArgf("reading cover image: %v", err)
	}
	cover = domain.CoverUpload{Filename: fh.Filename, Data: data}
	return in, cover, nil
}

// formValues returns every value for key, skipping blanks
func formValues(form *multipart.Form, key string) []string {
	if form == nil {
		return nil
	}
	var out []string
	for _, v := range form.Value[key] {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
