// Package service contains cover styling and asset workflows
package service

import (
	"bytes"
	"context"
	"html/template"
	"time"

	perr "podium/internal/platform/errors"
	"podium/internal/platform/net/http/bind"
	"podium/internal/services/api/covers/domain"
	"podium/internal/services/api/covers/repo"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Upload processing parameters
const (
	maxUploadWidth = 1600
	webpQuality    = 80
)

// Rendered cover dimensions (social card ratio)
const (
	renderWidth  = 1200
	renderHeight = 630
)

// Service defines the service contract for covers
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo     repo.Repo
	Styles   domain.Presets
	Renderer domain.Renderer
	now      func() time.Time
}

// New creates a new covers service. renderer may be nil; Render then reports
// the feature as unavailable
func New(r repo.Repo, presets domain.Presets, renderer domain.Renderer) *Svc {
	if r == nil {
		panic("covers.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, Styles: presets, Renderer: renderer, now: time.Now}
}

// Presets returns the venue and palette options for the styler
func (s *Svc) Presets(_ context.Context) (domain.Presets, error) {
	return s.Styles, nil
}

// Render composes the cover HTML for the style input and captures it as PNG.
// The result is also stored so it can be fetched again by ref
func (s *Svc) Render(ctx context.Context, in domain.StyleInput) (domain.RenderOutput, error) {
	if err := bind.Struct(in); err != nil {
		return domain.RenderOutput{}, err
	}
	pal, ok := s.Styles.PaletteByName(in.Palette)
	if !ok {
		return domain.RenderOutput{}, perr.WithField(perr.InvalidArgf("unknown palette %q", in.Palette), "palette")
	}
	if s.Renderer == nil {
		return domain.RenderOutput{}, perr.Unavailablef("cover rendering is disabled")
	}

	html, err := coverHTML(in, pal)
	if err != nil {
		return domain.RenderOutput{}, err
	}
	png, err := s.Renderer.PNG(ctx, html, renderWidth, renderHeight)
	if err != nil {
		return domain.RenderOutput{}, err
	}

	asset := domain.Asset{
		Ref:         uuid.NewString() + ".png",
		ContentType: "image/png",
		Data:        png,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.Repo.Insert(asset); err != nil {
		return domain.RenderOutput{}, err
	}
	return domain.RenderOutput{Ref: asset.Ref, PNG: png}, nil
}

// Asset returns a stored cover by ref
func (s *Svc) Asset(_ context.Context, ref string) (domain.Asset, error) {
	return s.Repo.Get(ref)
}

// SaveUpload decodes an uploaded image, bounds its width, re-encodes it as
// webp, and stores it. Returns the serveable ref
func (s *Svc) SaveUpload(_ context.Context, filename string, data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", perr.WithField(perr.InvalidArgf("cover image %q is not a decodable image", filename), "cover_image")
	}
	if img.Bounds().Dx() > maxUploadWidth {
		img = imaging.Resize(img, maxUploadWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "encoding cover webp")
	}

	asset := domain.Asset{
		Ref:         uuid.NewString() + ".webp",
		ContentType: "image/webp",
		Data:        buf.Bytes(),
		CreatedAt:   s.now().UTC(),
	}
	if err := s.Repo.Insert(asset); err != nil {
		return "", err
	}
	return asset.Ref, nil
}

var coverTmpl = template.Must(template.New("cover").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><style>
	html, body { margin: 0; width: 100%; height: 100%; }
	body {
		display: flex; flex-direction: column; justify-content: center;
		padding: 64px; box-sizing: border-box;
		background: {{.Palette.Background}}; color: {{.Palette.Text}};
		font-family: 'Pretendard', 'Noto Sans KR', sans-serif;
	}
	.title { font-size: 64px; font-weight: 800; line-height: 1.15; }
	.meta { margin-top: 32px; font-size: 28px; color: {{.Palette.Accent}}; }
	.venue { margin-top: 8px; font-size: 24px; opacity: 0.85; }
</style></head>
<body>
	<div class="title">{{.In.Title}}</div>
	<div class="meta">{{.In.Speaker}} · {{.In.Date}}</div>
	<div class="venue">{{.In.Venue}}</div>
</body></html>`))

// coverHTML renders the self-contained cover document
func coverHTML(in domain.StyleInput, pal domain.Palette) (string, error) {
	var buf bytes.Buffer
	data := struct {
		In      domain.StyleInput
		Palette domain.Palette
	}{In: in, Palette: pal}
	if err := coverTmpl.Execute(&buf, data); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "rendering cover template")
	}
	return buf.String(), nil
}
