package domain

import "context"

// ServicePort defines the service contract for covers
type ServicePort interface {
	Presets(ctx context.Context) (Presets, error)
	Render(ctx context.Context, in StyleInput) (RenderOutput, error)
	Asset(ctx context.Context, ref string) (Asset, error)
	SaveUpload(ctx context.Context, filename string, data []byte) (string, error)
}

// Renderer turns a self-contained HTML document into a PNG screenshot.
// Implemented by the chromium adapter; nil when rendering is disabled
type Renderer interface {
	PNG(ctx context.Context, html string, width, height int) ([]byte, error)
}
