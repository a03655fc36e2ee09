package module

import (
	"context"

	coverssvc "podium/internal/services/api/covers/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptCoversPort exposes the asset store surface for cross-module usage
// (the submissions module stores uploads through it)
type adaptCoversPort struct{ svc coverssvc.Service }

// SaveUpload implements the submissions domain CoverSaver interface
func (a adaptCoversPort) SaveUpload(ctx context.Context, filename string, data []byte) (string, error) {
	return a.svc.SaveUpload(ctx, filename, data)
}
