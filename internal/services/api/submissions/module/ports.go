package module

import (
	"context"
	"time"

	subsdom "podium/internal/services/api/submissions/domain"
	subssvc "podium/internal/services/api/submissions/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptSubmissionsPort exposes service methods as module ports for cross-module usage
type adaptSubmissionsPort struct{ svc subssvc.Service }

// ListByDate implements the domain ReaderPort interface
func (a adaptSubmissionsPort) ListByDate(ctx context.Context, day time.Time) ([]subsdom.Submission, error) {
	return a.svc.ListByDate(ctx, day)
}

// List implements the domain ReaderPort interface
func (a adaptSubmissionsPort) List(ctx context.Context) ([]subsdom.Submission, error) {
	return a.svc.List(ctx)
}

// CompletePast lets the sweeper run the derived-status pass
func (a adaptSubmissionsPort) CompletePast(ctx context.Context, now time.Time) (int, error) {
	return a.svc.CompletePast(ctx, now)
}
