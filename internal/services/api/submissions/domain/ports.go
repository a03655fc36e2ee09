package domain

import (
	"context"
	"time"
)

// ServicePort defines the service contract for submissions
type ServicePort interface {
	Create(ctx context.Context, in CreateInput, cover CoverUpload) (Submission, error)
	Get(ctx context.Context, id string) (Submission, error)
	ListByDate(ctx context.Context, day time.Time) ([]Submission, error)
	List(ctx context.Context) ([]Submission, error)
	Approve(ctx context.Context, id string, in ApproveInput) (Submission, error)
	Reject(ctx context.Context, id string) (Submission, error)
	CompletePast(ctx context.Context, now time.Time) (int, error)
}

// ReaderPort is the narrow read surface other modules consume
type ReaderPort interface {
	ListByDate(ctx context.Context, day time.Time) ([]Submission, error)
	List(ctx context.Context) ([]Submission, error)
}

// CoverSaver stores a validated upload and returns a serveable ref.
// Implemented by the covers module
type CoverSaver interface {
	SaveUpload(ctx context.Context, filename string, data []byte) (string, error)
}
