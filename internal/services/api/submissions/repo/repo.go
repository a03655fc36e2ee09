// Package repo provides in-memory access for submissions
package repo

import (
	"time"

	perr "podium/internal/platform/errors"
	"podium/internal/platform/store"
	"podium/internal/services/api/submissions/domain"
)

// Repo defines the repository contract for submissions
type Repo interface {
	Insert(s domain.Submission) error
	Get(id string) (domain.Submission, error)
	List() []domain.Submission
	ListByDate(day time.Time) []domain.Submission
	Update(id string, mutate func(domain.Submission) (domain.Submission, error)) (domain.Submission, error)
	UpdateAll(mutate func(domain.Submission) (domain.Submission, bool)) int
}

// Memory implements Repo on the platform collection
type Memory struct {
	col *store.Collection[domain.Submission]
}

// NewMemory creates an empty submissions repository
func NewMemory() *Memory {
	return &Memory{col: store.NewCollection[domain.Submission]()}
}

// Insert stores a new submission under its id
func (m *Memory) Insert(s domain.Submission) error {
	return m.col.Insert(s.ID, s.Clone())
}

// Get returns a copy of the submission or a not-found error
func (m *Memory) Get(id string) (domain.Submission, error) {
	s, ok := m.col.Get(id)
	if !ok {
		return domain.Submission{}, perr.NotFoundf("submission %q not found", id)
	}
	return s.Clone(), nil
}

// List returns copies of every submission in insertion order
func (m *Memory) List() []domain.Submission {
	rows := m.col.List()
	out := make([]domain.Submission, 0, len(rows))
	for _, s := range rows {
		out = append(out, s.Clone())
	}
	return out
}

// ListByDate returns copies of submissions whose relevant date is day
func (m *Memory) ListByDate(day time.Time) []domain.Submission {
	rows := m.col.Filter(func(s domain.Submission) bool { return s.On(day) })
	out := make([]domain.Submission, 0, len(rows))
	for _, s := range rows {
		out = append(out, s.Clone())
	}
	return out
}

// Update applies mutate atomically and returns the stored result as a copy
func (m *Memory) Update(id string, mutate func(domain.Submission) (domain.Submission, error)) (domain.Submission, error) {
	next, err := m.col.Update(id, func(cur domain.Submission) (domain.Submission, error) {
		return mutate(cur.Clone())
	})
	if err != nil {
		return domain.Submission{}, err
	}
	return next.Clone(), nil
}

// UpdateAll applies mutate to every record, swapping in changed ones
func (m *Memory) UpdateAll(mutate func(domain.Submission) (domain.Submission, bool)) int {
	return m.col.UpdateAll(func(cur domain.Submission) (domain.Submission, bool) {
		return mutate(cur.Clone())
	})
}
