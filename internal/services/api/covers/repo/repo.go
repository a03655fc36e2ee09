// Package repo provides in-memory access for cover assets
package repo

import (
	perr "podium/internal/platform/errors"
	"podium/internal/platform/store"
	"podium/internal/services/api/covers/domain"
)

// Repo defines the repository contract for cover assets
type Repo interface {
	Insert(a domain.Asset) error
	Get(ref string) (domain.Asset, error)
}

// Memory implements Repo on the platform collection
type Memory struct {
	col *store.Collection[domain.Asset]
}

// NewMemory creates an empty asset repository
func NewMemory() *Memory {
	return &Memory{col: store.NewCollection[domain.Asset]()}
}

// Insert stores a new asset under its ref
func (m *Memory) Insert(a domain.Asset) error {
	return m.col.Insert(a.Ref, a.Clone())
}

// Get returns a copy of the asset or a not-found error
func (m *Memory) Get(ref string) (domain.Asset, error) {
	a, ok := m.col.Get(ref)
	if !ok {
		return domain.Asset{}, perr.NotFoundf("cover %q not found", ref)
	}
	return a.Clone(), nil
}
