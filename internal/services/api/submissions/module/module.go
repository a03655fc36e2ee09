// Package module wires submissions into the API using modkit
package module

import (
	"net/http"

	modkit "podium/internal/modkit"
	"podium/internal/modkit/httpkit"
	str "podium/internal/platform/strings"
	"podium/internal/services/api/submissions/domain"
	subshttp "podium/internal/services/api/submissions/http"
	subsrepo "podium/internal/services/api/submissions/repo"
	subssvc "podium/internal/services/api/submissions/service"
)

// Deps are the cross-module dependencies the submissions module needs
type Deps struct {
	// Covers stores validated uploads; provided by the covers module
	Covers domain.CoverSaver
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc subssvc.Service
}

// New constructs a submissions module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("submissions"),
		modkit.WithPrefix("/submissions"),
	}, opts...)...)

	var covers domain.CoverSaver
	if d, ok := b.Ports.(Deps); ok {
		covers = d.Covers
	}

	svc := subssvc.New(subsrepo.NewMemory(), covers)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptSubmissionsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		subshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }
