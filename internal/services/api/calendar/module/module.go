// Package module wires calendar views into the API using modkit
package module

import (
	"net/http"

	modkit "podium/internal/modkit"
	"podium/internal/modkit/httpkit"
	str "podium/internal/platform/strings"
	calhttp "podium/internal/services/api/calendar/http"
	calsvc "podium/internal/services/api/calendar/service"
	subsdom "podium/internal/services/api/submissions/domain"
)

// Deps are the cross-module dependencies the calendar module needs
type Deps struct {
	// Subs is the submissions read port
	Subs subsdom.ReaderPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc calsvc.Service
}

// New constructs a calendar module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("calendar"),
		modkit.WithPrefix("/calendar"),
	}, opts...)...)

	d, ok := b.Ports.(Deps)
	if !ok {
		panic("calendar module requires Deps with a submissions reader")
	}
	svc := calsvc.New(d.Subs)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		calhttp.Register(r, m.svc)
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

// Ports returns the module ports
func (m *Module) Ports() any { return nil }
