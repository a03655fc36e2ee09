// Package module wires covers into the API using modkit
package module

import (
	"net/http"

	modkit "podium/internal/modkit"
	"podium/internal/modkit/httpkit"
	str "podium/internal/platform/strings"
	"podium/internal/services/api/covers/domain"
	covershttp "podium/internal/services/api/covers/http"
	coversrepo "podium/internal/services/api/covers/repo"
	coverssvc "podium/internal/services/api/covers/service"
)

// Deps are the environment-driven pieces the covers module needs
type Deps struct {
	// Renderer may be nil; rendering then reports unavailable
	Renderer domain.Renderer
	// PresetsPath overrides the embedded presets file when non-empty
	PresetsPath string
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

	svc coverssvc.Service
}

// New constructs a covers module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("covers"),
		modkit.WithPrefix("/covers"),
	}, opts...)...)

	var d Deps
	if pd, ok := b.Ports.(Deps); ok {
		d = pd
	}

	presets, err := coverssvc.LoadPresets(d.PresetsPath)
	if err != nil {
		panic("covers: " + err.Error())
	}
	svc := coverssvc.New(coversrepo.NewMemory(), presets, d.Renderer)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = adaptCoversPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		covershttp.Register(r, m.svc)
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
