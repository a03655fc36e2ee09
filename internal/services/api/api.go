// Package api provides the HTTP API for the application
package api

import (
	"podium/internal/platform/config"
	phttp "podium/internal/platform/net/http"

	"podium/internal/modkit"
	"podium/internal/modkit/httpkit"
	"podium/internal/modkit/module"
	"podium/internal/modkit/swaggerkit"

	calendarmod "podium/internal/services/api/calendar/module"
	coversdom "podium/internal/services/api/covers/domain"
	coversmod "podium/internal/services/api/covers/module"
	metamod "podium/internal/services/api/meta/module"
	subsdom "podium/internal/services/api/submissions/domain"
	submissionsmod "podium/internal/services/api/submissions/module"
	"podium/internal/services/sweeper"
)

// Options are the API options
type Options struct {
	Config config.Conf

	// Renderer powers cover generation. Nil disables the feature
	Renderer coversdom.Renderer

	// CoverPresetsPath overrides the embedded venue/palette presets
	CoverPresetsPath string

	EnableSwagger  bool
	EnableProfiler bool
}

// Ports exposes the surfaces the host process drives outside HTTP
type Ports struct {
	// Sweep settles approved talks whose date has passed
	Sweep sweeper.Completer
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) Ports {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}

	// Construct covers first and extract its asset store port
	covers := coversmod.New(deps, modkit.WithPorts(coversmod.Deps{
		Renderer:    opt.Renderer,
		PresetsPath: opt.CoverPresetsPath,
	}))
	saver := module.MustPortsOf[subsdom.CoverSaver](covers)

	// Submissions stores uploaded cover images through the covers module
	submissions := submissionsmod.New(deps, modkit.WithPorts(submissionsmod.Deps{
		Covers: saver,
	}))
	reader := module.MustPortsOf[subsdom.ReaderPort](submissions)

	// Calendar reads talks through the submissions read port
	calendar := calendarmod.New(deps, modkit.WithPorts(calendarmod.Deps{
		Subs: reader,
	}))

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Deps{
			RenderReady: opt.Renderer != nil,
		})),
		covers,
		submissions,
		calendar,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})

	return Ports{
		Sweep: module.MustPortsOf[sweeper.Completer](submissions),
	}
}
