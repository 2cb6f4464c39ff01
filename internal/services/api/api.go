// Package api composes the HTTP API for the feed edge
package api

import (
	"feedmill/internal/platform/config"
	"feedmill/internal/platform/logger"
	phttp "feedmill/internal/platform/net/http"

	"feedmill/internal/modkit"
	"feedmill/internal/modkit/httpkit"
	"feedmill/internal/modkit/module"
	"feedmill/internal/modkit/swaggerkit"

	metahttp "feedmill/internal/services/api/meta/http"
	metamod "feedmill/internal/services/api/meta/module"
	feedmod "feedmill/internal/services/feed/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Upstream       config.Conf
	Logger         *logger.Logger
	Ports          feedmod.Ports
	Checks         []metahttp.Check
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// the gateway authenticates; this edge only needs the viewer id resolved
	viewer := httpkit.Auth(httpkit.NewViewerPort())

	feed := feedmod.New(
		deps,
		feedmod.FromConfig(opt.Upstream),
		modkit.WithPorts(opt.Ports),
		modkit.WithMiddlewares(viewer),
	)

	mods := []module.Module{
		metamod.New(deps, opt.Checks),
		feed,
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
