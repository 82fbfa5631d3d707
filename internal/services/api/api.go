// Package api provides the HTTP API for the application
package api

import (
	"lunara/internal/platform/config"
	"lunara/internal/platform/logger"
	phttp "lunara/internal/platform/net/http"
	"lunara/internal/platform/net/middleware"

	"lunara/internal/modkit"
	"lunara/internal/modkit/httpkit"
	"lunara/internal/modkit/module"

	cyclesmod "lunara/internal/services/api/cycles/module"
	metamod "lunara/internal/services/api/meta/module"
	recordsmod "lunara/internal/services/api/records/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		cyclesmod.New(deps),
		recordsmod.New(deps),
	}

	// LB liveness probe at the root, outside the versioned prefix
	r.Use(middleware.Heartbeat("/health"))

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		phttp.MountSwagger(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
