// @title         Lunara API
// @version       0.1.0
// @description   Fertility window predictions and cycle record retrieval

package main

import (
	"context"

	"lunara/internal/platform/config"
	"lunara/internal/platform/logger"
	phttp "lunara/internal/platform/net/http"

	"lunara/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (LUNARA_API_*)
	root := config.New()
	apiCfg := root.Prefix("LUNARA_API_")

	// bring up logging early
	l := logger.Get()

	// http server (reads LUNARA_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			// docs UI serves a spec registered by a generate step; opt in only
			EnableSwagger:  apiCfg.MayBool("SWAGGER", false),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
