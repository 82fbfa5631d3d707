package middleware

import (
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "lunara/internal/platform/errors"
	"lunara/internal/platform/logger"
	pnet "lunara/internal/platform/net"
	phttp "lunara/internal/platform/net/http"
)

// RecoverJSON converts panics into a JSON 500 envelope and logs stack with request id
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			if v := recover(); v != nil {
				reqID := pnet.RequestID(r.Context())

				// format stack like chi recover
				raw := debug.Stack()
				lines := strings.Split(string(raw), "\n")
				stack := strings.Join(lines, "\n\t")

				log := logger.C(r.Context())
				if log == nil {
					log = logger.Named("http")
				}
				log.Error().
					Str("request_id", reqID).
					Interface("panic", v).
					Msgf("panic recovered\n%s", stack)

				// mirror id in response header
				if reqID != "" {
					w.Header().Set("X-Request-ID", reqID)
				}

				phttp.RespondError(w, r, perr.PanicErrf("panic recovered"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
