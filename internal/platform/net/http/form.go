package http

import (
	"net/http"

	"lunara/internal/platform/net/http/bind"
)

// FormHandler adapts a handler bound to a typed form payload
// the request is left parsed so handlers can still reach uploaded files via bind.FormFile
func FormHandler[T any](fn func(*http.Request, T) (any, error), opts ...bind.FormOptions) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := bind.ParseForm[T](r, opts...)
		if err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}
