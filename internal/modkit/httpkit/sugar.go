package httpkit

import (
	"net/http"

	"lunara/internal/platform/net/http/bind"
)

// PostForm mounts a typed form handler under POST
// the payload binds from multipart or urlencoded bodies via form tags
func PostForm[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...bind.FormOptions) {
	r.Post(path, Form(h, opts...))
}

// Body-less endpoints

// Get registers a no-body handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// Post registers a no-body handler and uses the envelope adapter
func Post(r Router, path string, h func(*http.Request) (any, error)) {
	r.Post(path, Call(h))
}
