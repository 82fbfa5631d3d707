// Package tablekit binds domain repos to per-request tables.
// Uploaded spreadsheets are parsed once per request; a Binder turns the
// resulting table into a typed repo scoped to that request
package tablekit

import (
	"lunara/internal/platform/tabular"
)

// Binder is a tiny factory that binds a domain repo to a specific Table
type Binder[T any] interface {
	Bind(*tabular.Table) T
}

// BindFunc lets you create a Binder from a function
type BindFunc[T any] func(*tabular.Table) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(t *tabular.Table) T { return f(t) }

// RequireTable panics early on programmer error (nil table)
func RequireTable(t *tabular.Table) *tabular.Table {
	if t == nil {
		panic("tablekit: nil Table")
	}
	return t
}

// MustBind is a convenience that validates t then binds
func MustBind[T any](b Binder[T], t *tabular.Table) T {
	return b.Bind(RequireTable(t))
}
