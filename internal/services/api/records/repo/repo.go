// Package repo provides table access for record retrieval
package repo

import (
	"lunara/internal/modkit/tablekit"
	"lunara/internal/platform/tabular"
)

// Status reports how a first-match lookup resolved
type Status uint8

const (
	// StatusOK means a matching row was found
	StatusOK Status = iota

	// StatusNoUserColumn means the table lacks the identifier column
	StatusNoUserColumn

	// StatusNoRows means no row matched the identifier
	StatusNoRows
)

// Repo defines the repository contract for record retrieval
type Repo interface {
	// FirstMatch finds the first row where userColumn equals userID and reads
	// the named columns from it. A nil value means the column is missing or
	// the cell is empty
	FirstMatch(userColumn, userID string, columns []string) (map[string]*string, Status)
}

type (
	// TB implements the Repo interface over a parsed table
	TB struct{}

	// queries holds the table query methods
	queries struct{ t *tabular.Table }
)

// NewTable creates a new table repository binder
func NewTable() tablekit.Binder[Repo] { return TB{} }

// Bind binds a parsed table to the Repo implementation
func (TB) Bind(t *tabular.Table) Repo { return &queries{t: t} }

func (r *queries) FirstMatch(userColumn, userID string, columns []string) (map[string]*string, Status) {
	if !r.t.HasColumn(userColumn) {
		return nil, StatusNoUserColumn
	}
	rows := r.t.FindRows(userColumn, userID)
	if len(rows) == 0 {
		return nil, StatusNoRows
	}

	row := rows[0]
	out := make(map[string]*string, len(columns))
	for _, col := range columns {
		cell, ok := r.t.Cell(row, col)
		if !ok || cell == "" {
			out[col] = nil
			continue
		}
		v := cell
		out[col] = &v
	}
	return out, StatusOK
}
