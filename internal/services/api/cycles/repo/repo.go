// Package repo provides table access for cycle uploads
package repo

import (
	"strconv"

	"lunara/internal/modkit/tablekit"
	"lunara/internal/platform/tabular"
)

// Status reports how a temperature lookup resolved
type Status uint8

const (
	// StatusOK means an average was computed
	StatusOK Status = iota

	// StatusNoUserColumn means the table lacks the identifier column
	StatusNoUserColumn

	// StatusNoRows means no row matched the identifier
	StatusNoRows

	// StatusNoValueColumn means no accepted temperature column exists
	StatusNoValueColumn
)

// Outcome is the result of one temperature averaging pass.
// Samples counts the numeric cells that contributed to Average;
// non-numeric and empty cells among matching rows are skipped
type Outcome struct {
	Status  Status
	Column  string
	Average float64
	Rows    int
	Samples int
}

// Repo defines the repository contract for cycle uploads
type Repo interface {
	// AverageTemperature matches rows on userColumn == userID and averages the
	// first column from aliases that exists in the table
	AverageTemperature(userColumn, userID string, aliases []string) Outcome
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

func (r *queries) AverageTemperature(userColumn, userID string, aliases []string) Outcome {
	if !r.t.HasColumn(userColumn) {
		return Outcome{Status: StatusNoUserColumn}
	}
	rows := r.t.FindRows(userColumn, userID)
	if len(rows) == 0 {
		return Outcome{Status: StatusNoRows}
	}

	for _, col := range aliases {
		if !r.t.HasColumn(col) {
			continue
		}
		var sum float64
		var n int
		for _, row := range rows {
			cell, ok := r.t.Cell(row, col)
			if !ok || cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				continue
			}
			sum += v
			n++
		}
		out := Outcome{Status: StatusOK, Column: col, Rows: len(rows), Samples: n}
		if n > 0 {
			out.Average = sum / float64(n)
		}
		return out
	}
	return Outcome{Status: StatusNoValueColumn, Rows: len(rows)}
}
