package repo

import (
	"math"
	"testing"

	"lunara/internal/platform/tabular"
)

var aliases = []string{"bbt", "BBT", "temperature", "Temperature"}

func parse(t *testing.T, csv string) Repo {
	t.Helper()
	tb, err := tabular.Parse("history.csv", []byte(csv))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return NewTable().Bind(tb)
}

func TestAverageTemperature(t *testing.T) {
	t.Parallel()

	r := parse(t, "user_id,bbt\nada,36.5\nada,36.7\nada,36.6\nbob,39.0\n")
	out := r.AverageTemperature("user_id", "ada", aliases)
	if out.Status != StatusOK || out.Column != "bbt" {
		t.Fatalf("outcome = %+v", out)
	}
	if out.Rows != 3 || out.Samples != 3 {
		t.Fatalf("rows/samples = %d/%d", out.Rows, out.Samples)
	}
	if math.Abs(out.Average-36.6) > 1e-9 {
		t.Fatalf("average = %v, want 36.6", out.Average)
	}
}

func TestAverageTemperatureAliasOrder(t *testing.T) {
	t.Parallel()

	// both columns present, first alias wins
	r := parse(t, "user_id,Temperature,bbt\nada,40.0,36.5\n")
	out := r.AverageTemperature("user_id", "ada", aliases)
	if out.Status != StatusOK || out.Column != "bbt" {
		t.Fatalf("outcome = %+v", out)
	}
	if out.Average != 36.5 {
		t.Fatalf("average = %v", out.Average)
	}
}

func TestAverageTemperatureSkipsBadCells(t *testing.T) {
	t.Parallel()

	r := parse(t, "user_id,bbt\nada,36.5\nada,\nada,n/a\nada,36.7\n")
	out := r.AverageTemperature("user_id", "ada", aliases)
	if out.Status != StatusOK {
		t.Fatalf("outcome = %+v", out)
	}
	if out.Rows != 4 || out.Samples != 2 {
		t.Fatalf("rows/samples = %d/%d", out.Rows, out.Samples)
	}
	if math.Abs(out.Average-36.6) > 1e-9 {
		t.Fatalf("average = %v, want 36.6", out.Average)
	}
}

func TestAverageTemperatureStatuses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		csv    string
		userID string
		want   Status
	}{
		{"missing user column", "name,bbt\nada,36.5\n", "ada", StatusNoUserColumn},
		{"no matching rows", "user_id,bbt\nbob,36.5\n", "ada", StatusNoRows},
		{"case sensitive match", "user_id,bbt\nAda,36.5\n", "ada", StatusNoRows},
		{"no value column", "user_id,temp\nada,36.5\n", "ada", StatusNoValueColumn},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := parse(t, tc.csv).AverageTemperature("user_id", tc.userID, aliases)
			if out.Status != tc.want {
				t.Fatalf("status = %v, want %v", out.Status, tc.want)
			}
		})
	}
}
