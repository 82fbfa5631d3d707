package tablekit

import (
	"testing"

	"lunara/internal/platform/tabular"
	kit "lunara/internal/platform/testkit"
)

type fakeRepo struct{ t *tabular.Table }

func parseTable(t *testing.T) *tabular.Table {
	t.Helper()
	tb, err := tabular.Parse("x.csv", []byte("user_id,bbt\nada,36.5\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return tb
}

func TestBindFunc(t *testing.T) {
	t.Parallel()

	b := BindFunc[fakeRepo](func(tb *tabular.Table) fakeRepo { return fakeRepo{t: tb} })
	tb := parseTable(t)
	if got := b.Bind(tb); got.t != tb {
		t.Fatalf("Bind did not pass the table through")
	}
}

func TestMustBind(t *testing.T) {
	t.Parallel()

	b := BindFunc[fakeRepo](func(tb *tabular.Table) fakeRepo { return fakeRepo{t: tb} })
	tb := parseTable(t)
	if got := MustBind[fakeRepo](b, tb); got.t != tb {
		t.Fatalf("MustBind did not bind")
	}
	kit.MustPanic(t, func() { _ = MustBind[fakeRepo](b, nil) })
}
