package module

import (
	"testing"
)

// simple type used in tests
type portSet struct {
	Name string
	ID   int
}

// must is a tiny helper for ok checks
func must(t *testing.T, ok bool, msg string) {
	t.Helper()
	if !ok {
		t.Fatalf("%s", msg)
	}
}

func TestRegistry_RegisterAndPortsAs_Success(t *testing.T) {
	Reset()

	want := portSet{Name: "cycles", ID: 1}
	Register("cycles", want)

	got, ok := PortsAs[portSet]("cycles")
	must(t, ok, "expected ok for existing name")
	if got != want {
		t.Fatalf("unexpected value got=%v want=%v", got, want)
	}
}

func TestRegistry_PortsAs_MissingReturnsZeroAndFalse(t *testing.T) {
	Reset()

	got, ok := PortsAs[portSet]("missing")
	if ok {
		t.Fatal("expected ok=false for missing name")
	}
	if got != (portSet{}) {
		t.Fatalf("expected zero value got=%v", got)
	}
}

func TestRegistry_PortsAs_TypeMismatchReturnsFalse(t *testing.T) {
	Reset()

	Register("cycles", portSet{Name: "cycles", ID: 2})

	// ask for wrong type
	_, ok := PortsAs[int]("cycles")
	if ok {
		t.Fatal("expected ok=false for type mismatch")
	}
}

func TestRegistry_Register_OverwritesExisting(t *testing.T) {
	Reset()

	Register("svc", portSet{Name: "a", ID: 1})
	Register("svc", portSet{Name: "b", ID: 2})

	got, ok := PortsAs[portSet]("svc")
	must(t, ok, "expected ok for svc after overwrite")
	if got.Name != "b" || got.ID != 2 {
		t.Fatalf("expected overwritten value got=%v", got)
	}
}

func TestRegistry_Reset_ClearsAll(t *testing.T) {
	Reset()

	Register("x", portSet{Name: "x", ID: 9})
	Reset()
	if _, ok := PortsAs[portSet]("x"); ok {
		t.Fatal("expected registry to be empty after Reset")
	}
}
