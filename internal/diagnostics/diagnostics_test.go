package diagnostics

import (
	"testing"
)

func TestDiagnosticMessage(t *testing.T) {
	tests := []struct {
		name string
		d    *Diagnostic
		want string
	}{
		{
			name: "int literal to double",
			d:    New(PhaseConverter, CodeIntLiteralToDouble, Location{File: "a.ts", Line: 1, Column: 16}, "42"),
			want: "integer literal 42 used where a double is expected; write it as a floating literal or add an explicit cast",
		},
		{
			name: "import cycle",
			d:    New(PhaseResolver, CodeImportCycle, Location{File: "a.ts"}, "A -> B -> A"),
			want: "circular import detected: A -> B -> A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Message(); got != tt.want {
				t.Errorf("Message() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestCollectorSortsByLocation(t *testing.T) {
	c := NewCollector()
	c.Errorf(PhaseValidator, CodeWithStatement, Location{File: "b.ts", Line: 5, Column: 1})
	c.Errorf(PhaseValidator, CodeWithStatement, Location{File: "a.ts", Line: 9, Column: 1})
	c.Errorf(PhaseValidator, CodeWithStatement, Location{File: "a.ts", Line: 2, Column: 4})

	got := c.All()
	if len(got) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(got))
	}
	wantOrder := []string{"a.ts:2:4", "a.ts:9:1", "b.ts:5:1"}
	for i, loc := range wantOrder {
		if got[i].Location.String() != loc {
			t.Errorf("position %d: got %s, want %s", i, got[i].Location.String(), loc)
		}
	}
}

func TestCollectorHasErrors(t *testing.T) {
	c := NewCollector()
	if c.HasErrors() {
		t.Fatal("empty collector should report no errors")
	}
	c.Warnf(PhaseResolver, CodeDefaultImportLocal, Location{File: "a.ts"}, "./x")
	if c.HasErrors() {
		t.Fatal("warnings alone should not count as errors")
	}
	c.Errorf(PhaseResolver, CodeModuleNotFound, Location{File: "a.ts"}, "./y")
	if !c.HasErrors() {
		t.Fatal("expected HasErrors to be true after adding an error diagnostic")
	}
}

func TestRaisePanicsWithICE(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Raise to panic")
		}
		ice, ok := r.(*ICE)
		if !ok {
			t.Fatalf("expected *ICE, got %T", r)
		}
		if ice.Phase != PhaseSoundnessGate {
			t.Errorf("phase = %s, want %s", ice.Phase, PhaseSoundnessGate)
		}
	}()
	Raise(PhaseSoundnessGate, "unhandled IR kind %s", "objectType")
}
