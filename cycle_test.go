package i8088

import "testing"

func TestTCycleStrings(t *testing.T) {
	tests := []struct {
		cycle TCycle
		want  string
	}{
		{Tinit, "Tx"},
		{Ti, "Ti"},
		{T1, "T1"},
		{T2, "T2"},
		{T3, "T3"},
		{T4, "T4"},
		{Tw, "Tw"},
	}

	for _, tt := range tests {
		if got := tt.cycle.String(); got != tt.want {
			t.Fatalf("unexpected T-cycle label: got %q want %q", got, tt.want)
		}
	}
}

func TestTCycleSequence(t *testing.T) {
	cycle := Tinit
	expected := []TCycle{Ti, T1, T2, T3, T4, T1}
	for i, want := range expected {
		cycle = cycle.Next(false)
		if cycle != want {
			t.Fatalf("step %d: unexpected T-cycle: got %v want %v", i, cycle, want)
		}
	}
}

func TestTCycleWaitInsertion(t *testing.T) {
	cycle := T3

	cycle = cycle.Next(true)
	if cycle != Tw {
		t.Fatalf("expected Tw after T3 with wait pending, got %v", cycle)
	}

	cycle = cycle.Next(true)
	if cycle != Tw {
		t.Fatalf("expected Tw to repeat while wait pending, got %v", cycle)
	}

	cycle = cycle.Next(false)
	if cycle != T4 {
		t.Fatalf("expected T4 once wait clears, got %v", cycle)
	}
}
