package i8088

import "testing"

func TestBiuStateLabels(t *testing.T) {
	tests := []struct {
		name  string
		state BiuState
		want  string
	}{
		{"Idle", BiuState{Kind: BiuIdle}, "I  "},
		{"Prefetch", BiuState{Kind: BiuPrefetch}, "PF "},
		{"Eu", BiuState{Kind: BiuEu}, "EU "},
		{"ToIdle", BiuState{Kind: BiuToIdle, Delay: 2}, ">I "},
		{"ToPrefetch", BiuState{Kind: BiuToPrefetch, Delay: 1}, ">PF"},
		{"ToEu", BiuState{Kind: BiuToEu, Delay: 3}, ">EU"},
	}

	for _, tt := range tests {
		if got := tt.state.Label(); got != tt.want {
			t.Fatalf("%s: unexpected label: got %q want %q", tt.name, got, tt.want)
		}
	}
}

func TestBiuLabelIgnoresCountdown(t *testing.T) {
	// The glyph distinguishes transitional from steady only; the
	// countdown must never leak into the display.
	for delay := uint8(1); delay <= 4; delay++ {
		state := BiuState{Kind: BiuToEu, Delay: delay}
		if got := state.Label(); got != ">EU" {
			t.Fatalf("delay %d: unexpected label %q", delay, got)
		}
	}
}

func TestBiuTickResolvesTransition(t *testing.T) {
	state := BiuState{Kind: BiuToPrefetch, Delay: 2}

	state = state.Tick()
	if state.Kind != BiuToPrefetch || state.Delay != 1 {
		t.Fatalf("unexpected state after first tick: %+v", state)
	}

	state = state.Tick()
	if state.Kind != BiuPrefetch || state.Delay != 0 {
		t.Fatalf("transition did not resolve to steady state: %+v", state)
	}
}

func TestBiuTickHoldsSteadyStates(t *testing.T) {
	for _, kind := range []BiuStateKind{BiuIdle, BiuPrefetch, BiuEu} {
		state := BiuState{Kind: kind}
		if got := state.Tick(); got != state {
			t.Fatalf("steady state %v changed on tick: %+v", kind, got)
		}
	}
}

func TestFetchStateStrings(t *testing.T) {
	tests := []struct {
		state FetchState
		want  string
	}{
		{FetchState{Kind: FetchIdle}, "Idle"},
		{FetchState{Kind: FetchInProgress}, "InProgress"},
		{FetchState{Kind: FetchScheduled, Delay: 2}, "Scheduled(2)"},
		{FetchState{Kind: FetchDelayed, Delay: 1}, "Delayed(1)"},
		{FetchState{Kind: FetchAborted, Delay: 3}, "Aborted(3)"},
		{FetchState{Kind: FetchSuspended}, "Suspended"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Fatalf("unexpected fetch state string: got %q want %q", got, tt.want)
		}
	}
}
