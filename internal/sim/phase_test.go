package sim

import "testing"

func TestPhaseRoundTrip(t *testing.T) {
	for _, p := range []Phase{PhaseBeforeStart, PhaseRunning, PhaseGameOver} {
		got, ok := ParsePhase(p.String())
		if !ok || got != p {
			t.Errorf("ParsePhase(%q) = (%v, %v)", p.String(), got, ok)
		}
	}
	if _, ok := ParsePhase("Paused"); ok {
		t.Error("ParsePhase accepted an unknown name")
	}
}

func TestInputRoundTrip(t *testing.T) {
	for _, in := range []Input{InputPrimary, InputQuit} {
		got, ok := ParseInput(in.String())
		if !ok || got != in {
			t.Errorf("ParseInput(%q) = (%v, %v)", in.String(), got, ok)
		}
	}
	if Input(0).String() != "Unknown" {
		t.Errorf("zero Input = %q, expected Unknown", Input(0).String())
	}
}
