package blend

import "testing"

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Normal, "Normal"},
		{SoftLight, "SoftLight"},
		{Luminosity, "Luminosity"},
		{Mode(-1), "Unknown"},
		{numModes, "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

// TestDispatchPartition verifies that every mode has exactly one kind of
// per-pixel function: separable modes a channel function, non-separable
// modes a triple function.
func TestDispatchPartition(t *testing.T) {
	for m := Normal; m < numModes; m++ {
		if !m.Valid() {
			t.Fatalf("%v not valid", m)
		}
		if m.Separable() {
			if m.Func() == nil {
				t.Errorf("%v: separable mode without channel function", m)
			}
			if m.TripleFunc() != nil {
				t.Errorf("%v: separable mode with triple function", m)
			}
		} else {
			if m.TripleFunc() == nil {
				t.Errorf("%v: non-separable mode without triple function", m)
			}
			if m.Func() != nil {
				t.Errorf("%v: non-separable mode with channel function", m)
			}
		}
	}
}
