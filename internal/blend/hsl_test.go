package blend

import (
	"testing"

	"github.com/gogpu/tilepaint/internal/fix15"
)

func TestLum(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int64
		want    int64
	}{
		{"black", 0, 0, 0, 0},
		{"white", fix15.One, fix15.One, fix15.One, fix15.One},
		{"pure red", fix15.One, 0, 0, 30 * fix15.One / 100},
		{"pure green", 0, fix15.One, 0, 59 * fix15.One / 100},
		{"pure blue", 0, 0, fix15.One, 11 * fix15.One / 100},
	}
	for _, tt := range tests {
		if got := lum(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("%s: lum = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSat(t *testing.T) {
	if got := sat(100, 200, 300); got != 200 {
		t.Errorf("sat(100,200,300) = %d, want 200", got)
	}
	if got := sat(500, 500, 500); got != 0 {
		t.Errorf("sat of gray = %d, want 0", got)
	}
}

// TestClipColorInRange verifies that in-range colors pass through
// untouched.
func TestClipColorInRange(t *testing.T) {
	r, g, b := clipColor(1000, 20000, fix15.One)
	if r != 1000 || g != 20000 || b != fix15.One {
		t.Errorf("clipColor changed an in-range color: got (%d,%d,%d)", r, g, b)
	}
}

// TestClipColorBounds verifies that out-of-range colors are pulled back
// into [0, One] while luminance is approximately preserved.
func TestClipColorBounds(t *testing.T) {
	cases := [][3]int64{
		{-5000, 10000, 20000},
		{40000, 10000, 20000},
		{-3000, 36000, 15000},
	}
	for _, c := range cases {
		wantLum := lum(c[0], c[1], c[2])
		r, g, b := clipColor(c[0], c[1], c[2])
		if r < 0 || g < 0 || b < 0 || r > fix15.One || g > fix15.One || b > fix15.One {
			t.Errorf("clipColor(%v) out of range: (%d,%d,%d)", c, r, g, b)
		}
		gotLum := lum(r, g, b)
		diff := gotLum - wantLum
		if diff < -4 || diff > 4 {
			t.Errorf("clipColor(%v) luminance %d, want %d", c, gotLum, wantLum)
		}
	}
}

func TestSetLum(t *testing.T) {
	r, g, b := setLum(8000, 16000, 24000, 10000)
	if got := lum(r, g, b); got < 9996 || got > 10004 {
		t.Errorf("setLum luminance = %d, want ~10000", got)
	}
}

func TestSetSat(t *testing.T) {
	r, g, b := setSat(1000, 5000, 9000, 16000)
	if got := sat(r, g, b); got != 16000 {
		t.Errorf("setSat saturation = %d, want 16000", got)
	}
	// Ordering preserved: r was min, b was max.
	if !(r <= g && g <= b) {
		t.Errorf("setSat broke component ordering: (%d,%d,%d)", r, g, b)
	}

	// Grayscale input stays grayscale regardless of the target.
	r, g, b = setSat(7000, 7000, 7000, 16000)
	if sat(r, g, b) != 0 {
		t.Errorf("setSat of gray produced saturation: (%d,%d,%d)", r, g, b)
	}
}

// TestNonSeparableLumTransfer checks the defining property of each HSL
// mode: which decomposition component comes from which operand.
func TestNonSeparableLumTransfer(t *testing.T) {
	sr, sg, sb := uint32(30000), uint32(5000), uint32(8000)
	dr, dg, db := uint32(4000), uint32(22000), uint32(15000)
	sLum := lum(int64(sr), int64(sg), int64(sb))
	dLum := lum(int64(dr), int64(dg), int64(db))

	// Hue, Saturation and Color keep the destination luminosity.
	for _, m := range []Mode{Hue, Saturation, Color} {
		r, g, b := m.TripleFunc()(sr, sg, sb, dr, dg, db)
		got := lum(int64(r), int64(g), int64(b))
		if got < dLum-4 || got > dLum+4 {
			t.Errorf("%v: luminance %d, want ~%d", m, got, dLum)
		}
	}

	// Luminosity takes the source luminosity.
	r, g, b := Luminosity.TripleFunc()(sr, sg, sb, dr, dg, db)
	got := lum(int64(r), int64(g), int64(b))
	if got < sLum-4 || got > sLum+4 {
		t.Errorf("Luminosity: luminance %d, want ~%d", got, sLum)
	}

	// Hue and Saturation keep the destination saturation resp. take the
	// source saturation.
	r, g, b = Hue.TripleFunc()(sr, sg, sb, dr, dg, db)
	dSat := sat(int64(dr), int64(dg), int64(db))
	if got := sat(int64(r), int64(g), int64(b)); got < dSat-4 || got > dSat+4 {
		t.Errorf("Hue: saturation %d, want ~%d", got, dSat)
	}
}

// TestNonSeparableRange sweeps boundary triples and checks the results
// stay inside the fixed-point domain.
func TestNonSeparableRange(t *testing.T) {
	vals := []uint32{0, fix15.Half, fix15.One}
	for m := Hue; m <= Luminosity; m++ {
		f := m.TripleFunc()
		for _, sr := range vals {
			for _, sg := range vals {
				for _, sb := range vals {
					for _, dr := range vals {
						for _, dg := range vals {
							for _, db := range vals {
								r, g, b := f(sr, sg, sb, dr, dg, db)
								if r > fix15.One || g > fix15.One || b > fix15.One {
									t.Fatalf("%v(%d,%d,%d | %d,%d,%d) = (%d,%d,%d) out of range",
										m, sr, sg, sb, dr, dg, db, r, g, b)
								}
							}
						}
					}
				}
			}
		}
	}
}
