package angle

import (
	"math"
	"testing"
)

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{90, 90},
		{-90, -90},
		{180, 180},
		{-180, 180},
		{181, -179},
		{-181, 179},
		{360, 0},
		{-360, 0},
		{540, 180},
		{720, 0},
		{10000, -80},
		{-10000, 80},
	}

	for _, tt := range tests {
		got := Normalize(tt.in)
		if diff := math.Abs(got - tt.want); diff > 1e-9 {
			t.Errorf("Normalize(%g) = %g, want %g", tt.in, got, tt.want)
		}

		if got <= -180 || got > 180 {
			t.Errorf("Normalize(%g) = %g, outside (-180, 180]", tt.in, got)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for deg := -720.0; deg <= 720.0; deg += 7.3 {
		once := Normalize(deg)

		twice := Normalize(once)
		if diff := math.Abs(once - twice); diff > 1e-12 {
			t.Fatalf("Normalize not idempotent at %g: %g != %g", deg, once, twice)
		}
	}
}

func TestResolveWraparound(t *testing.T) {
	tests := []struct {
		listener, source float64
		want             float64
	}{
		{0, 90, 90},
		{90, 0, -90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 270, -90},
		{45, 45, 0},
		{720, 810, 90},
		{-350, 10, 0},
	}

	for _, tt := range tests {
		got := Resolve(tt.listener, tt.source)
		if diff := math.Abs(got - tt.want); diff > 1e-9 {
			t.Errorf("Resolve(%g, %g) = %g, want %g", tt.listener, tt.source, got, tt.want)
		}
	}
}

func TestResolveDirectlyBehind(t *testing.T) {
	// The seam at ±180° may resolve to either sign; only the magnitude is
	// guaranteed.
	got := Resolve(0, 180)
	if diff := math.Abs(math.Abs(got) - 180); diff > 1e-9 {
		t.Errorf("Resolve(0, 180) = %g, want magnitude 180", got)
	}
}

func TestResolveOutputRange(t *testing.T) {
	for listener := -400.0; listener <= 400.0; listener += 37.7 {
		for source := -400.0; source <= 400.0; source += 41.3 {
			got := Resolve(listener, source)
			if got <= -180.000000001 || got > 180.000000001 {
				t.Fatalf("Resolve(%g, %g) = %g, outside (-180, 180]", listener, source, got)
			}
		}
	}
}

func TestResolveMatchesNormalize(t *testing.T) {
	// atan2 wrapping and closed-form normalization agree for finite inputs
	// away from the ±180° seam.
	for listener := -360.0; listener <= 360.0; listener += 13.1 {
		for source := -360.0; source <= 360.0; source += 17.9 {
			wrapped := Resolve(listener, source)
			folded := Normalize(source - listener)

			if math.Abs(math.Abs(folded)-180) < 1e-6 {
				continue // seam, sign may differ
			}

			if diff := math.Abs(wrapped - folded); diff > 1e-9 {
				t.Fatalf("Resolve(%g, %g) = %g, Normalize(delta) = %g", listener, source, wrapped, folded)
			}
		}
	}
}

func TestResolveNonFinite(t *testing.T) {
	cases := [][2]float64{
		{math.NaN(), 0},
		{0, math.NaN()},
		{math.Inf(1), 0},
		{0, math.Inf(-1)},
	}

	for _, c := range cases {
		if got := Resolve(c[0], c[1]); !math.IsNaN(got) {
			t.Errorf("Resolve(%g, %g) = %g, want NaN", c[0], c[1], got)
		}
	}
}

func TestFoldLateral(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{45, 45},
		{90, 90},
		{-90, -90},
		{120, 60},
		{-120, -60},
		{180, 0},
		{-180, 0},
		{150, 30},
		{91, 89},
		{-91, -89},
	}

	for _, tt := range tests {
		got := FoldLateral(tt.in)
		if diff := math.Abs(got - tt.want); diff > 1e-9 {
			t.Errorf("FoldLateral(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestFoldLateralPeriodic(t *testing.T) {
	for deg := -180.0; deg <= 180.0; deg += 3.7 {
		base := FoldLateral(deg)

		for _, k := range []float64{-2, -1, 1, 2, 5} {
			shifted := FoldLateral(deg + 360*k)
			if diff := math.Abs(base - shifted); diff > 1e-9 {
				t.Fatalf("FoldLateral(%g + 360*%g) = %g, want %g", deg, k, shifted, base)
			}
		}
	}
}

func TestFoldLateralRange(t *testing.T) {
	for deg := -1000.0; deg <= 1000.0; deg += 11.3 {
		got := FoldLateral(deg)
		if got < -90.000000001 || got > 90.000000001 {
			t.Fatalf("FoldLateral(%g) = %g, outside [-90, 90]", deg, got)
		}
	}
}

func TestBehind(t *testing.T) {
	tests := []struct {
		in   float64
		want bool
	}{
		{0, false},
		{45, false},
		{90, false},
		{-90, false},
		{91, true},
		{-91, true},
		{180, true},
		{-180, true},
		{120, true},
		{450, false},  // wraps to 90
		{-270, false}, // wraps to 90
		{540, true},   // wraps to 180
	}

	for _, tt := range tests {
		if got := Behind(tt.in); got != tt.want {
			t.Errorf("Behind(%g) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRadiansDegreesRoundTrip(t *testing.T) {
	for deg := -360.0; deg <= 360.0; deg += 15 {
		back := Degrees(Radians(deg))
		if diff := math.Abs(back - deg); diff > 1e-12 {
			t.Errorf("Degrees(Radians(%g)) = %g", deg, back)
		}
	}
}
