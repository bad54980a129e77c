package transfer

import (
	"math"
	"testing"
)

// TestLinearizeEdgeCases tests edge cases for sRGB to linear conversion.
func TestLinearizeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, float32(math.Pow((0.04046+0.055)/1.055, 2.4))},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
		{"negative stays linear", -0.02, -0.02 / 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Linearize(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("Linearize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestDelinearizeEdgeCases tests edge cases for linear to sRGB conversion.
func TestDelinearizeEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.0031308, 0.0031308 * 12.92},
		{"just above threshold", 0.0031309, 1.055*float32(math.Pow(0.0031309, 1.0/2.4)) - 0.055},
		{"mid gray linear", 0.21404, float32(1.055*math.Pow(0.21404, 1.0/2.4) - 0.055)},
		{"negative stays linear", -0.001, -0.001 * 12.92},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Delinearize(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("Delinearize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestThresholdContinuity checks that both branches agree at each breakpoint.
func TestThresholdContinuity(t *testing.T) {
	linearBranch := float32(LinearizeThreshold / linearSlope)
	powerBranch := float32(math.Pow((LinearizeThreshold+offset)/scale, gamma))
	if !floatNear(linearBranch, powerBranch, 1e-6) {
		t.Errorf("Linearize branches disagree at %v: %v vs %v", LinearizeThreshold, linearBranch, powerBranch)
	}

	linearBranch = float32(DelinearizeThreshold * linearSlope)
	powerBranch = float32(scale*math.Pow(DelinearizeThreshold, 1.0/gamma) - offset)
	if !floatNear(linearBranch, powerBranch, 1e-6) {
		t.Errorf("Delinearize branches disagree at %v: %v vs %v", DelinearizeThreshold, linearBranch, powerBranch)
	}

	// Step across each threshold by one float32 ulp.
	below := Delinearize(DelinearizeThreshold)
	above := Delinearize(math.Nextafter32(DelinearizeThreshold, 1))
	if !floatNear(below, above, 1e-6) {
		t.Errorf("Delinearize jumps at threshold: %v -> %v", below, above)
	}
	below = Linearize(LinearizeThreshold)
	above = Linearize(math.Nextafter32(LinearizeThreshold, 1))
	if !floatNear(below, above, 1e-6) {
		t.Errorf("Linearize jumps at threshold: %v -> %v", below, above)
	}
}

// TestRoundTrip tests that Delinearize(Linearize(x)) returns x.
func TestRoundTrip(t *testing.T) {
	const maxError = 1e-5

	for i := 0; i <= 1000; i++ {
		linear := float32(i) / 1000.0
		roundTrip := Linearize(Delinearize(linear))
		if !floatNear(roundTrip, linear, maxError) {
			t.Errorf("Round-trip error for %v: got %v", linear, roundTrip)
		}
	}

	for i := 0; i <= 255; i++ {
		encoded := float32(i) / 255.0
		roundTrip := Delinearize(Linearize(encoded))
		if !floatNear(roundTrip, encoded, maxError) {
			t.Errorf("Reverse round-trip error for %d/255: got %v, want %v", i, roundTrip, encoded)
		}
	}
}

// TestMonotonic ensures both curves never decrease.
func TestMonotonic(t *testing.T) {
	prevLin, prevEnc := Linearize(0), Delinearize(0)
	for i := 1; i <= 4096; i++ {
		x := float32(i) / 4096.0
		lin, enc := Linearize(x), Delinearize(x)
		if lin < prevLin {
			t.Fatalf("Linearize not monotonic at %v: %v < %v", x, lin, prevLin)
		}
		if enc < prevEnc {
			t.Fatalf("Delinearize not monotonic at %v: %v < %v", x, enc, prevEnc)
		}
		prevLin, prevEnc = lin, enc
	}
}

// floatNear checks if two float32 values are within epsilon of each other.
func floatNear(a, b, epsilon float32) bool {
	return math.Abs(float64(a-b)) < float64(epsilon)
}
