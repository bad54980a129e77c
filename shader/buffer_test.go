package shader

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/colorspace"
)

func TestPackSrgbLayout(t *testing.T) {
	buf := PackSrgb([]colorspace.Srgb{
		{R: 0.25, G: 0.5, B: 0.75},
		colorspace.SrgbWhite,
	})
	if len(buf) != 2*ElementSize {
		t.Fatalf("len = %d, want %d", len(buf), 2*ElementSize)
	}

	want := []float32{0.25, 0.5, 0.75, 1, 1, 1, 1, 1}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("float %d = %v, want %v", i, got, w)
		}
	}
}

func TestPackRoundTrip(t *testing.T) {
	srgb := []colorspace.Srgb{
		colorspace.SrgbBlack,
		{R: 0.5, G: 0.3, B: 0.8},
		{R: 1.5, G: -0.25, B: 0},
	}
	gotSrgb, err := UnpackSrgb(PackSrgb(srgb))
	if err != nil {
		t.Fatalf("UnpackSrgb: %v", err)
	}
	if diff := cmp.Diff(srgb, gotSrgb); diff != "" {
		t.Errorf("Srgb round trip mismatch (-want +got):\n%s", diff)
	}

	lab := []colorspace.Oklab{
		colorspace.OklabWhite,
		{L: 0.66066, A: 0.07997, B: -0.09592},
	}
	gotLab, err := UnpackOklab(PackOklab(lab))
	if err != nil {
		t.Fatalf("UnpackOklab: %v", err)
	}
	if diff := cmp.Diff(lab, gotLab); diff != "" {
		t.Errorf("Oklab round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestUnpackEmpty(t *testing.T) {
	got, err := UnpackOklab(nil)
	if err != nil || len(got) != 0 {
		t.Errorf("UnpackOklab(nil) = %v, %v; want empty, nil", got, err)
	}
}

func TestUnpackBadLength(t *testing.T) {
	if _, err := UnpackOklab(make([]byte, 20)); err == nil {
		t.Error("UnpackOklab(20 bytes) error = nil, want error")
	}
	if _, err := UnpackSrgb(make([]byte, 15)); err == nil {
		t.Error("UnpackSrgb(15 bytes) error = nil, want error")
	}
}
