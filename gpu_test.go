package colorspace

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestGPUColor(t *testing.T) {
	got := LinearRgb{R: 0.25, G: 0.5, B: 1}.GPUColor()
	want := gputypes.Color{R: 0.25, G: 0.5, B: 1, A: 1}
	if got != want {
		t.Errorf("GPUColor() = %+v, want %+v", got, want)
	}
}

func TestClearColor(t *testing.T) {
	gray := Srgb{R: 0.5, G: 0.5, B: 0.5}
	tests := []struct {
		name   string
		format gputypes.TextureFormat
		want   gputypes.Color
	}{
		{"srgb target", gputypes.TextureFormatRGBA8UnormSrgb, gputypes.Color{R: 0.21404, G: 0.21404, B: 0.21404, A: 1}},
		{"bgra srgb target", gputypes.TextureFormatBGRA8UnormSrgb, gputypes.Color{R: 0.21404, G: 0.21404, B: 0.21404, A: 1}},
		{"unorm target", gputypes.TextureFormatRGBA8Unorm, gputypes.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}},
		{"bgra unorm target", gputypes.TextureFormatBGRA8Unorm, gputypes.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClearColor(gray, tt.format)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
				t.Errorf("ClearColor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSrgbFromGPURoundTrip(t *testing.T) {
	formats := []gputypes.TextureFormat{
		gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatRGBA8Unorm,
	}
	c := Srgb{R: 0.5, G: 0.3, B: 0.8}
	for _, f := range formats {
		got := SrgbFromGPU(ClearColor(c, f), f)
		if diff := cmp.Diff(c, got, approx(1e-5)); diff != "" {
			t.Errorf("format %v round trip mismatch (-want +got):\n%s", f, diff)
		}
	}
}
