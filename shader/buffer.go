package shader

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/colorspace"
)

// ElementSize is the size in bytes of one vec4<f32> buffer element.
const ElementSize = 16

// PackSrgb encodes colors as the input buffer of EntrySrgbToOklab.
// The w component is set to 1.
func PackSrgb(colors []colorspace.Srgb) []byte {
	buf := make([]byte, len(colors)*ElementSize)
	for i, c := range colors {
		putVec4(buf[i*ElementSize:], c.R, c.G, c.B, 1)
	}
	return buf
}

// PackOklab encodes colors as the input buffer of EntryOklabToSrgb.
// The w component is set to 1.
func PackOklab(colors []colorspace.Oklab) []byte {
	buf := make([]byte, len(colors)*ElementSize)
	for i, c := range colors {
		putVec4(buf[i*ElementSize:], c.L, c.A, c.B, 1)
	}
	return buf
}

// UnpackOklab decodes the output buffer of EntrySrgbToOklab.
func UnpackOklab(buf []byte) ([]colorspace.Oklab, error) {
	if len(buf)%ElementSize != 0 {
		return nil, fmt.Errorf("shader: buffer length %d is not a multiple of %d", len(buf), ElementSize)
	}
	out := make([]colorspace.Oklab, len(buf)/ElementSize)
	for i := range out {
		l, a, b, _ := getVec4(buf[i*ElementSize:])
		out[i] = colorspace.Oklab{L: l, A: a, B: b}
	}
	return out, nil
}

// UnpackSrgb decodes the output buffer of EntryOklabToSrgb.
func UnpackSrgb(buf []byte) ([]colorspace.Srgb, error) {
	if len(buf)%ElementSize != 0 {
		return nil, fmt.Errorf("shader: buffer length %d is not a multiple of %d", len(buf), ElementSize)
	}
	out := make([]colorspace.Srgb, len(buf)/ElementSize)
	for i := range out {
		r, g, b, _ := getVec4(buf[i*ElementSize:])
		out[i] = colorspace.Srgb{R: r, G: g, B: b}
	}
	return out, nil
}

func putVec4(buf []byte, x, y, z, w float32) {
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(x))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(y))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(z))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(w))
}

func getVec4(buf []byte) (x, y, z, w float32) {
	x = math.Float32frombits(binary.LittleEndian.Uint32(buf[0:]))
	y = math.Float32frombits(binary.LittleEndian.Uint32(buf[4:]))
	z = math.Float32frombits(binary.LittleEndian.Uint32(buf[8:]))
	w = math.Float32frombits(binary.LittleEndian.Uint32(buf[12:]))
	return x, y, z, w
}
