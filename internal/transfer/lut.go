package transfer

// linearizeLUT maps every 8-bit encoded value to linear light.
// 256 entries, 1KB.
var linearizeLUT [256]float32

// delinearizeLUT maps linear light quantized to 12 bits back to an 8-bit
// encoded value. 4096 entries is enough precision for 8-bit output.
var delinearizeLUT [4096]uint8

func init() {
	for i := range linearizeLUT {
		linearizeLUT[i] = Linearize(float32(i) / 255.0)
	}

	for i := range delinearizeLUT {
		s := Delinearize(float32(i) / 4095.0)
		v := int(s*255.0 + 0.5)
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		//nolint:gosec // G115: v is clamped to [0,255] range
		delinearizeLUT[i] = uint8(v)
	}
}

// LinearizeByte converts an 8-bit encoded component to linear light
// using a lookup table.
//
// Example:
//
//	l := LinearizeByte(128) // ~0.2159 (not 0.5!)
func LinearizeByte(s uint8) float32 {
	return linearizeLUT[s]
}

// DelinearizeByte converts linear light to an 8-bit encoded component
// using a lookup table. Input is clamped to [0, 1]; NaN maps to 0.
//
// Example:
//
//	s := DelinearizeByte(0.5) // 188 (not 128!)
func DelinearizeByte(l float32) uint8 {
	if !(l > 0) {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	index := int(l*4095.0 + 0.5)
	if index > 4095 {
		index = 4095
	}
	return delinearizeLUT[index]
}
