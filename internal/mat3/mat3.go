// Package mat3 provides the fixed-size float32 matrix math used by the
// color space conversions.
package mat3

// Vec3 is a column vector of three components.
type Vec3 [3]float32

// Mat3 is a 3x3 matrix in row-major order:
//
//	| m[0][0]  m[0][1]  m[0][2] |
//	| m[1][0]  m[1][1]  m[1][2] |
//	| m[2][0]  m[2][1]  m[2][2] |
type Mat3 [3][3]float32

// Apply returns m·v.
func (m *Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}
