package thicket

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// translationAffine returns a pure translation.
func translationAffine(dx, dy float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, dx, dy}
}

// rotationAffine returns a rotation by degrees. Positive angles turn the
// X axis toward the Y axis, which is clockwise on screen.
func rotationAffine(degrees float64) [6]float64 {
	// Snap quarter turns so axis-aligned widgets stay on whole pixels.
	switch math.Mod(math.Mod(degrees, 360)+360, 360) {
	case 0:
		return identityTransform
	case 90:
		return [6]float64{0, 1, -1, 0, 0, 0}
	case 180:
		return [6]float64{-1, 0, 0, -1, 0, 0}
	case 270:
		return [6]float64{0, -1, 1, 0, 0, 0}
	}
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

// TransformPoint maps a point through an affine matrix in [a, b, c, d, tx, ty]
// layout, as stored on draw commands.
func TransformPoint(m [6]float64, x, y float64) (float64, float64) {
	return transformPoint(m, x, y)
}

// InverseTransformPoint maps a point back through the inverse of m.
func InverseTransformPoint(m [6]float64, x, y float64) (float64, float64) {
	return transformPoint(invertAffine(m), x, y)
}
