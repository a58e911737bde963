// Package glmat builds the 4x4 transforms used by the lesson renderers.
//
// Matrices are f32.Mat4 values indexed m[row][col] and applied to column
// vectors, the same convention as android.opengl.Matrix. Use Serialize4 to
// produce the column-major slice expected by gl.Context.UniformMatrix4fv.
package glmat

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

// Identity returns the identity matrix.
func Identity() f32.Mat4 {
	return f32.Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the product a*b. The transform b is applied first.
func Mul(a, b f32.Mat4) f32.Mat4 {
	var m f32.Mat4
	m.Mul(&a, &b)
	return m
}

// LookAt returns a view matrix for a camera at eye looking toward center
// with the given up direction.
func LookAt(eye, center, up f32.Vec3) f32.Mat4 {
	f := normalize(sub(center, eye))
	s := normalize(cross(f, up))
	u := cross(s, f)
	return f32.Mat4{
		{s[0], s[1], s[2], -dot(s, eye)},
		{u[0], u[1], u[2], -dot(u, eye)},
		{-f[0], -f[1], -f[2], dot(f, eye)},
		{0, 0, 0, 1},
	}
}

// Frustum returns a perspective projection for the view volume bounded by
// the given clip planes. A volume with zero width, height or depth has no
// projection and yields the zero matrix.
func Frustum(left, right, bottom, top, near, far float32) f32.Mat4 {
	if left == right || bottom == top || near == far {
		return f32.Mat4{}
	}
	rw := 1 / (right - left)
	rh := 1 / (top - bottom)
	rd := 1 / (near - far)
	return f32.Mat4{
		{2 * near * rw, 0, (right + left) * rw, 0},
		{0, 2 * near * rh, (top + bottom) * rh, 0},
		{0, 0, (far + near) * rd, 2 * far * near * rd},
		{0, 0, -1, 0},
	}
}

// RotateZ returns a rotation of deg degrees about the Z axis.
func RotateZ(deg float32) f32.Mat4 {
	// f32.Sin and f32.Cos are table lookups, too coarse for a model matrix.
	s64, c64 := math.Sincos(float64(deg) * (math.Pi / 180))
	s, c := float32(s64), float32(c64)
	return f32.Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Transform returns m*v.
func Transform(m f32.Mat4, v f32.Vec4) f32.Vec4 {
	var out f32.Vec4
	for i := range m {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2] + m[i][3]*v[3]
	}
	return out
}

// Serialize4 returns a slice containing m serialized into column-major order.
// If len(dst) is at least 16 then a slice of dst is used to hold the result.
func Serialize4(dst []float32, m *f32.Mat4) []float32 {
	if len(dst) < 16 {
		dst = make([]float32, 16)
	}
	dst = dst[:16]
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			dst[4*col+row] = m[row][col]
		}
	}
	return dst
}

func sub(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot(a, b f32.Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b f32.Vec3) f32.Vec3 {
	return f32.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// normalize leaves the zero vector unchanged.
func normalize(v f32.Vec3) f32.Vec3 {
	n := float32(math.Sqrt(float64(dot(v, v))))
	if n == 0 {
		return v
	}
	return f32.Vec3{v[0] / n, v[1] / n, v[2] / n}
}
