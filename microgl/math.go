package microgl

import "math"

// Scalar is the numeric type used by microgl math operations.
type Scalar = float32

const degToRad = math.Pi / 180

// epsilon below which lengths and divisors are treated as zero.
const epsilon = 1e-4

// Vec3 is a 3D vector. It is a plain value type used for positions,
// directions and normals alike.
type Vec3 struct {
	X, Y, Z Scalar
}

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) Scalar {
	return Scalar(math.Sqrt(float64(Dot(v, v))))
}

// Normalize returns v scaled to unit length. Vectors shorter than epsilon
// normalize to the zero vector.
func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l < epsilon {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func Clamp01(v Scalar) Scalar {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Mat4 is a row-major 4x4 matrix: m[row*4+col]. A Vec3 is transformed as a
// column vector extended with w=1 (right-multiplication).
type Mat4 [16]Scalar

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row*4+col] =
				a[row*4+0]*b[0*4+col] +
					a[row*4+1]*b[1*4+col] +
					a[row*4+2]*b[2*4+col] +
					a[row*4+3]*b[3*4+col]
		}
	}
	return out
}

func Mat4Translate(x, y, z Scalar) Mat4 {
	m := Mat4Identity()
	m[3] = x
	m[7] = y
	m[11] = z
	return m
}

func Mat4Scale(x, y, z Scalar) Mat4 {
	m := Mat4Identity()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// Mat4RotateX rotates about the X axis. The angle is in degrees.
func Mat4RotateX(deg Scalar) Mat4 {
	c, s := cossin(deg)
	m := Mat4Identity()
	m[5], m[6] = c, -s
	m[9], m[10] = s, c
	return m
}

// Mat4RotateY rotates about the Y axis. The angle is in degrees.
func Mat4RotateY(deg Scalar) Mat4 {
	c, s := cossin(deg)
	m := Mat4Identity()
	m[0], m[2] = c, s
	m[8], m[10] = -s, c
	return m
}

// Mat4RotateZ rotates about the Z axis. The angle is in degrees.
func Mat4RotateZ(deg Scalar) Mat4 {
	c, s := cossin(deg)
	m := Mat4Identity()
	m[0], m[1] = c, -s
	m[4], m[5] = s, c
	return m
}

func cossin(deg Scalar) (c, s Scalar) {
	rad := float64(deg) * degToRad
	return Scalar(math.Cos(rad)), Scalar(math.Sin(rad))
}

// Mat4Perspective builds a perspective projection. fov is the vertical field
// of view in degrees.
func Mat4Perspective(fovDeg, aspect, near, far Scalar) Mat4 {
	tanHalf := Scalar(math.Tan(float64(fovDeg) * degToRad / 2))
	var m Mat4
	m[0] = 1 / (aspect * tanHalf)
	m[5] = 1 / tanHalf
	m[10] = -(far + near) / (far - near)
	m[11] = -(2 * far * near) / (far - near)
	m[14] = -1
	return m
}

// Mat4LookAt builds a view matrix for a camera at eye looking at target.
// A forward vector parallel to up yields a stable but degenerate matrix
// rather than an error.
func Mat4LookAt(eye, target, up Vec3) Mat4 {
	f := Normalize(target.Sub(eye))
	r := Normalize(Cross(f, up))
	u := Cross(r, f)

	m := Mat4Identity()
	m[0], m[1], m[2] = r.X, r.Y, r.Z
	m[4], m[5], m[6] = u.X, u.Y, u.Z
	m[8], m[9], m[10] = -f.X, -f.Y, -f.Z
	m[3] = -Dot(r, eye)
	m[7] = -Dot(u, eye)
	m[11] = Dot(f, eye)
	return m
}

// TransformPoint applies the full 4x4 transform including the homogeneous
// divide. A near-zero w is clamped up to epsilon so projection of points on
// the camera plane stays finite.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	w := m[12]*p.X + m[13]*p.Y + m[14]*p.Z + m[15]
	if w > -epsilon && w < epsilon {
		w = epsilon
	}
	return Vec3{
		X: (m[0]*p.X + m[1]*p.Y + m[2]*p.Z + m[3]) / w,
		Y: (m[4]*p.X + m[5]*p.Y + m[6]*p.Z + m[7]) / w,
		Z: (m[8]*p.X + m[9]*p.Y + m[10]*p.Z + m[11]) / w,
	}
}

// TransformDirection applies only the rotation/scale part of the transform,
// ignoring translation and the homogeneous divide.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return Vec3{
		X: m[0]*d.X + m[1]*d.Y + m[2]*d.Z,
		Y: m[4]*d.X + m[5]*d.Y + m[6]*d.Z,
		Z: m[8]*d.X + m[9]*d.Y + m[10]*d.Z,
	}
}
