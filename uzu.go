package uzu

import "math"

// Vec2 is a 2D vector used for pointer and touch positions in screen space.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Vec3 is a 3D vector used for entity placement.
type Vec3 struct {
	X, Y, Z float64
}

// Vec3One is the default scale (no scaling).
var Vec3One = Vec3{1, 1, 1}

// Quat is a rotation quaternion. The zero value is not a valid rotation;
// use QuatIdentity.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the no-rotation quaternion.
var QuatIdentity = Quat{0, 0, 0, 1}

// QuatFromAngle returns a rotation of radians around the Z axis, which is the
// only axis 2D games care about.
func QuatFromAngle(radians float64) Quat {
	s, c := math.Sincos(radians / 2)
	return Quat{Z: s, W: c}
}

// Angle returns the rotation around the Z axis in radians.
func (q Quat) Angle() float64 {
	return 2 * math.Atan2(q.Z, q.W)
}

// Scope is a named grouping that entities are parented under. Pools own one
// scope each; callers may move entities to their own scopes while active.
type Scope struct {
	Name   string
	Parent *Scope
}

// NewScope creates a scope nested under parent (which may be nil).
func NewScope(name string, parent *Scope) *Scope {
	return &Scope{Name: name, Parent: parent}
}

// Path returns the scope names from the outermost ancestor down to s,
// joined by "/".
func (s *Scope) Path() string {
	if s == nil {
		return ""
	}
	if s.Parent == nil {
		return s.Name
	}
	return s.Parent.Path() + "/" + s.Name
}
