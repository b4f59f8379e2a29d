package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a fixed look-at camera. Moving it is up to whoever owns it;
// the range itself never does.
type Camera struct {
	Position   mgl32.Vec3
	Target     mgl32.Vec3 // Point the camera looks at
	Up         mgl32.Vec3
	Projection mgl32.Mat4

	Fov         float32 // Vertical, degrees
	Near        float32
	Far         float32
	AspectRatio float32
}

// Plane is n·p + d = 0 with a unit normal pointing into the frustum
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// Frustum planes in left, right, bottom, top, near, far order
type Frustum struct {
	Planes [6]Plane
}

// NewDefaultCamera frames the default range from the side
func NewDefaultCamera(width int32, height int32) *Camera {
	c := &Camera{Up: mgl32.Vec3{0, 1, 0}, AspectRatio: float32(width) / float32(height)}
	c.Place(mgl32.Vec3{20, 10, 60}, mgl32.Vec3{20, 0, 0}, 45, 1, 1000)
	return c
}

// Place sets the whole view in one call and rebuilds the projection
func (c *Camera) Place(position, target mgl32.Vec3, fov, near, far float32) {
	c.Position, c.Target = position, target
	c.Fov, c.Near, c.Far = fov, near, far
	c.UpdateProjection()
}

func (c *Camera) UpdateProjection() {
	c.Projection = mgl32.Perspective(mgl32.DegToRad(c.Fov), c.AspectRatio, c.Near, c.Far)
}

func (c *Camera) SetAspectRatio(aspectRatio float32) {
	c.AspectRatio = aspectRatio
	c.UpdateProjection()
}

// LookAt re-aims the camera without moving it
func (c *Camera) LookAt(target mgl32.Vec3) {
	c.Target = target
}

func (c *Camera) Front() mgl32.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return c.Projection
}

func (c *Camera) GetViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.GetViewMatrix())
}

// CalculateFrustum extracts the clip planes from the rows of the
// view-projection matrix (Gribb/Hartmann): row3 ± row0, row1, row2.
func (c *Camera) CalculateFrustum() Frustum {
	vp := c.GetViewProjection()
	w := vp.Row(3)

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		r := vp.Row(axis)
		f.Planes[2*axis] = planeFrom(w.Add(r))
		f.Planes[2*axis+1] = planeFrom(w.Sub(r))
	}
	return f
}

func planeFrom(v mgl32.Vec4) Plane {
	n := v.Vec3()
	length := n.Len()
	return Plane{Normal: n.Mul(1 / length), Distance: v.W() / length}
}

func (p *Plane) DistanceToPoint(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// IntersectsSphere reports whether any part of the sphere is inside
func (f *Frustum) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, plane := range f.Planes {
		if plane.DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}
