package behaviour

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrCycle     = errors.New("behaviour: child is this transform or one of its ancestors")
	ErrHasParent = errors.New("behaviour: child already has a parent")
	ErrSingular  = errors.New("behaviour: parent world matrix is not invertible")

	ErrUnknownComponent = errors.New("behaviour: unknown component")
)

// Transform is a node in the transform hierarchy.
//
// The world matrix is cached and recomputed eagerly: every mutating call
// refreshes this node and all of its descendants (depth-first, in insertion
// order) before returning, so a world matrix read is never stale.
type Transform struct {
	local    mgl32.Mat4
	world    mgl32.Mat4
	parent   *Transform // not owned
	children []*Transform
}

func NewTransform(start mgl32.Mat4) *Transform {
	return &Transform{
		local: start,
		world: start,
	}
}

// Translate moves the transform along its own local axes
func (t *Transform) Translate(dx, dy, dz float32) {
	t.transformLocal(mgl32.Translate3D(dx, dy, dz))
}

// TranslateWorld moves the transform by an offset expressed in the parent's
// frame (the world frame for a root). A singular local matrix inverts to the
// zero matrix, which leaves the pose unchanged.
func (t *Transform) TranslateWorld(dx, dy, dz float32) {
	offset := t.local.Inv().Mul4x1(mgl32.Vec4{dx, dy, dz, 0})
	t.transformLocal(mgl32.Translate3D(offset.X(), offset.Y(), offset.Z()))
}

// Rotate applies an XYZ Euler rotation (radians) in local space
func (t *Transform) Rotate(dx, dy, dz float32) {
	rotation := mgl32.HomogRotate3DX(dx).Mul4(mgl32.HomogRotate3DY(dy)).Mul4(mgl32.HomogRotate3DZ(dz))
	t.transformLocal(rotation)
}

// AddChild attaches child under t, keeping the child's world pose as it was
func (t *Transform) AddChild(child *Transform) error {
	if child.parent != nil {
		return ErrHasParent
	}
	for n := t; n != nil; n = n.parent {
		if n == child {
			return ErrCycle
		}
	}
	if t.world.Det() == 0 {
		return ErrSingular
	}

	t.children = append(t.children, child)
	child.parent = t
	child.local = t.world.Inv().Mul4(child.local)
	child.refreshWorldMatrix()
	return nil
}

// RemoveChild detaches child and makes it a root at its current world pose.
// Returns false if child is not a direct child of t.
func (t *Transform) RemoveChild(child *Transform) bool {
	for i, c := range t.children {
		if c == child {
			t.children = append(t.children[:i], t.children[i+1:]...)
			child.parent = nil
			child.local = child.world
			child.refreshWorldMatrix()
			return true
		}
	}
	return false
}

// SetRight turns the transform so its right axis points along newRight,
// deriving forward and up from the current up vector.
func (t *Transform) SetRight(newRight mgl32.Vec3) {
	newRight = newRight.Normalize()
	newForward := newRight.Cross(t.Up()).Normalize()
	newUp := newForward.Cross(newRight).Normalize()

	t.SetRotationMatrix(newRight, newUp, newForward)
}

// SetRotationMatrix replaces the basis of the local matrix with u, v, w and
// keeps the world position. Any scale is discarded.
func (t *Transform) SetRotationMatrix(u, v, w mgl32.Vec3) {
	pos := t.Position()
	t.local = mgl32.Mat4FromCols(u.Vec4(0), v.Vec4(0), w.Vec4(0), pos.Vec4(1))
	t.refreshWorldMatrix()
}

// SetLocalMatrix overwrites the local matrix
func (t *Transform) SetLocalMatrix(m mgl32.Mat4) {
	t.local = m
	t.refreshWorldMatrix()
}

func (t *Transform) Position() mgl32.Vec3 {
	return t.world.Col(3).Vec3()
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.world.Col(2).Vec3()
}

func (t *Transform) Right() mgl32.Vec3 {
	return t.world.Col(0).Vec3()
}

func (t *Transform) Up() mgl32.Vec3 {
	return t.world.Col(1).Vec3()
}

func (t *Transform) LocalMatrix() mgl32.Mat4 {
	return t.local
}

func (t *Transform) WorldMatrix() mgl32.Mat4 {
	return t.world
}

func (t *Transform) Parent() *Transform {
	return t.parent
}

// Children returns a copy of the child list
func (t *Transform) Children() []*Transform {
	return append([]*Transform(nil), t.children...)
}

func (t *Transform) transformLocal(applied mgl32.Mat4) {
	t.local = t.local.Mul4(applied)
	t.refreshWorldMatrix()
}

func (t *Transform) refreshWorldMatrix() {
	if t.parent == nil {
		t.world = t.local
	} else {
		t.world = t.parent.world.Mul4(t.local)
	}

	for _, child := range t.children {
		child.refreshWorldMatrix()
	}
}
