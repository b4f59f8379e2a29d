package behaviour

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

func near(a, b []float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > tolerance {
			return false
		}
	}
	return true
}

func assertMatNear(t *testing.T, expected, actual mgl32.Mat4, msgAndArgs ...interface{}) {
	t.Helper()
	if !near(expected[:], actual[:]) {
		assert.Fail(t, fmt.Sprintf("matrices differ\nexpected: %v\nactual:   %v", expected, actual), msgAndArgs...)
	}
}

func assertVecNear(t *testing.T, expected, actual mgl32.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	if !near(expected[:], actual[:]) {
		assert.Fail(t, fmt.Sprintf("vectors differ: expected %v, got %v", expected, actual), msgAndArgs...)
	}
}

// checkHierarchy asserts world == parent.world * local for t and every descendant
func checkHierarchy(t *testing.T, node *Transform) {
	t.Helper()
	expected := node.LocalMatrix()
	if node.Parent() != nil {
		expected = node.Parent().WorldMatrix().Mul4(node.LocalMatrix())
	}
	assertMatNear(t, expected, node.WorldMatrix())
	for _, child := range node.Children() {
		checkHierarchy(t, child)
	}
}

func TestNewTransform(t *testing.T) {
	start := mgl32.Translate3D(1, 2, 3)
	tr := NewTransform(start)

	if tr.LocalMatrix() != start || tr.WorldMatrix() != start {
		t.Error("Local and world matrices should both start at the given pose")
	}
	if tr.Parent() != nil {
		t.Error("New transform should be a root")
	}
	if len(tr.Children()) != 0 {
		t.Errorf("Expected no children, got %d", len(tr.Children()))
	}
}

func TestRootWorldEqualsLocal(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := NewTransform(mgl32.Ident4())

	for i := 0; i < 50; i++ {
		if rng.Intn(2) == 0 {
			tr.Translate(rng.Float32()*4-2, rng.Float32()*4-2, rng.Float32()*4-2)
		} else {
			tr.Rotate(rng.Float32(), rng.Float32(), rng.Float32())
		}
		if tr.WorldMatrix() != tr.LocalMatrix() {
			t.Fatalf("Root world matrix diverged from local after step %d", i)
		}
	}
}

func TestTranslateLocalAxes(t *testing.T) {
	tr := NewTransform(mgl32.HomogRotate3DZ(math.Pi / 2))

	tr.Translate(1, 0, 0)

	// Local x points along world y after a quarter turn about z
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, tr.Position())
}

func TestTranslateWorldAxes(t *testing.T) {
	tr := NewTransform(mgl32.HomogRotate3DZ(math.Pi / 2))

	tr.TranslateWorld(1, 0, 0)

	assertVecNear(t, mgl32.Vec3{1, 0, 0}, tr.Position())
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, tr.Right(), "orientation must not change")
}

func TestTranslateWorldScaled(t *testing.T) {
	tr := NewTransform(mgl32.Scale3D(2, 2, 2))

	tr.TranslateWorld(4, 0, 0)

	assertVecNear(t, mgl32.Vec3{4, 0, 0}, tr.Position())
}

func TestTranslateWorldSingularIsNoop(t *testing.T) {
	start := mgl32.Scale3D(0, 1, 1)
	tr := NewTransform(start)

	tr.TranslateWorld(3, 3, 3)

	assertMatNear(t, start, tr.WorldMatrix())
}

func TestTranslateZeroIsNoop(t *testing.T) {
	start := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.HomogRotate3DY(0.7)).Mul4(mgl32.Scale3D(2, 1, 0.5))
	tr := NewTransform(start)

	tr.Translate(0, 0, 0)
	tr.TranslateWorld(0, 0, 0)

	assertMatNear(t, start, tr.WorldMatrix())
}

func TestRotateOrderXYZ(t *testing.T) {
	tr := NewTransform(mgl32.Ident4())

	tr.Rotate(0.3, 0.5, 0.7)

	expected := mgl32.HomogRotate3DX(0.3).Mul4(mgl32.HomogRotate3DY(0.5)).Mul4(mgl32.HomogRotate3DZ(0.7))
	assertMatNear(t, expected, tr.LocalMatrix())

	other := mgl32.HomogRotate3DZ(0.7).Mul4(mgl32.HomogRotate3DY(0.5)).Mul4(mgl32.HomogRotate3DX(0.3))
	local := tr.LocalMatrix()
	assert.False(t, near(other[:], local[:]), "ZYX order should give a different matrix")
}

func TestBasisExtraction(t *testing.T) {
	tr := NewTransform(mgl32.Translate3D(5, 6, 7).Mul4(mgl32.HomogRotate3DY(math.Pi / 2)))

	assertVecNear(t, mgl32.Vec3{5, 6, 7}, tr.Position())
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, tr.Right())
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, tr.Up())
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, tr.Forward())
}

func TestAddChildPreservesWorldPose(t *testing.T) {
	parent := NewTransform(mgl32.Translate3D(3, -2, 1).Mul4(mgl32.HomogRotate3DY(0.8)).Mul4(mgl32.Scale3D(2, 2, 2)))
	child := NewTransform(mgl32.Translate3D(10, 0, 4).Mul4(mgl32.HomogRotate3DX(0.4)))
	before := child.WorldMatrix()

	require.NoError(t, parent.AddChild(child))

	assertMatNear(t, before, child.WorldMatrix())
	assert.Equal(t, parent, child.Parent())
	assert.Equal(t, []*Transform{child}, parent.Children())
	checkHierarchy(t, parent)
}

func TestHierarchyPropagation(t *testing.T) {
	root := NewTransform(mgl32.Ident4())
	mid := NewTransform(mgl32.Translate3D(1, 0, 0))
	leafA := NewTransform(mgl32.Translate3D(2, 0, 0))
	leafB := NewTransform(mgl32.Translate3D(0, 3, 0))
	require.NoError(t, root.AddChild(mid))
	require.NoError(t, mid.AddChild(leafA))
	require.NoError(t, mid.AddChild(leafB))

	leafWorld := leafA.WorldMatrix()

	root.Rotate(0, 0, math.Pi/2)
	checkHierarchy(t, root)

	mid.Translate(0, 0, 5)
	checkHierarchy(t, root)

	root.SetLocalMatrix(mgl32.HomogRotate3DZ(math.Pi / 2))
	checkHierarchy(t, root)
	assertVecNear(t, mgl32.HomogRotate3DZ(math.Pi/2).Mul4(leafWorld.Mul4(mgl32.Translate3D(0, 0, 5))).Col(3).Vec3(), leafA.Position())
	assertVecNear(t, mgl32.Vec3{0, 2, 5}, leafA.Position())
}

func TestAddChildRejectsCycles(t *testing.T) {
	a := NewTransform(mgl32.Ident4())
	b := NewTransform(mgl32.Ident4())
	c := NewTransform(mgl32.Ident4())
	require.NoError(t, a.AddChild(b))
	require.NoError(t, b.AddChild(c))

	assert.ErrorIs(t, a.AddChild(a), ErrCycle)
	assert.ErrorIs(t, c.AddChild(a), ErrCycle)
	assert.ErrorIs(t, a.AddChild(c), ErrHasParent)
	assert.Len(t, a.Children(), 1)
}

func TestAddChildRejectsSingularParent(t *testing.T) {
	parent := NewTransform(mgl32.Scale3D(0, 1, 1))
	child := NewTransform(mgl32.Ident4())

	assert.ErrorIs(t, parent.AddChild(child), ErrSingular)
	assert.Nil(t, child.Parent())
}

func TestRemoveChildPreservesWorldPose(t *testing.T) {
	parent := NewTransform(mgl32.Translate3D(4, 4, 4).Mul4(mgl32.HomogRotate3DZ(1)))
	child := NewTransform(mgl32.Translate3D(1, 0, 0))
	require.NoError(t, parent.AddChild(child))
	parent.Translate(2, 0, 0)
	world := child.WorldMatrix()

	assert.True(t, parent.RemoveChild(child))
	assert.False(t, parent.RemoveChild(child))

	assert.Nil(t, child.Parent())
	assertMatNear(t, world, child.WorldMatrix())
	assert.Equal(t, child.WorldMatrix(), child.LocalMatrix())

	parent.Translate(10, 0, 0)
	assertMatNear(t, world, child.WorldMatrix(), "detached child must not follow its old parent")
}

func TestSetRight(t *testing.T) {
	tr := NewTransform(mgl32.Translate3D(1, 2, 3))

	tr.SetRight(mgl32.Vec3{0, 0, -1})

	assertVecNear(t, mgl32.Vec3{0, 0, -1}, tr.Right())
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, tr.Up())
	assertVecNear(t, mgl32.Vec3{1, 0, 0}, tr.Forward())
	assertVecNear(t, mgl32.Vec3{1, 2, 3}, tr.Position())
}
