package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func checkIndices(t *testing.T, g *Geometry) {
	t.Helper()
	if len(g.Faces)%3 != 0 {
		t.Errorf("Face count %d is not a multiple of 3", len(g.Faces))
	}
	for i, f := range g.Faces {
		if int(f) >= g.VertexCount() {
			t.Fatalf("Face index %d = %d out of range (%d vertices)", i, f, g.VertexCount())
		}
	}
}

func checkUnitNormals(t *testing.T, g *Geometry) {
	t.Helper()
	for i := 0; i < g.VertexCount(); i++ {
		if l := g.Normal(i).Len(); math.Abs(float64(l-1)) > 1e-4 {
			t.Fatalf("Normal %d has length %v", i, l)
		}
	}
}

func TestBox(t *testing.T) {
	g := Box()

	assert.Equal(t, 24, g.VertexCount())
	assert.Len(t, g.Faces, 36)
	checkIndices(t, g)
	checkUnitNormals(t, g)

	center, radius := g.BoundingSphere()
	assert.InDelta(t, 0, center.Len(), 1e-5)
	assert.InDelta(t, math.Sqrt(3), radius, 1e-5)
}

func TestBoxNormalsPointOutward(t *testing.T) {
	g := Box()

	for i := 0; i < g.VertexCount(); i++ {
		if g.Position(i).Dot(g.Normal(i)) <= 0 {
			t.Errorf("Vertex %d normal %v points inward", i, g.Normal(i))
		}
	}
}

func TestCylinder(t *testing.T) {
	g := Cylinder(16)

	assert.Equal(t, 4*16+6, g.VertexCount())
	assert.Len(t, g.Faces, 12*16)
	checkIndices(t, g)
	checkUnitNormals(t, g)

	for i := 0; i < g.VertexCount(); i++ {
		p := g.Position(i)
		if p.X() < -0.5-1e-6 || p.X() > 0.5+1e-6 {
			t.Fatalf("Vertex %d outside the slab: %v", i, p)
		}
		if r := math.Hypot(float64(p.Y()), float64(p.Z())); r > 1+1e-5 {
			t.Fatalf("Vertex %d outside the radius: %v", i, p)
		}
	}
}

func TestCylinderClampsSegments(t *testing.T) {
	assert.Equal(t, Cylinder(3).VertexCount(), Cylinder(1).VertexCount())
}

func TestMergeTransformsPositionsAndNormals(t *testing.T) {
	g := &Geometry{}
	g.Merge(Box(), mgl32.Translate3D(5, 0, 0).Mul4(mgl32.Scale3D(2, 1, 1)))
	g.Merge(Box(), mgl32.Ident4())

	assert.Equal(t, 48, g.VertexCount())
	assert.Len(t, g.Faces, 72)
	checkIndices(t, g)
	checkUnitNormals(t, g)
	assert.Equal(t, uint32(24), g.Faces[36], "second copy must be re-based")

	for i := 0; i < 24; i++ {
		x := g.Position(i).X()
		if x < 3-1e-5 || x > 7+1e-5 {
			t.Fatalf("Vertex %d not moved into 3..7: %v", i, g.Position(i))
		}
	}
}

func TestArrowBounds(t *testing.T) {
	g := Arrow(4)
	checkIndices(t, g)

	minX, maxX := float32(math.MaxFloat32), float32(-math.MaxFloat32)
	for i := 0; i < g.VertexCount(); i++ {
		x := g.Position(i).X()
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	assert.InDelta(t, -2, minX, 1e-4)
	assert.True(t, maxX > 2, "the head sits past the end of the shaft")
}

func TestBow(t *testing.T) {
	g := Bow(6, 4)
	checkIndices(t, g)
	assert.Equal(t, 24*(2*4+1), g.VertexCount(), "eight limb segments and a string")

	for i := 0; i < g.VertexCount(); i++ {
		if y := g.Position(i).Y(); math.Abs(float64(y)) > 3.5 {
			t.Fatalf("Vertex %d outside the bow height: %v", i, g.Position(i))
		}
	}

	// The string is the last box: full height, strung behind the grip
	stringX := 3 * (math.Cos(math.Pi/4) - 1)
	var top float64
	for i := g.VertexCount() - 24; i < g.VertexCount(); i++ {
		p := g.Position(i)
		assert.InDelta(t, stringX, float64(p.X()), 0.021)
		top = math.Max(top, math.Abs(float64(p.Y())))
	}
	assert.InDelta(t, 3, top, 1e-4, "the string spans the full height")
}

func TestEmptyBoundingSphere(t *testing.T) {
	center, radius := (&Geometry{}).BoundingSphere()

	assert.Equal(t, mgl32.Vec3{}, center)
	assert.Equal(t, float32(0), radius)
}
