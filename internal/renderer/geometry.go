package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of floats per interleaved vertex:
// position (3), texture coordinate (2), normal (3)
const VertexStride = 8

// Geometry is CPU-side mesh data ready for upload
type Geometry struct {
	InterleavedData []float32
	Faces           []uint32
}

func (g *Geometry) VertexCount() int {
	return len(g.InterleavedData) / VertexStride
}

func (g *Geometry) Position(i int) mgl32.Vec3 {
	o := i * VertexStride
	return mgl32.Vec3{g.InterleavedData[o], g.InterleavedData[o+1], g.InterleavedData[o+2]}
}

func (g *Geometry) Normal(i int) mgl32.Vec3 {
	o := i*VertexStride + 5
	return mgl32.Vec3{g.InterleavedData[o], g.InterleavedData[o+1], g.InterleavedData[o+2]}
}

func (g *Geometry) addVertex(p mgl32.Vec3, u, v float32, n mgl32.Vec3) uint32 {
	index := uint32(g.VertexCount())
	g.InterleavedData = append(g.InterleavedData, p.X(), p.Y(), p.Z(), u, v, n.X(), n.Y(), n.Z())
	return index
}

// Merge appends a transformed copy of other. Normals go through the inverse
// transpose so non-uniform scale keeps them perpendicular.
func (g *Geometry) Merge(other *Geometry, transform mgl32.Mat4) {
	normalMatrix := transform.Mat3().Inv().Transpose()
	base := uint32(g.VertexCount())

	for i := 0; i < other.VertexCount(); i++ {
		o := i * VertexStride
		p := transform.Mul4x1(other.Position(i).Vec4(1)).Vec3()
		n := normalMatrix.Mul3x1(other.Normal(i))
		if n.Len() > 0 {
			n = n.Normalize()
		}
		g.addVertex(p, other.InterleavedData[o+3], other.InterleavedData[o+4], n)
	}
	for _, f := range other.Faces {
		g.Faces = append(g.Faces, base+f)
	}
}

// BoundingSphere is the vertex centroid and the distance to the farthest vertex
func (g *Geometry) BoundingSphere() (mgl32.Vec3, float32) {
	count := g.VertexCount()
	if count == 0 {
		return mgl32.Vec3{}, 0
	}

	var center mgl32.Vec3
	for i := 0; i < count; i++ {
		center = center.Add(g.Position(i))
	}
	center = center.Mul(1.0 / float32(count))

	var maxDistanceSq float32
	for i := 0; i < count; i++ {
		if d := g.Position(i).Sub(center).LenSqr(); d > maxDistanceSq {
			maxDistanceSq = d
		}
	}
	return center, float32(math.Sqrt(float64(maxDistanceSq)))
}

// Box is the cube spanning -1..1 on every axis, four vertices per face
func Box() *Geometry {
	g := &Geometry{}
	faces := []struct{ normal, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	for _, f := range faces {
		var idx [4]uint32
		for i, c := range corners {
			p := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1]))
			idx[i] = g.addVertex(p, (c[0]+1)/2, (c[1]+1)/2, f.normal)
		}
		g.Faces = append(g.Faces, idx[0], idx[1], idx[2], idx[0], idx[2], idx[3])
	}
	return g
}

// Cylinder is a capped cylinder of radius 1 around the x axis, spanning
// x = -0.5..0.5
func Cylinder(segments int) *Geometry {
	if segments < 3 {
		segments = 3
	}
	g := &Geometry{}

	ring := func(i int) (float32, float32) {
		a := 2 * math.Pi * float64(i) / float64(segments)
		return float32(math.Cos(a)), float32(math.Sin(a))
	}

	// Side
	for i := 0; i <= segments; i++ {
		c, s := ring(i)
		n := mgl32.Vec3{0, c, s}
		u := float32(i) / float32(segments)
		g.addVertex(mgl32.Vec3{-0.5, c, s}, u, 0, n)
		g.addVertex(mgl32.Vec3{0.5, c, s}, u, 1, n)
	}
	for i := 0; i < segments; i++ {
		a := uint32(2 * i)
		g.Faces = append(g.Faces, a, a+2, a+1, a+1, a+2, a+3)
	}

	// Caps
	for _, x := range []float32{-0.5, 0.5} {
		n := mgl32.Vec3{x * 2, 0, 0}
		center := g.addVertex(mgl32.Vec3{x, 0, 0}, 0.5, 0.5, n)
		for i := 0; i <= segments; i++ {
			c, s := ring(i)
			g.addVertex(mgl32.Vec3{x, c, s}, c/2+0.5, s/2+0.5, n)
		}
		for i := uint32(0); i < uint32(segments); i++ {
			if x > 0 {
				g.Faces = append(g.Faces, center, center+1+i, center+2+i)
			} else {
				g.Faces = append(g.Faces, center, center+2+i, center+1+i)
			}
		}
	}
	return g
}

// Arrow points along +x with its centre at the origin: a square shaft, a
// wider head and fletching at the tail
func Arrow(length float32) *Geometry {
	half := length / 2
	g := &Geometry{}
	g.Merge(Box(), mgl32.Scale3D(half, 0.08, 0.08))
	g.Merge(Box(), mgl32.Translate3D(half, 0, 0).Mul4(mgl32.HomogRotate3DX(math.Pi/4)).Mul4(mgl32.Scale3D(0.25, 0.18, 0.18)))
	g.Merge(Box(), mgl32.Translate3D(-half+0.3, 0, 0).Mul4(mgl32.Scale3D(0.3, 0.25, 0.02)))
	g.Merge(Box(), mgl32.Translate3D(-half+0.3, 0, 0).Mul4(mgl32.Scale3D(0.3, 0.02, 0.25)))
	return g
}

// Bow is a limb bent back towards -x in the xy plane plus a straight string
func Bow(height float32, segments int) *Geometry {
	if segments < 2 {
		segments = 2
	}
	g := &Geometry{}
	radius := float64(height) / 2
	step := math.Pi / 2 / float64(2*segments)
	limb := float32(radius * step / 2)

	for i := 0; i < segments*2; i++ {
		a := -math.Pi/4 + (float64(i)+0.5)*step
		x := float32(radius * (math.Cos(a) - 1))
		y := float32(radius * math.Sin(a) * math.Sqrt2)
		g.Merge(Box(), mgl32.Translate3D(x, y, 0).
			Mul4(mgl32.HomogRotate3DZ(float32(a))).
			Mul4(mgl32.Scale3D(0.12, limb*1.6, 0.12)))
	}

	stringX := float32(radius * (math.Cos(math.Pi/4) - 1))
	g.Merge(Box(), mgl32.Translate3D(stringX, 0, 0).Mul4(mgl32.Scale3D(0.02, float32(radius), 0.02)))
	return g
}
