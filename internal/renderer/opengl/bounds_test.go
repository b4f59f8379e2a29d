package opengl

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestWorldBounds(t *testing.T) {
	world := mgl32.Translate3D(10, 0, 0).Mul4(mgl32.HomogRotate3DY(0.5)).Mul4(mgl32.Scale3D(1, 3, 2))

	center, radius := WorldBounds(mgl32.Vec3{}, 2, world)

	assert.InDelta(t, 10, center.X(), 1e-5)
	assert.InDelta(t, 0, center.Y(), 1e-5)
	assert.InDelta(t, 6, radius, 1e-5, "radius scales by the largest axis")
}

func TestMeshWithoutUploadIsSkipped(t *testing.T) {
	var m Mesh

	assert.NotPanics(t, func() { m.Draw(nil, mgl32.Ident4(), nil) })
}
