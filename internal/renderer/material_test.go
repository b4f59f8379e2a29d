package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestHexColor(t *testing.T) {
	c := HexColor("#1a9ffa")

	assert.InDelta(t, 0x1a/255.0, c.X(), 1e-6)
	assert.InDelta(t, 0x9f/255.0, c.Y(), 1e-6)
	assert.InDelta(t, 0xfa/255.0, c.Z(), 1e-6)
	assert.Equal(t, float32(1), c.W())
}

func TestHexColorMalformed(t *testing.T) {
	assert.Equal(t, mgl32.Vec4{0, 0, 0, 1}, HexColor("not a colour"))
}

func TestMaterialOverride(t *testing.T) {
	blue := HexColor("#1a9ffa")

	m := DefaultMaterial.Override(blue)

	assert.Equal(t, blue, m.Color)
	assert.Equal(t, DefaultMaterial.Ambient, m.Ambient)
	assert.NotEqual(t, blue, DefaultMaterial.Color, "Override must not touch the shared material")
}
