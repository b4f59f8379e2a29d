package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Material is the shading parameter bundle shared between game objects.
// The core passes it through untouched.
type Material struct {
	Name        string
	Color       mgl32.Vec4 // Base colour, alpha in W
	Ambient     float32
	Diffusivity float32
	Specularity float32
	Smoothness  float32
	Rings       bool // Shade as concentric scoring rings (target face)
}

// DefaultMaterial is the plastic look used for props without their own material
var DefaultMaterial = &Material{
	Name:        "plastic",
	Color:       mgl32.Vec4{1, 1, 1, 1},
	Ambient:     0.4,
	Diffusivity: 0.6,
	Specularity: 0.0,
	Smoothness:  40,
}

// Override returns a copy of m with a different colour
func (m *Material) Override(color mgl32.Vec4) *Material {
	c := *m
	c.Color = color
	return &c
}

// HexColor converts a "#rrggbb" string to an opaque colour. Malformed input yields black.
func HexColor(hex string) mgl32.Vec4 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return mgl32.Vec4{0, 0, 0, 1}
	}
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), 1}
}
