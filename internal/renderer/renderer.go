package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

var FrustumCullingEnabled bool = false
var Debug bool = false
var ClearColorR float32 = 0.05 // Background clear color red
var ClearColorG float32 = 0.07 // Background clear color green
var ClearColorB float32 = 0.10 // Background clear color blue

type Light struct {
	Position        mgl32.Vec3
	Color           mgl32.Vec3
	Intensity       float32
	AmbientStrength float32
}

// CreateLight returns the range's single point light
func CreateLight() *Light {
	return &Light{
		Position:        mgl32.Vec3{0, 5, 5},
		Color:           mgl32.Vec3{1, 1, 1},
		Intensity:       1.0,
		AmbientStrength: 0.4,
	}
}

// Context is the per-frame state handed to every draw call
type Context struct {
	ViewProjection mgl32.Mat4
	CameraPosition mgl32.Vec3
	Light          *Light
	Frustum        Frustum
	Time           float32
}

// NewContext snapshots the camera for one frame
func NewContext(camera *Camera, light *Light, time float32) *Context {
	ctx := &Context{
		ViewProjection: camera.GetViewProjection(),
		CameraPosition: camera.Position,
		Light:          light,
		Time:           time,
	}
	if FrustumCullingEnabled {
		ctx.Frustum = camera.CalculateFrustum()
	}
	return ctx
}

// Renderable is anything that can draw itself at a world pose.
// Implementations must not retain or mutate the material.
type Renderable interface {
	Draw(ctx *Context, world mgl32.Mat4, material *Material)
}
