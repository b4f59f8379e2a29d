package behaviour

import (
	"Fletch3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
)

// GameObject binds a mesh, a material and a pose to an ordered list of
// components. The mesh and material are shared and never mutated here.
type GameObject struct {
	name       string
	model      renderer.Renderable
	transform  *Transform
	components []Component
	material   *renderer.Material

	// FallSpeed is physics bookkeeping for GravityAccumulator, kept off the
	// Transform because it is not part of the pose.
	FallSpeed float32
}

// NewGameObject wires every component to the new object and then starts them.
// Starts only run once all initializes are done, so a Start may read state a
// sibling set up in its own Initialize.
func NewGameObject(name string, model renderer.Renderable, start mgl32.Mat4, components []Component, material *renderer.Material) *GameObject {
	obj := &GameObject{
		name:       name,
		model:      model,
		transform:  NewTransform(start),
		components: append([]Component(nil), components...),
		material:   material,
	}

	for _, comp := range obj.components {
		comp.Initialize(obj)
	}
	for _, comp := range obj.components {
		comp.Start()
	}
	return obj
}

// Update runs every component in list order. Later components see the
// mutations of earlier ones within the same frame.
func (obj *GameObject) Update(time, deltaTime float32) {
	for _, comp := range obj.components {
		comp.Update(time, deltaTime)
	}
}

// Draw issues one draw of the model at the current world pose
func (obj *GameObject) Draw(ctx *renderer.Context) {
	if obj.model == nil {
		return
	}
	obj.model.Draw(ctx, obj.transform.WorldMatrix(), obj.material)
}

func (obj *GameObject) Name() string {
	return obj.name
}

func (obj *GameObject) Transform() *Transform {
	return obj.transform
}

func (obj *GameObject) Model() renderer.Renderable {
	return obj.model
}

func (obj *GameObject) Material() *renderer.Material {
	return obj.material
}

// Components returns a copy of the component list
func (obj *GameObject) Components() []Component {
	return append([]Component(nil), obj.components...)
}

// GetComponent returns the first component of type T
func GetComponent[T Component](obj *GameObject) (T, bool) {
	for _, comp := range obj.components {
		if c, ok := comp.(T); ok {
			return c, true
		}
	}
	var zero T
	return zero, false
}
