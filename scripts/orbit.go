package scripts

import (
	"math"

	"Fletch3D/internal/behaviour"
)

// OrbitScript circles its object in the local xz plane, starting from where
// it was spawned
type OrbitScript struct {
	behaviour.BaseComponent
	Radius float32
	Speed  float32
	phase  float32
	offset [2]float32
}

func init() {
	behaviour.RegisterComponent("OrbitScript", func(behaviour.ComponentArgs) behaviour.Component {
		return &OrbitScript{Radius: 3.0, Speed: 1.0}
	})
}

func (o *OrbitScript) Update(time, deltaTime float32) {
	o.phase += deltaTime * o.Speed

	x := float32(math.Cos(float64(o.phase)))*o.Radius - o.Radius
	z := float32(math.Sin(float64(o.phase))) * o.Radius

	o.GetGameObject().Transform().Translate(x-o.offset[0], 0, z-o.offset[1])
	o.offset = [2]float32{x, z}
}
