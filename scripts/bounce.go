package scripts

import (
	"math"

	"Fletch3D/internal/behaviour"
)

// BounceScript bobs its object up and down around where it started
type BounceScript struct {
	behaviour.BaseComponent
	Height float32
	Speed  float32
	phase  float32
	offset float32
}

func init() {
	behaviour.RegisterComponent("BounceScript", func(behaviour.ComponentArgs) behaviour.Component {
		return &BounceScript{Height: 0.5, Speed: 2.0}
	})
}

func (b *BounceScript) Update(time, deltaTime float32) {
	b.phase += deltaTime * b.Speed
	offset := float32(math.Sin(float64(b.phase))) * b.Height
	b.GetGameObject().Transform().Translate(0, offset-b.offset, 0)
	b.offset = offset
}
