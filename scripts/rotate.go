package scripts

import (
	"Fletch3D/internal/behaviour"
)

// RotateScript spins its object about the local y axis
type RotateScript struct {
	behaviour.BaseComponent
	Speed float32 // radians per second
}

func init() {
	behaviour.RegisterComponent("RotateScript", func(behaviour.ComponentArgs) behaviour.Component {
		return &RotateScript{Speed: 0.8}
	})
}

func (r *RotateScript) Update(time, deltaTime float32) {
	r.GetGameObject().Transform().Rotate(0, r.Speed*deltaTime, 0)
}
