package scripts

import (
	"sort"

	"Fletch3D/internal/behaviour"
)

// Scripted shot paths, in world units per second along the arrow's local axes.
// Each one is a plain Drift tuned to land in a different part of the target.
var directions = map[string][3]float32{
	"FallDown":     {0, -2, 0},
	"Straight":     {10, 0, 0},
	"InsideTop":    {18, 10, 0},
	"Outside":      {17, 10, 0},
	"OutsideRight": {17, 0, 10},
	"EdgeRight":    {18, 0, 10},
	"TopRight":     {20, 10, 10},
	"TestMovement": {-1, 1, 0},
}

func init() {
	for name, v := range directions {
		v := v
		behaviour.RegisterComponent(name, func(behaviour.ComponentArgs) behaviour.Component {
			return behaviour.NewDrift(v[0], v[1], v[2])
		})
	}
}

// Directions lists the scripted path names in sorted order
func Directions() []string {
	names := make([]string, 0, len(directions))
	for name := range directions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
