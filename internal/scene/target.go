package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxScore is the score of a dead-centre hit
const MaxScore = 10

// Target is a disc facing down the flight axis. Arrows travel towards +Axis.
type Target struct {
	Center mgl32.Vec3
	Radius float32
	Depth  float32 // Half thickness along the flight axis
	Axis   int     // Flight axis: 0=x, 1=y, 2=z
}

func NewTarget(center mgl32.Vec3, radius float32) *Target {
	return &Target{
		Center: center,
		Radius: radius,
		Depth:  1.1,
		Axis:   0,
	}
}

// PlanarDistance is the distance from the target centre measured on the two
// axes across the face, ignoring the flight axis
func (t *Target) PlanarDistance(p mgl32.Vec3) float32 {
	var sum float64
	for i := 0; i < 3; i++ {
		if i == t.Axis {
			continue
		}
		d := float64(p[i] - t.Center[i])
		sum += d * d
	}
	return float32(math.Sqrt(sum))
}

// InBounds reports whether p is within the face radius and has reached the
// front of the target. The range check is one-sided: anything past the face
// that is still inside the radius counts as stuck in the target.
func (t *Target) InBounds(p mgl32.Vec3) bool {
	return t.PlanarDistance(p) < t.Radius && p[t.Axis] >= t.Center[t.Axis]-t.Depth
}

// Passed reports whether p is beyond the back of the target
func (t *Target) Passed(p mgl32.Vec3) bool {
	return p[t.Axis] > t.Center[t.Axis]+t.Depth
}

// Score maps a hit distance to 0..MaxScore, closer is higher.
// A hit on the rim scores 0.
func Score(radius, distance float32) int {
	if radius <= 0 {
		return 0
	}
	ring := radius / MaxScore
	score := int((radius-distance)/ring + 0.999)
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
