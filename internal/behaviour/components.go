package behaviour

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Per-call increment of GravityAccumulator's fall speed
	FallIncrement float32 = 0.005
	// Horizontal step of an unscaled GravityAccumulator
	DefaultLaunchPower float32 = 0.6
	// Standard gravity for projectiles, world units/s²
	DefaultGravity float32 = -9.8
)

// Stationary keeps its owner where it is
type Stationary struct {
	BaseComponent
}

func NewStationary() *Stationary {
	return &Stationary{}
}

func (s *Stationary) Update(time, deltaTime float32) {
	s.GetGameObject().Transform().Translate(0, 0, 0)
}

// Drift moves its owner at a constant local-space velocity
type Drift struct {
	BaseComponent
	Velocity mgl32.Vec3
}

func NewDrift(vx, vy, vz float32) *Drift {
	return &Drift{Velocity: mgl32.Vec3{vx, vy, vz}}
}

func (d *Drift) Update(time, deltaTime float32) {
	v := d.Velocity.Mul(deltaTime)
	d.GetGameObject().Transform().Translate(v.X(), v.Y(), v.Z())
}

// GravityAccumulator drops its owner by a fall speed that grows by a fixed
// FallIncrement on every active call, regardless of deltaTime. The motion is
// therefore frame-rate dependent; Projectile is the dt-correct integrator.
type GravityAccumulator struct {
	BaseComponent
	Power   float32
	Lateral float32 // Per-call step along local z
	Scaled  bool    // Use pow(Power, 0.45)*0.1 as the horizontal step
}

func NewGravityAccumulator() *GravityAccumulator {
	return &GravityAccumulator{Power: DefaultLaunchPower}
}

// NewScaledGravityAccumulator is the variant driven by a user-chosen draw power
func NewScaledGravityAccumulator(power float32) *GravityAccumulator {
	return &GravityAccumulator{Power: power, Lateral: 0.1, Scaled: true}
}

func (g *GravityAccumulator) Horizontal() float32 {
	if g.Scaled {
		return float32(math.Pow(float64(g.Power), 0.45)) * 0.1
	}
	return g.Power
}

func (g *GravityAccumulator) Update(time, deltaTime float32) {
	if time == 0 || deltaTime == 0 {
		return
	}
	obj := g.GetGameObject()
	obj.FallSpeed += FallIncrement
	obj.Transform().Translate(g.Horizontal(), -obj.FallSpeed, g.Lateral)
}

// Projectile launches its owner along its right axis and integrates gravity
type Projectile struct {
	BaseComponent
	Power   float32
	Gravity float32

	velocity mgl32.Vec3
}

func NewProjectile(power float32) *Projectile {
	return &Projectile{Power: power, Gravity: DefaultGravity}
}

// Start snapshots the launch velocity from the owner's current orientation
func (p *Projectile) Start() {
	p.velocity = p.GetGameObject().Transform().Right().Mul(p.Power)
}

func (p *Projectile) Update(time, deltaTime float32) {
	p.velocity[1] += p.Gravity * deltaTime
	step := p.velocity.Mul(deltaTime)
	p.GetGameObject().Transform().TranslateWorld(step.X(), step.Y(), step.Z())
}

func (p *Projectile) Velocity() mgl32.Vec3 {
	return p.velocity
}

// FireParticle rises from its spawn point and sways sideways along a noise
// curve, starting over once it has lived for Lifetime seconds.
type FireParticle struct {
	BaseComponent
	RiseSpeed float32
	Sway      float32 // Maximum sideways offset
	Lifetime  float32
	Seed      int64

	noise  *perlin.Perlin
	age    float32
	offset mgl32.Vec3 // Displacement from the spawn pose
}

func NewFireParticle(seed int64) *FireParticle {
	return &FireParticle{
		RiseSpeed: 1.5,
		Sway:      0.4,
		Lifetime:  1.2,
		Seed:      seed,
	}
}

func (f *FireParticle) Start() {
	f.noise = perlin.NewPerlin(2, 2, 3, f.Seed)
}

func (f *FireParticle) Update(time, deltaTime float32) {
	if deltaTime == 0 {
		return
	}
	f.age += deltaTime
	if f.age >= f.Lifetime {
		f.age = 0
	}

	x := float32(f.noise.Noise1D(float64(f.age))) * f.Sway
	z := float32(f.noise.Noise1D(float64(f.age)+100)) * f.Sway
	target := mgl32.Vec3{x, f.age * f.RiseSpeed, z}

	step := target.Sub(f.offset)
	f.offset = target
	f.GetGameObject().Transform().Translate(step.X(), step.Y(), step.Z())
}

func (f *FireParticle) Age() float32 {
	return f.age
}
