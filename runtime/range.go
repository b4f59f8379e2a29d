package main

import (
	"fmt"
	"math"

	"Fletch3D/internal/behaviour"
	"Fletch3D/internal/config"
	"Fletch3D/internal/logger"
	"Fletch3D/internal/renderer"
	"Fletch3D/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// meshes are the shared models. Any of them may be nil in headless runs.
type meshes struct {
	arrow  renderer.Renderable
	target renderer.Renderable
	bow    renderer.Renderable
	prop   renderer.Renderable
}

// archeryRange builds the scene described by a config and fires arrows into it
type archeryRange struct {
	cfg    *config.Config
	scene  *scene.Scene
	meshes meshes

	target      *behaviour.GameObject
	targetIndex int
	shots       int

	// The next arrow rides on the bow as a child until it is fired
	bow   *behaviour.GameObject
	nock  *behaviour.GameObject
	pitch float32 // Current launch elevation, degrees

	arrowMaterial *renderer.Material
}

func newArcheryRange(cfg *config.Config, notifier scene.Notifier) (*archeryRange, error) {
	axis, err := config.AxisIndex(cfg.Target.Axis)
	if err != nil {
		return nil, err
	}
	target := scene.NewTarget(config.Vec3(cfg.Target.Center), cfg.Target.Radius)
	target.Depth = cfg.Target.Depth
	target.Axis = axis

	s := scene.NewScene(target, notifier)
	s.MaxObjects = cfg.Arrow.MaxObjects

	return &archeryRange{
		cfg:           cfg,
		scene:         s,
		pitch:         cfg.Arrow.Pitch,
		arrowMaterial: renderer.DefaultMaterial.Override(renderer.HexColor(cfg.Arrow.Color)),
	}, nil
}

// populate adds the target, the bow with a nocked arrow and the props
func (r *archeryRange) populate(m meshes) error {
	r.meshes = m

	targetMaterial := renderer.DefaultMaterial.Override(renderer.HexColor(r.cfg.Target.Color))
	targetMaterial.Name = "target"
	targetMaterial.Rings = true
	r.target = behaviour.NewGameObject("target", m.target, r.targetPose(r.scene.Target().Center),
		[]behaviour.Component{behaviour.NewStationary()}, targetMaterial)
	r.scene.Add(r.target)

	bowMaterial := renderer.DefaultMaterial.Override(renderer.HexColor(r.cfg.Arrow.Color))
	r.bow = behaviour.NewGameObject("bow", m.bow, r.launchPose(),
		[]behaviour.Component{behaviour.NewStationary()}, bowMaterial)
	r.scene.Add(r.bow)
	if err := r.nockArrow(); err != nil {
		return err
	}

	byName := make(map[string]*behaviour.GameObject, len(r.cfg.Props))
	for i, prop := range r.cfg.Props {
		comps, err := behaviour.CreateComponents(prop.Components, behaviour.ComponentArgs{Seed: prop.Seed})
		if err != nil {
			return fmt.Errorf("prop %d (%s): %w", i, prop.Name, err)
		}
		scale := prop.Scale
		if scale == ([3]float32{}) {
			scale = [3]float32{1, 1, 1}
		}
		start := mgl32.Translate3D(prop.Position[0], prop.Position[1], prop.Position[2]).
			Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
		material := renderer.DefaultMaterial.Override(renderer.HexColor(prop.Color))
		obj := behaviour.NewGameObject(prop.Name, m.prop, start, comps, material)
		if prop.Parent != "" {
			parent, ok := byName[prop.Parent]
			if !ok {
				return fmt.Errorf("prop %d (%s): parent %q not found", i, prop.Name, prop.Parent)
			}
			if err := parent.Transform().AddChild(obj.Transform()); err != nil {
				return fmt.Errorf("prop %d (%s): %w", i, prop.Name, err)
			}
		}
		byName[prop.Name] = obj
		r.scene.Add(obj)
	}

	logger.Log.Info("Range ready",
		zap.Int("objects", len(r.scene.Objects())), zap.Float32("targetRadius", r.scene.Target().Radius))
	return nil
}

// nockArrow puts a motionless arrow on the bow. It turns with the bow until
// fire releases it.
func (r *archeryRange) nockArrow() error {
	nock := behaviour.NewGameObject("nock", r.meshes.arrow, r.bow.Transform().WorldMatrix(), nil, r.arrowMaterial)
	if err := r.bow.Transform().AddChild(nock.Transform()); err != nil {
		return fmt.Errorf("nock arrow: %w", err)
	}
	r.scene.Add(nock)
	r.nock = nock
	return nil
}

// fire releases the nocked arrow and spawns the flying one at its world pose.
// The new arrow becomes the scored arrow and the bow is nocked again.
func (r *archeryRange) fire() (*behaviour.GameObject, error) {
	args := behaviour.ComponentArgs{Power: r.cfg.Arrow.Power, Gravity: r.cfg.Arrow.Gravity}
	comps, err := behaviour.CreateComponents(r.cfg.Arrow.Components, args)
	if err != nil {
		return nil, err
	}

	start := r.launchPose()
	if r.nock != nil {
		r.bow.Transform().RemoveChild(r.nock.Transform())
		r.scene.Remove(r.nock)
		start = r.nock.Transform().WorldMatrix()
	}

	r.shots++
	name := fmt.Sprintf("arrow-%d", r.shots)
	logger.Log.Info("Fire", zap.String("arrow", name), zap.Float32("power", args.Power), zap.Float32("pitch", r.pitch))
	arrow := r.scene.Spawn(name, r.meshes.arrow, start, comps, r.arrowMaterial)

	if r.bow != nil {
		if err := r.nockArrow(); err != nil {
			return nil, err
		}
	}
	return arrow, nil
}

// aim raises or lowers the bow, clamped to ±80°. The nocked arrow follows.
func (r *archeryRange) aim(deltaDegrees float32) {
	r.pitch = mgl32.Clamp(r.pitch+deltaDegrees, -80, 80)
	if r.bow == nil {
		return
	}
	p := float64(mgl32.DegToRad(r.pitch))
	r.bow.Transform().SetRight(mgl32.Vec3{float32(math.Cos(p)), float32(math.Sin(p)), 0})
}

// moveTarget steps to the next configured target position
func (r *archeryRange) moveTarget() {
	positions := r.cfg.Target.Positions
	if len(positions) == 0 {
		return
	}
	r.targetIndex = (r.targetIndex + 1) % len(positions)
	center := config.Vec3(positions[r.targetIndex])

	r.scene.MoveTarget(center)
	if r.target != nil {
		r.target.Transform().SetLocalMatrix(r.targetPose(center))
	}
}

func (r *archeryRange) launchPose() mgl32.Mat4 {
	s := r.cfg.Arrow.Start
	return mgl32.Translate3D(s[0], s[1], s[2]).Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(r.pitch)))
}

// targetPose maps the unit cylinder (axis x, radius 1, length 1) onto the
// target disc facing down the flight axis
func (r *archeryRange) targetPose(center mgl32.Vec3) mgl32.Mat4 {
	t := r.scene.Target()
	var orient mgl32.Mat4
	switch t.Axis {
	case 1:
		orient = mgl32.HomogRotate3DZ(math.Pi / 2)
	case 2:
		orient = mgl32.HomogRotate3DY(-math.Pi / 2)
	default:
		orient = mgl32.Ident4()
	}
	return mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(orient).
		Mul4(mgl32.Scale3D(2*t.Depth, t.Radius, t.Radius))
}
