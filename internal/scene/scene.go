package scene

import (
	"Fletch3D/internal/behaviour"
	"Fletch3D/internal/logger"
	"Fletch3D/internal/renderer"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Scene owns the live GameObjects and drives them against a single target.
//
// Objects are updated and drawn in insertion order. Only the most recently
// spawned object is scored; once it has hit or passed the target the outcome
// is latched until a new object is spawned or the target moves.
type Scene struct {
	gameObjects []*behaviour.GameObject
	spawned     []*behaviour.GameObject // Spawned objects, oldest first
	target      *Target
	notifier    Notifier

	latest   *behaviour.GameObject
	resolved bool
	score    int

	// MaxObjects caps the number of spawned objects kept alive. Zero means
	// no cap. Props added with Add never count.
	MaxObjects int
}

func NewScene(target *Target, notifier Notifier) *Scene {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Scene{
		gameObjects: make([]*behaviour.GameObject, 0),
		target:      target,
		notifier:    notifier,
	}
}

// Spawn builds a GameObject, appends it and makes it the scored object
func (s *Scene) Spawn(name string, model renderer.Renderable, start mgl32.Mat4, components []behaviour.Component, material *renderer.Material) *behaviour.GameObject {
	obj := behaviour.NewGameObject(name, model, start, components, material)
	s.gameObjects = append(s.gameObjects, obj)
	s.spawned = append(s.spawned, obj)
	s.latest = obj
	s.resolved = false
	s.score = 0

	if s.MaxObjects > 0 {
		for len(s.spawned) > s.MaxObjects {
			oldest := s.spawned[0]
			s.Remove(oldest)
			logger.Log.Debug("Dropped oldest object", zap.String("name", oldest.Name()))
		}
	}
	logger.Log.Debug("Spawned object", zap.String("name", name), zap.Int("objects", len(s.gameObjects)))
	return obj
}

// Add appends an already built object without making it the scored one
func (s *Scene) Add(obj *behaviour.GameObject) {
	s.gameObjects = append(s.gameObjects, obj)
}

// Remove drops obj from the scene. Removing the latest object leaves the
// scene with nothing to score until the next Spawn.
func (s *Scene) Remove(obj *behaviour.GameObject) bool {
	found := false
	for i, o := range s.gameObjects {
		if o == obj {
			s.gameObjects = append(s.gameObjects[:i], s.gameObjects[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for i, o := range s.spawned {
		if o == obj {
			s.spawned = append(s.spawned[:i], s.spawned[i+1:]...)
			break
		}
	}
	if s.latest == obj {
		s.latest = nil
	}
	return true
}

// FindGameObject finds a GameObject by name
func (s *Scene) FindGameObject(name string) *behaviour.GameObject {
	for _, obj := range s.gameObjects {
		if obj.Name() == name {
			return obj
		}
	}
	return nil
}

// Clear removes every object and forgets the last outcome
func (s *Scene) Clear() {
	s.gameObjects = s.gameObjects[:0]
	s.spawned = s.spawned[:0]
	s.latest = nil
	s.resolved = false
	s.score = 0
}

// Objects returns a copy of the object list in update order
func (s *Scene) Objects() []*behaviour.GameObject {
	return append([]*behaviour.GameObject(nil), s.gameObjects...)
}

func (s *Scene) Latest() *behaviour.GameObject {
	return s.latest
}

func (s *Scene) Target() *Target {
	return s.target
}

// Score is the outcome of the latest object, 0 until it resolves
func (s *Scene) Score() int {
	return s.score
}

func (s *Scene) Resolved() bool {
	return s.resolved
}

// MoveTarget repositions the target so the latest object can be scored again
func (s *Scene) MoveTarget(center mgl32.Vec3) {
	s.target.Center = center
	s.resolved = false
	s.score = 0
	logger.Log.Debug("Target moved",
		zap.Float32("x", center.X()), zap.Float32("y", center.Y()), zap.Float32("z", center.Z()))
}

// Step advances every object by one frame
func (s *Scene) Step(time, deltaTime float32) {
	for _, obj := range s.Objects() {
		s.updateObject(obj, time, deltaTime)
	}
}

// Frame advances and then draws every object, one object at a time
func (s *Scene) Frame(ctx *renderer.Context, time, deltaTime float32) {
	for _, obj := range s.Objects() {
		s.updateObject(obj, time, deltaTime)
		obj.Draw(ctx)
	}
}

func (s *Scene) updateObject(obj *behaviour.GameObject, time, deltaTime float32) {
	pos := obj.Transform().Position()

	if s.target.InBounds(pos) {
		obj.Update(0, 0)
		if obj == s.latest && !s.resolved {
			s.resolve(Score(s.target.Radius, s.target.PlanarDistance(pos)), false)
		}
		return
	}

	obj.Update(time, deltaTime)
	if s.target.Passed(pos) && obj == s.latest && !s.resolved {
		s.resolve(0, true)
	}
}

func (s *Scene) resolve(score int, missed bool) {
	s.resolved = true
	s.score = score
	switch {
	case missed:
		s.notifier.Missed()
	case score > 0:
		s.notifier.Scored(score)
	default:
		s.notifier.Failed()
	}
}
