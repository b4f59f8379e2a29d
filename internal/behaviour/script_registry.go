package behaviour

import (
	"fmt"
	"sort"
	"sync"
)

// ComponentArgs carries the tunables a prefab can pass to a constructor.
// Constructors ignore the fields they have no use for.
type ComponentArgs struct {
	Power   float32
	Gravity float32
	Seed    int64
}

type ComponentConstructor func(args ComponentArgs) Component

var (
	registryMu        sync.RWMutex
	componentRegistry = make(map[string]ComponentConstructor)
)

func init() {
	RegisterComponent("Stationary", func(ComponentArgs) Component { return NewStationary() })
	RegisterComponent("GravityAccumulator", func(ComponentArgs) Component { return NewGravityAccumulator() })
	RegisterComponent("ScaledGravityAccumulator", func(args ComponentArgs) Component {
		return NewScaledGravityAccumulator(args.Power)
	})
	RegisterComponent("Projectile", func(args ComponentArgs) Component {
		p := NewProjectile(args.Power)
		if args.Gravity != 0 {
			p.Gravity = args.Gravity
		}
		return p
	})
	RegisterComponent("FireParticle", func(args ComponentArgs) Component { return NewFireParticle(args.Seed) })
}

// RegisterComponent makes a constructor available by name. Registering the
// same name twice replaces the earlier constructor.
func RegisterComponent(name string, constructor ComponentConstructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	componentRegistry[name] = constructor
}

// AvailableComponents lists the registered names in sorted order
func AvailableComponents() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name has a constructor
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := componentRegistry[name]
	return ok
}

// CreateComponent builds a fresh component by name
func CreateComponent(name string, args ComponentArgs) (Component, error) {
	registryMu.RLock()
	constructor, exists := componentRegistry[name]
	registryMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return constructor(args), nil
}

// CreateComponents builds one component per name, in order
func CreateComponents(names []string, args ComponentArgs) ([]Component, error) {
	comps := make([]Component, 0, len(names))
	for _, name := range names {
		comp, err := CreateComponent(name, args)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}
	return comps, nil
}
