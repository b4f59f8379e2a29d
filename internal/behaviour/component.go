package behaviour

// Component is one behaviour attached to a GameObject.
//
// Initialize is called exactly once, before any Start or Update, and must not
// assume the sibling components are initialized yet. Start is called exactly
// once after every component on the object has been initialized. Update is
// called once per simulated frame; Update(t, 0) freezes the object and must
// leave its pose untouched.
type Component interface {
	Initialize(owner *GameObject)
	Start()
	Update(time, deltaTime float32)
}

// BaseComponent provides the owner back-reference and no-op Start/Update.
// Behaviours embed it and override what they need.
type BaseComponent struct {
	gameObject *GameObject
}

// Initialize binds the component to its owner. Rebinding to a different
// owner is a programming error.
func (c *BaseComponent) Initialize(owner *GameObject) {
	if c.gameObject != nil && c.gameObject != owner {
		panic("behaviour: component is already owned by " + c.gameObject.Name())
	}
	c.gameObject = owner
}

func (c *BaseComponent) Start()                         {}
func (c *BaseComponent) Update(time, deltaTime float32) {}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}
