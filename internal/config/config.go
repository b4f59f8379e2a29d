package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"Fletch3D/internal/behaviour"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

var ErrInvalid = errors.New("config: invalid value")

// Config describes one archery range: window, camera, target, the arrow
// prefab and any decorative props
type Config struct {
	Window WindowConfig `toml:"window"`
	Camera CameraConfig `toml:"camera"`
	Target TargetConfig `toml:"target"`
	Arrow  ArrowConfig  `toml:"arrow"`
	Props  []PropConfig `toml:"props"`
	Audio  AudioConfig  `toml:"audio"`
	Log    LogConfig    `toml:"log"`
}

type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int32  `toml:"width"`
	Height int32  `toml:"height"`
	VSync  bool   `toml:"vsync"`
}

type CameraConfig struct {
	Position [3]float32 `toml:"position"`
	LookAt   [3]float32 `toml:"look_at"`
	Fov      float32    `toml:"fov"` // Degrees
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
}

type TargetConfig struct {
	Center [3]float32 `toml:"center"`
	Radius float32    `toml:"radius"`
	Depth  float32    `toml:"depth"`
	Axis   string     `toml:"axis"` // Flight axis: "x", "y" or "z"
	Color  string     `toml:"color"`
	// Extra centres cycled through by the move-target key
	Positions [][3]float32 `toml:"positions"`
}

type ArrowConfig struct {
	Components []string   `toml:"components"`
	Power      float32    `toml:"power"`
	Gravity    float32    `toml:"gravity"`
	Start      [3]float32 `toml:"start"`
	Pitch      float32    `toml:"pitch"` // Launch elevation in degrees
	Length     float32    `toml:"length"`
	Color      string     `toml:"color"`
	MaxObjects int        `toml:"max_objects"`
}

type PropConfig struct {
	Name       string     `toml:"name"`
	Components []string   `toml:"components"`
	Position   [3]float32 `toml:"position"`
	Scale      [3]float32 `toml:"scale"`
	Color      string     `toml:"color"`
	Seed       int64      `toml:"seed"`
	// Name of an earlier prop to attach to. Position stays in world space.
	Parent string `toml:"parent"`
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"`
	SampleRate int     `toml:"sample_rate"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Default is the built-in range: a bow at the origin shooting along +x at a
// target 20 units away, with two campfires either side of the lane.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Fletch3D",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Camera: CameraConfig{
			Position: [3]float32{5, 10, 30},
			LookAt:   [3]float32{10, 0, 0},
			Fov:      45,
			Near:     0.1,
			Far:      1000,
		},
		Target: TargetConfig{
			Center: [3]float32{20, 0, 0},
			Radius: 20,
			Depth:  1.1,
			Axis:   "x",
			Color:  "#d62828",
			Positions: [][3]float32{
				{20, 0, 0},
				{25, 5, 0},
				{18, -4, 6},
			},
		},
		Arrow: ArrowConfig{
			Components: []string{"Projectile"},
			Power:      30,
			Gravity:    behaviour.DefaultGravity,
			Start:      [3]float32{-10, 0, 0},
			Pitch:      5,
			Length:     2,
			Color:      "#8d5524",
			MaxObjects: 16,
		},
		Props: []PropConfig{
			{Name: "campfire-left", Components: []string{"Stationary"}, Position: [3]float32{0, -3.6, -12}, Scale: [3]float32{1.5, 0.3, 1.5}, Color: "#5c4033"},
			{Name: "fire-left", Components: []string{"FireParticle"}, Position: [3]float32{0, -3, -12}, Scale: [3]float32{0.3, 0.3, 0.3}, Color: "#ff7b00", Seed: 1, Parent: "campfire-left"},
			{Name: "campfire-right", Components: []string{"Stationary"}, Position: [3]float32{0, -3.6, 12}, Scale: [3]float32{1.5, 0.3, 1.5}, Color: "#5c4033"},
			{Name: "fire-right", Components: []string{"FireParticle"}, Position: [3]float32{0, -3, 12}, Scale: [3]float32{0.3, 0.3, 0.3}, Color: "#ff7b00", Seed: 2, Parent: "campfire-right"},
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}

// Load reads a TOML file over the defaults. Keys the file leaves out keep
// their default value; unknown keys are an error.
func Load(path string) (*Config, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer fp.Close()

	cfg, err := Read(bufio.NewReader(fp))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Read decodes and validates a config from r
func Read(r io.Reader) (*Config, error) {
	cfg := Default()

	// Lists in the file replace the default lists rather than extend them
	props, components, positions := cfg.Props, cfg.Arrow.Components, cfg.Target.Positions
	cfg.Props, cfg.Arrow.Components, cfg.Target.Positions = nil, nil, nil

	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("decode config: %s", strict.String())
		}
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Props == nil {
		cfg.Props = props
	}
	if cfg.Arrow.Components == nil {
		cfg.Arrow.Components = components
	}
	if cfg.Target.Positions == nil {
		cfg.Target.Positions = positions
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and that every component name is registered
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("%w: camera fov %v", ErrInvalid, c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera clip range %v..%v", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if c.Target.Radius <= 0 {
		return fmt.Errorf("%w: target radius %v", ErrInvalid, c.Target.Radius)
	}
	if c.Target.Depth < 0 {
		return fmt.Errorf("%w: target depth %v", ErrInvalid, c.Target.Depth)
	}
	if _, err := AxisIndex(c.Target.Axis); err != nil {
		return err
	}
	if c.Arrow.MaxObjects < 0 {
		return fmt.Errorf("%w: arrow max_objects %d", ErrInvalid, c.Arrow.MaxObjects)
	}
	if err := checkComponents("arrow", c.Arrow.Components); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Props))
	for _, prop := range c.Props {
		if err := checkComponents("prop "+prop.Name, prop.Components); err != nil {
			return err
		}
		if prop.Parent != "" && !seen[prop.Parent] {
			return fmt.Errorf("%w: prop %s parent %q is not an earlier prop", ErrInvalid, prop.Name, prop.Parent)
		}
		seen[prop.Name] = true
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v", ErrInvalid, c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio sample_rate %d", ErrInvalid, c.Audio.SampleRate)
	}
	return nil
}

func checkComponents(owner string, names []string) error {
	for _, name := range names {
		if !behaviour.IsRegistered(name) {
			return fmt.Errorf("%s: %w: %q", owner, behaviour.ErrUnknownComponent, name)
		}
	}
	return nil
}

// AxisIndex maps "x", "y" or "z" to 0, 1 or 2
func AxisIndex(axis string) (int, error) {
	switch axis {
	case "x", "X":
		return 0, nil
	case "y", "Y":
		return 1, nil
	case "z", "Z":
		return 2, nil
	}
	return 0, fmt.Errorf("%w: target axis %q", ErrInvalid, axis)
}

// Vec3 converts a config triple
func Vec3(v [3]float32) mgl32.Vec3 {
	return mgl32.Vec3{v[0], v[1], v[2]}
}
