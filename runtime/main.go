package main

import (
	"flag"
	"fmt"
	"os"

	"Fletch3D/internal/audio"
	"Fletch3D/internal/config"
	"Fletch3D/internal/engine"
	"Fletch3D/internal/logger"
	"Fletch3D/internal/renderer"
	"Fletch3D/internal/renderer/opengl"
	"Fletch3D/internal/scene"
	_ "Fletch3D/scripts"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gopxl/beep"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath = flag.String("config", "", "range config file (TOML); built-in range if empty")
		headless   = flag.Bool("headless", false, "simulate without a window")
		frames     = flag.Int("frames", 600, "frames to simulate in headless mode")
		dt         = flag.Float64("dt", 1.0/60, "fixed time step in headless mode, seconds")
		shots      = flag.Int("shots", 3, "arrows to fire in headless mode")
		debug      = flag.Bool("debug", false, "debug logging and wireframe rendering")
	)
	flag.Parse()

	logger.Init()
	defer logger.Sync()

	if err := run(*configPath, *headless, *frames, float32(*dt), *shots, *debug); err != nil {
		logger.Log.Error("Fletch3D stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(configPath string, headless bool, frames int, dt float32, shots int, debug bool) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	logger.SetDebug(debug || cfg.Log.Debug)
	logger.Log.Info("Fletch3D starting", zap.String("config", configPath), zap.Bool("headless", headless))

	notifiers := scene.MultiNotifier{scene.LogNotifier{}}
	if cfg.Audio.Enabled && !headless {
		sounds := audio.NewSoundManager(beep.SampleRate(cfg.Audio.SampleRate))
		if err := sounds.Initialize(); err != nil {
			// The range still works without sound
			logger.Log.Warn("Audio unavailable", zap.Error(err))
		} else {
			defer sounds.Cleanup()
			notifiers = append(notifiers, audio.NewNotifier(sounds, cfg.Audio.Volume))
		}
	}

	r, err := newArcheryRange(cfg, notifiers)
	if err != nil {
		return err
	}

	if headless {
		return runHeadless(r, frames, dt, shots)
	}
	return runWindowed(r, cfg, debug)
}

// runHeadless fires an arrow, steps until it resolves, moves the target and
// fires again, up to shots arrows or frames steps
func runHeadless(r *archeryRange, frames int, dt float32, shots int) error {
	if err := r.populate(meshes{}); err != nil {
		return err
	}
	if shots <= 0 {
		return nil
	}
	if _, err := r.fire(); err != nil {
		return err
	}

	total := 0
	clock := scene.NewStepClock(dt)
	for i := 0; i < frames; i++ {
		now, step := clock.Tick()
		r.scene.Step(now, step)

		if !r.scene.Resolved() {
			continue
		}
		total += r.scene.Score()
		if r.shots >= shots {
			break
		}
		r.moveTarget()
		if _, err := r.fire(); err != nil {
			return err
		}
	}

	logger.Log.Info("Headless run finished",
		zap.Int("shots", r.shots), zap.Int("total", total), zap.Float32("time", clock.Now()))
	fmt.Printf("shots=%d total=%d\n", r.shots, total)
	return nil
}

func runWindowed(r *archeryRange, cfg *config.Config, debug bool) error {
	gopher := engine.NewGopher(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, r.scene)
	gopher.VSync = cfg.Window.VSync
	gopher.SetDebugMode(debug)
	gopher.SetFrustumCulling(true)

	gopher.Camera.Place(config.Vec3(cfg.Camera.Position), config.Vec3(cfg.Camera.LookAt),
		cfg.Camera.Fov, cfg.Camera.Near, cfg.Camera.Far)

	gopher.OnReady(func(rend *opengl.Renderer) error {
		return r.populate(meshes{
			arrow:  rend.NewMesh(renderer.Arrow(cfg.Arrow.Length)),
			target: rend.NewMesh(renderer.Cylinder(48)),
			bow:    rend.NewMesh(renderer.Bow(6, 6)),
			prop:   rend.NewMesh(renderer.Box()),
		})
	})
	gopher.OnKey(glfw.KeySpace, func() {
		if _, err := r.fire(); err != nil {
			logger.Log.Error("Fire failed", zap.Error(err))
		}
	})
	gopher.OnKey(glfw.KeyR, r.moveTarget)
	gopher.OnKey(glfw.KeyUp, func() { r.aim(1) })
	gopher.OnKey(glfw.KeyDown, func() { r.aim(-1) })

	return gopher.Render(-1, -1)
}
