package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli"

	"brobot/core"
	"brobot/export"
	"brobot/input"
	"brobot/internal/config"
	"brobot/internal/log"
	"brobot/math"
	"brobot/renderer"
	"brobot/robot"
	"brobot/scene"
)

func main() {
	app := cli.NewApp()
	app.Name = "brobot"
	app.Usage = "walk a cube robot around and wave at things"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML settings file",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "debug, info, warn or error",
		},
		cli.StringFlag{
			Name:  "body-texture",
			Usage: "image for the body cubes",
		},
		cli.StringFlag{
			Name:  "face-texture",
			Usage: "image for the head cube",
		},
		cli.StringFlag{
			Name:  "snapshot",
			Usage: "where the snapshot key writes the pose (.glb or .gltf)",
		},
		cli.StringFlag{
			Name:  "timing",
			Usage: "clock mode: fixed (one tick per frame) or elapsed",
		},
	}
	app.Action = func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		log.Init(cfg.LogLevel)
		return run(cfg)
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig layers flags over the settings file over the defaults.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return config.Config{}, err
		}
	}

	if c.IsSet("log-level") || c.String("config") == "" {
		cfg.LogLevel = c.String("log-level")
	}
	if v := c.String("body-texture"); v != "" {
		cfg.Assets.BodyTexture = v
	}
	if v := c.String("face-texture"); v != "" {
		cfg.Assets.FaceTexture = v
	}
	if v := c.String("snapshot"); v != "" {
		cfg.Snapshot = v
	}
	if v := c.String("timing"); v != "" {
		cfg.Robot.Timing.Mode = robot.TimingMode(v)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func run(cfg config.Config) error {
	log.Info("starting brobot", "timing", cfg.Robot.Timing.Mode, "window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))

	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}

	window, err := core.NewWindow(cfg.Window)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()

	camera := scene.NewCamera(math.Radians(45), float32(cfg.Window.Width)/float32(cfg.Window.Height), 0.1, 100)
	camera.SetPosition(math.NewVec3(0, 0, 5))

	engine, err := renderer.NewRenderEngine(window, camera)
	if err != nil {
		return fmt.Errorf("failed to create render engine: %w", err)
	}
	defer engine.Destroy()

	engine.LoadMaterial(robot.MaterialBody, cfg.Assets.BodyTexture, false, core.ColorWhite)
	engine.LoadMaterial(robot.MaterialFace, cfg.Assets.FaceTexture, cfg.Assets.FlipFace, core.Color{R: 1, G: 0.85, B: 0.7, A: 1})

	bot := robot.New(cfg.Robot)
	window.SetCursorCallback(bot.OnCursor)

	keys := input.NewManager(window, bindings)
	clock := robot.NewClock(cfg.Robot.Timing)
	status := newStatusTitle(cfg.Window.Title, time.Second)

	for !window.ShouldClose() {
		window.PollEvents()
		keys.Update()

		if keys.Pressed(input.Quit) {
			window.SetShouldClose(true)
			continue
		}

		bot.Tick(keys.Keys(), clock.Step())
		pose := bot.Pose()

		if keys.Pressed(input.Snapshot) {
			if err := export.WriteGLTF(cfg.Snapshot, pose, export.DefaultColors()); err != nil {
				log.Error("snapshot failed", "err", err)
			} else {
				log.Info("pose written", "path", cfg.Snapshot, "parts", len(pose))
			}
		}

		engine.BeginFrame()
		engine.DrawRobot(pose)
		engine.Present()

		if title, ok := status.Frame(time.Now(), bot.State()); ok {
			window.SetTitle(title)
			log.Debug("frame stats", "title", title, "parts", engine.DrawStats())
		}
	}

	log.Info("exiting")
	return nil
}
