// Package config loads the brobot settings file. Every field has a default,
// so a file only needs to name what it changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"brobot/core"
	"brobot/input"
	"brobot/robot"
)

// Assets names the two textures the figure is drawn with.
type Assets struct {
	BodyTexture string `yaml:"body_texture"`
	FaceTexture string `yaml:"face_texture"`
	// FlipFace loads the face image bottom row first.
	FlipFace bool `yaml:"flip_face"`
}

type Config struct {
	LogLevel string            `yaml:"log_level"`
	Window   core.WindowConfig `yaml:"window"`
	Assets   Assets            `yaml:"assets"`
	Robot    robot.Config      `yaml:"robot"`
	// Keys maps action names (forward, greet, quit...) to key names. Actions
	// left out keep their default key; an empty name unbinds the action.
	Keys     map[string]string `yaml:"keys"`
	Snapshot string            `yaml:"snapshot"`
}

var defaultKeys = map[input.Action]string{
	input.Forward:     "S",
	input.Back:        "W",
	input.StrafeLeft:  "D",
	input.StrafeRight: "A",
	input.Greet:       "H",
	input.Snapshot:    "P",
	input.Quit:        "escape",
}

func DefaultKeys() map[string]string {
	keys := make(map[string]string, len(defaultKeys))
	for a, k := range defaultKeys {
		keys[a.String()] = k
	}
	return keys
}

func Default() Config {
	return Config{
		LogLevel: "info",
		Window:   core.DefaultWindowConfig(),
		Assets: Assets{
			BodyTexture: "assets/body.png",
			FaceTexture: "assets/face.png",
			FlipFace:    true,
		},
		Robot:    robot.DefaultConfig(),
		Keys:     DefaultKeys(),
		Snapshot: "brobot-pose.glb",
	}
}

// Load reads a YAML file on top of the defaults. Unknown fields are an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if err := c.Robot.Validate(); err != nil {
		return fmt.Errorf("robot: %w", err)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// Bindings resolves the key names into window key codes.
func (c Config) Bindings() (input.Bindings, error) {
	known := make(map[string]bool)
	for _, a := range input.Actions() {
		known[a.String()] = true
	}
	var unknown []string
	for name := range c.Keys {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return input.Bindings{}, fmt.Errorf("keys: unknown action(s) %s", strings.Join(unknown, ", "))
	}

	var b input.Bindings
	for _, a := range input.Actions() {
		name, ok := c.Keys[a.String()]
		if !ok {
			name = defaultKeys[a]
		}
		if name == "" {
			b[a] = -1
			continue
		}
		key, ok := core.KeyByName(name)
		if !ok {
			return input.Bindings{}, fmt.Errorf("keys: %s: unknown key %q", a, name)
		}
		b[a] = key
	}
	return b, nil
}
