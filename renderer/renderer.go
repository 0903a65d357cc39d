package renderer

import (
	"fmt"

	"brobot/core"
	"brobot/internal/log"
	"brobot/math"
	"brobot/opengl"
	"brobot/robot"
	"brobot/scene"
)

// Backend is the drawing surface a frame is submitted to. *opengl.Renderer
// implements it.
type Backend interface {
	BeginFrame(clear core.Color)
	SetCamera(view, projection math.Mat4)
	DrawCube(model math.Mat4, offset, scale math.Vec3, tex *scene.Texture)
}

// Materials maps each part material slot to a loaded material.
type Materials map[robot.Material]*scene.Material

// texture returns the slot's texture, falling back to the body slot.
func (m Materials) texture(slot robot.Material) *scene.Texture {
	if mat, ok := m[slot]; ok && mat != nil {
		return mat.Texture
	}
	if mat, ok := m[robot.MaterialBody]; ok && mat != nil {
		return mat.Texture
	}
	return nil
}

// DrawParts submits one cube per composed part, in order.
func DrawParts(b Backend, parts []robot.PartTransform, mats Materials) {
	for _, p := range parts {
		b.DrawCube(p.Model, p.Offset, p.Scale, mats.texture(p.Material))
	}
}

// RenderEngine is the high-level renderer that drives the OpenGL backend.
type RenderEngine struct {
	gl     *opengl.Renderer
	window *core.Window
	Camera *scene.Camera
	Clear  core.Color

	materials Materials

	// Per-frame stats (populated during DrawRobot)
	lastParts int
}

func NewRenderEngine(window *core.Window, camera *scene.Camera) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer(scene.CreateCube(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	re := &RenderEngine{
		gl:        glRenderer,
		window:    window,
		Camera:    camera,
		Clear:     core.ColorField,
		materials: make(Materials),
	}
	re.Resize(window.Width, window.Height)
	window.OnResize(re.Resize)

	log.Info("render engine initialized", "backend", "opengl", "shaders_linked", glRenderer.Linked())
	return re, nil
}

// LoadMaterial loads the texture at path into slot. A texture that fails to
// load is replaced by a solid colour and reported; the frame loop carries on.
func (re *RenderEngine) LoadMaterial(slot robot.Material, path string, flipY bool, fallback core.Color) *scene.Material {
	var mat *scene.Material
	tex, err := scene.LoadTexture(path, flipY)
	if err != nil {
		log.Warn("failed to load texture", "slot", slot, "path", path, "err", err)
		mat = scene.NewFallbackMaterial(slot.String(), to8(fallback.R), to8(fallback.G), to8(fallback.B))
	} else {
		mat = scene.NewMaterial(slot.String(), tex)
	}

	if err := opengl.UploadTexture(mat.Texture); err != nil {
		log.Warn("failed to upload texture", "slot", slot, "err", err)
	}
	re.materials[slot] = mat
	return mat
}

func to8(c float32) uint8 {
	return uint8(math.Clamp(c, 0, 1)*255 + 0.5)
}

// BeginFrame clears the target and uploads the camera matrices.
func (re *RenderEngine) BeginFrame() {
	re.gl.BeginFrame(re.Clear)
	re.gl.SetCamera(re.Camera.GetViewMatrix(), re.Camera.GetProjectionMatrix())
}

// DrawRobot draws the composed parts with the loaded materials.
func (re *RenderEngine) DrawRobot(parts []robot.PartTransform) {
	DrawParts(re.gl, parts, re.materials)
	re.lastParts = len(parts)
}

// Present swaps buffers.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

func (re *RenderEngine) Resize(width, height int) {
	re.gl.SetViewport(width, height)
	if re.Camera != nil {
		re.Camera.UpdateAspectRatio(float32(width), float32(height))
	}
}

func (re *RenderEngine) Destroy() {
	for _, mat := range re.materials {
		opengl.DeleteTexture(mat.Texture)
	}
	re.gl.Destroy()
}

// DrawStats returns the part count of the most recent DrawRobot call.
func (re *RenderEngine) DrawStats() (parts int) {
	return re.lastParts
}
