package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"brobot/core"
	"brobot/internal/log"
	"brobot/math"
	"brobot/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// Renderer is the OpenGL rendering backend. It draws one textured unit cube
// per call.
type Renderer struct {
	program uint32
	// linked is false when shader compilation or linking failed; draws then
	// go to an incomplete program and produce nothing.
	linked bool

	modelLoc      int32
	viewLoc       int32
	projectionLoc int32
	textureLoc    int32

	cube *GPUMesh
}

// vertex shader: model/view/projection transform + texture coordinate passthrough
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec2 fragUV;

void main() {
    gl_Position = projection * view * model * vec4(inPosition, 1.0);
    fragUV      = inUV;
}
` + "\x00"

// fragment shader: unlit texture sample
const fragSrc = `
#version 410 core
in vec2 fragUV;

uniform sampler2D texture1;

out vec4 outColor;

void main() {
    outColor = texture(texture1, fragUV);
}
` + "\x00"

// NewRenderer initialises OpenGL and uploads the cube mesh.
// Must be called after the GLFW window context is made current.
//
// Only a failed gl.Init is fatal. Shader problems are logged and leave the
// renderer running without a usable program.
func NewRenderer(cube *scene.Mesh) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	log.Info("OpenGL initialised", "version", version)

	r := &Renderer{}
	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		log.Error("shader program incomplete", "err", err)
	} else {
		r.linked = true
	}
	r.program = prog
	r.modelLoc = gl.GetUniformLocation(prog, gl.Str("model\x00"))
	r.viewLoc = gl.GetUniformLocation(prog, gl.Str("view\x00"))
	r.projectionLoc = gl.GetUniformLocation(prog, gl.Str("projection\x00"))
	r.textureLoc = gl.GetUniformLocation(prog, gl.Str("texture1\x00"))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	gl.UseProgram(prog)
	gl.Uniform1i(r.textureLoc, 0)

	r.cube = upload(cube)
	return r, nil
}

// Linked reports whether the shader program compiled and linked.
func (r *Renderer) Linked() bool {
	return r.linked
}

// SetViewport resizes the OpenGL viewport.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetCamera uploads the view and projection matrices.
func (r *Renderer) SetCamera(view, projection math.Mat4) {
	gl.UseProgram(r.program)
	// Mat4 is [4][4]float32 stored column-major, so it goes up as-is (transpose=false).
	gl.UniformMatrix4fv(r.viewLoc, 1, false, &view[0][0])
	gl.UniformMatrix4fv(r.projectionLoc, 1, false, &projection[0][0])
}

// BeginFrame clears the framebuffer with the given colour.
func (r *Renderer) BeginFrame(clear core.Color) {
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawCube draws the unit cube with model · translate(offset) · scale(scale),
// sampling tex. A texture that was never uploaded binds as texture 0.
func (r *Renderer) DrawCube(model math.Mat4, offset, scale math.Vec3, tex *scene.Texture) {
	m := model.Translate(offset).Scale(scale)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.modelLoc, 1, false, &m[0][0])

	gl.ActiveTexture(gl.TEXTURE0)
	var id uint32
	if tex != nil {
		id = tex.GLID
	}
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.BindVertexArray(r.cube.VAO)
	gl.DrawElements(gl.TRIANGLES, r.cube.IndexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all GPU resources.
func (r *Renderer) Destroy() {
	if r.cube != nil {
		gl.DeleteVertexArrays(1, &r.cube.VAO)
		gl.DeleteBuffers(1, &r.cube.VBO)
		gl.DeleteBuffers(1, &r.cube.EBO)
		r.cube = nil
	}
	gl.DeleteProgram(r.program)
}

// upload creates the VAO for mesh.
func upload(mesh *scene.Mesh) *GPUMesh {
	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{IndexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.GenBuffers(1, &gpu.EBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	uvOff := int(unsafe.Offsetof(v.UV))

	// location 0: Position (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	// location 1: UV (vec2)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(mesh.Indices)*4,
		gl.Ptr(mesh.Indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return gpu
}

// ── shader helpers ────────────────────────────────────────────────────────────

// newProgram compiles and links both stages. On failure the program object is
// still returned so callers can keep running degraded.
func newProgram(vertSrc, fragSrc string) (uint32, error) {
	prog := gl.CreateProgram()

	vert, vertErr := compileShader(vertSrc, gl.VERTEX_SHADER)
	frag, fragErr := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if vertErr != nil {
		return prog, fmt.Errorf("vertex: %w", vertErr)
	}
	if fragErr != nil {
		return prog, fmt.Errorf("fragment: %w", fragErr)
	}

	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(infoLog))
		return prog, fmt.Errorf("link failed: %v", strings.TrimRight(infoLog, "\x00"))
	}
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(infoLog))
		return shader, fmt.Errorf("compile failed: %v", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}
