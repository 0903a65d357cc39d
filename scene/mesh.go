package scene

import (
	"brobot/core"
	"brobot/math"
)

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
}

func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// CreateCube returns an axis-aligned cube of the given edge length centred on
// the origin. Each face carries its own 0..1 texture coordinates so a texture
// maps once per face.
func CreateCube(size float32) *Mesh {
	s := size / 2

	v := func(x, y, z, u, w float32) core.Vertex {
		return core.Vertex{Position: math.Vec3{X: x, Y: y, Z: z}, UV: math.Vec2{X: u, Y: w}}
	}

	vertices := []core.Vertex{
		// Front face
		v(-s, -s, s, 0, 0), v(s, -s, s, 1, 0), v(s, s, s, 1, 1), v(-s, s, s, 0, 1),
		// Back face
		v(-s, -s, -s, 1, 0), v(s, -s, -s, 0, 0), v(s, s, -s, 0, 1), v(-s, s, -s, 1, 1),
		// Top face
		v(-s, s, -s, 0, 0), v(s, s, -s, 1, 0), v(s, s, s, 1, 1), v(-s, s, s, 0, 1),
		// Bottom face
		v(-s, -s, -s, 0, 1), v(s, -s, -s, 1, 1), v(s, -s, s, 1, 0), v(-s, -s, s, 0, 0),
		// Right face
		v(s, -s, -s, 0, 0), v(s, -s, s, 1, 0), v(s, s, s, 1, 1), v(s, s, -s, 0, 1),
		// Left face
		v(-s, -s, -s, 1, 0), v(-s, -s, s, 0, 0), v(-s, s, s, 0, 1), v(-s, s, -s, 1, 1),
	}

	indices := []uint32{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
		12, 13, 14, 14, 15, 12,
		16, 17, 18, 18, 19, 16,
		20, 21, 22, 22, 23, 20,
	}

	return CreateMeshFromData("Cube", vertices, indices)
}

// Bounds returns the axis-aligned extent of the mesh's vertices.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min = m.Vertices[0].Position
	max = min
	for _, vert := range m.Vertices[1:] {
		p := vert.Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max
}
