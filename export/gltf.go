// Package export writes a composed pose to disk for inspection in external
// glTF viewers.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"brobot/core"
	"brobot/math"
	"brobot/robot"
	"brobot/scene"
)

// Colors tints the exported cubes per material slot, since textures are not
// embedded.
type Colors map[robot.Material]core.Color

func DefaultColors() Colors {
	return Colors{
		robot.MaterialBody: {R: 0.55, G: 0.57, B: 0.62, A: 1},
		robot.MaterialFace: {R: 0.95, G: 0.85, B: 0.70, A: 1},
	}
}

// Document builds a glTF document with one shared unit cube and one node per
// part under a single "robot" root. Each node's matrix is the part's final
// cube matrix.
func Document(parts []robot.PartTransform, colors Colors) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "brobot"

	cube := scene.CreateCube(1)
	positions := make([][3]float32, len(cube.Vertices))
	uvs := make([][2]float32, len(cube.Vertices))
	for i, v := range cube.Vertices {
		positions[i] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
		// glTF puts the UV origin top-left
		uvs[i] = [2]float32{v.UV.X, 1 - v.UV.Y}
	}
	posAcc := modeler.WritePosition(doc, positions)
	uvAcc := modeler.WriteTextureCoord(doc, uvs)
	idxAcc := modeler.WriteIndices(doc, cube.Indices)

	meshFor := make(map[robot.Material]int)
	for _, slot := range []robot.Material{robot.MaterialBody, robot.MaterialFace} {
		c, ok := colors[slot]
		if !ok {
			c = core.ColorWhite
		}
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: slot.String(),
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)},
				MetallicFactor:  gltf.Float(0),
				RoughnessFactor: gltf.Float(0.8),
			},
		})
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: "cube_" + slot.String(),
			Primitives: []*gltf.Primitive{{
				Indices: gltf.Index(idxAcc),
				Attributes: gltf.PrimitiveAttributes{
					gltf.POSITION:   posAcc,
					gltf.TEXCOORD_0: uvAcc,
				},
				Material: gltf.Index(len(doc.Materials) - 1),
			}},
		})
		meshFor[slot] = len(doc.Meshes) - 1
	}

	root := &gltf.Node{Name: "robot"}
	for _, p := range parts {
		m := p.Mesh().Floats()
		var matrix [16]float64
		for i, f := range m {
			matrix[i] = float64(f)
		}
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:   p.Name,
			Mesh:   gltf.Index(meshFor[p.Material]),
			Matrix: matrix,
		})
		root.Children = append(root.Children, len(doc.Nodes)-1)
	}
	doc.Nodes = append(doc.Nodes, root)
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	return doc
}

// WriteGLTF saves the pose to path. A .glb extension writes the binary
// container; anything else writes JSON with the buffer embedded.
func WriteGLTF(path string, parts []robot.PartTransform, colors Colors) error {
	if len(parts) == 0 {
		return fmt.Errorf("export %q: no parts", path)
	}
	doc := Document(parts, colors)

	var err error
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		err = gltf.SaveBinary(doc, path)
	} else {
		for _, b := range doc.Buffers {
			b.EmbeddedResource()
		}
		err = gltf.Save(doc, path)
	}
	if err != nil {
		return fmt.Errorf("export %q: %w", path, err)
	}
	return nil
}

// Node is one part read back from a snapshot.
type Node struct {
	Name   string
	Matrix math.Mat4
}

// ReadGLTF opens a snapshot written by WriteGLTF and returns the children of
// its "robot" node in order.
func ReadGLTF(path string) ([]Node, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	var root *gltf.Node
	for _, n := range doc.Nodes {
		if n.Name == "robot" {
			root = n
			break
		}
	}
	if root == nil {
		return nil, fmt.Errorf("gltf %q: no robot node", path)
	}

	nodes := make([]Node, 0, len(root.Children))
	for _, idx := range root.Children {
		if idx < 0 || idx >= len(doc.Nodes) {
			return nil, fmt.Errorf("gltf %q: child index %d out of range", path, idx)
		}
		gn := doc.Nodes[idx]
		var f [16]float32
		for i, v := range gn.MatrixOrDefault() {
			f[i] = float32(v)
		}
		nodes = append(nodes, Node{Name: gn.Name, Matrix: math.Mat4FromFloats(f)})
	}
	return nodes, nil
}
