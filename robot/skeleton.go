package robot

import "brobot/math"

// Material selects the texture a part is drawn with.
type Material int

const (
	MaterialBody Material = iota
	MaterialFace
)

func (m Material) String() string {
	switch m {
	case MaterialFace:
		return "face"
	default:
		return "body"
	}
}

// Rotation is one joint rotation in degrees about Axis.
type Rotation struct {
	Axis    math.Vec3
	Degrees float32
}

// PartSpec describes one cube of the figure. The part's model matrix is
// root · translate(Joint) · rotations · translate(Pivot): moving to the joint
// before rotating makes the limb swing about its attachment point, and the
// pivot offset re-centres the unit cube afterwards.
type PartSpec struct {
	Name     string
	Joint    math.Vec3
	Pivot    math.Vec3
	Offset   math.Vec3
	Scale    math.Vec3
	Material Material

	// Rotations is nil for rigid parts.
	Rotations func(j JointAngles, greeting bool) []Rotation
}

// PartTransform is a composed part ready for drawing.
type PartTransform struct {
	Name     string
	Model    math.Mat4
	Offset   math.Vec3
	Scale    math.Vec3
	Material Material
}

// Mesh returns the final cube matrix: model · translate(offset) · scale(scale).
func (p PartTransform) Mesh() math.Mat4 {
	return p.Model.Translate(p.Offset).Scale(p.Scale)
}

// Skeleton is the fixed, ordered part list.
type Skeleton []PartSpec

// RootTransform places the body: translate(position) · rotate(heading, Y).
func RootTransform(position math.Vec3, heading float32) math.Mat4 {
	return math.Mat4Identity().
		Translate(position).
		Rotate(math.Vec3Up, math.Radians(heading))
}

func swing(deg float32) []Rotation {
	return []Rotation{{Axis: math.Vec3Right, Degrees: deg}}
}

func mirrorX(v math.Vec3) math.Vec3 {
	return math.Vec3{X: -v.X, Y: v.Y, Z: v.Z}
}

// NewSkeleton builds the stock figure (head, torso, two arms, two legs) in
// draw order.
func NewSkeleton(body BodyConfig, greetRaise float32) Skeleton {
	return Skeleton{
		{
			Name:     "head",
			Offset:   body.HeadOffset,
			Scale:    body.HeadScale,
			Material: MaterialFace,
		},
		{
			Name:  "torso",
			Scale: body.TorsoScale,
		},
		{
			Name:  "left_arm",
			Joint: mirrorX(body.Shoulder),
			Pivot: body.LimbPivot,
			Scale: body.ArmScale,
			Rotations: func(j JointAngles, _ bool) []Rotation {
				return swing(j.ArmSwing)
			},
		},
		{
			Name:  "right_leg",
			Joint: body.Hip,
			Pivot: body.LimbPivot,
			Scale: body.LegScale,
			Rotations: func(j JointAngles, _ bool) []Rotation {
				return swing(j.LegSwing)
			},
		},
		{
			Name:  "right_arm",
			Joint: body.Shoulder,
			Pivot: body.LimbPivot,
			Scale: body.ArmScale,
			Rotations: func(j JointAngles, greeting bool) []Rotation {
				if greeting {
					return []Rotation{
						{Axis: math.Vec3Right, Degrees: greetRaise},
						{Axis: math.Vec3Front, Degrees: j.Wave},
					}
				}
				return swing(-j.ArmSwing)
			},
		},
		{
			Name:  "left_leg",
			Joint: mirrorX(body.Hip),
			Pivot: body.LimbPivot,
			Scale: body.LegScale,
			Rotations: func(j JointAngles, _ bool) []Rotation {
				return swing(-j.LegSwing)
			},
		},
	}
}

// Compose returns one transform per part, in skeleton order.
func (s Skeleton) Compose(root math.Mat4, j JointAngles, greeting bool) []PartTransform {
	out := make([]PartTransform, 0, len(s))
	for _, spec := range s {
		m := root.Translate(spec.Joint)
		if spec.Rotations != nil {
			for _, r := range spec.Rotations(j, greeting) {
				m = m.Rotate(r.Axis, math.Radians(r.Degrees))
			}
		}
		m = m.Translate(spec.Pivot)

		out = append(out, PartTransform{
			Name:     spec.Name,
			Model:    m,
			Offset:   spec.Offset,
			Scale:    spec.Scale,
			Material: spec.Material,
		})
	}
	return out
}

// Find returns the named part.
func Find(parts []PartTransform, name string) (PartTransform, bool) {
	for _, p := range parts {
		if p.Name == name {
			return p, true
		}
	}
	return PartTransform{}, false
}
