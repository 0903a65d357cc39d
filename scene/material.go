package scene

// Material binds the texture a cube is drawn with.
type Material struct {
	Name    string
	Texture *Texture
	// Fallback is true when the texture file could not be loaded and a solid
	// colour stands in for it.
	Fallback bool
}

func NewMaterial(name string, tex *Texture) *Material {
	return &Material{Name: name, Texture: tex}
}

// NewFallbackMaterial returns a material backed by a solid texture.
func NewFallbackMaterial(name string, r, g, b uint8) *Material {
	return &Material{
		Name:     name,
		Texture:  NewSolidTexture(name+"-fallback", r, g, b, 255),
		Fallback: true,
	}
}
