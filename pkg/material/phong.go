package material

import "github.com/nullstride/tracer/pkg/core"

// Phong is the reference uniform material: every field is constant across
// the surface. It satisfies both the Blinn-Phong shading contract and the
// integrator's reflectance/transparency/IOR contract directly.
type Phong struct {
	BaseColor    core.Vec3
	SpecColor    core.Vec3
	Shininess    float64
	IOR          float64
	Opacity      float64
	Reflectivity float64
	Transparency float64
	Emission     core.Vec3
	Noise        NormalNoise
}

// NewPhong creates a uniform Phong material with sensible IOR/opacity
// defaults for an opaque, non-reflective, non-transmissive surface.
func NewPhong(baseColor, specColor core.Vec3, shininess float64) *Phong {
	return &Phong{
		BaseColor: baseColor,
		SpecColor: specColor,
		Shininess: shininess,
		IOR:       1.0,
		Opacity:   1.0,
	}
}

// Sample returns the constant material sample; hit is unused since this
// material does not vary across the surface.
func (p *Phong) Sample(hit *core.GeometryHit) MaterialSample {
	return MaterialSample{
		BaseColor:    p.BaseColor,
		SpecColor:    p.SpecColor,
		Shininess:    p.Shininess,
		IOR:          p.IOR,
		Opacity:      p.Opacity,
		Reflectivity: p.Reflectivity,
		Transparency: p.Transparency,
		Emission:     p.Emission,
		Noise:        p.Noise,
	}
}

// NewDielectric creates a glass-like material tinted by baseColor, with the
// given index of refraction and transparency (opacity is 1 - transparency).
func NewDielectric(baseColor core.Vec3, ior, transparency float64) *Phong {
	return &Phong{
		BaseColor:    baseColor,
		SpecColor:    core.NewVec3(1, 1, 1),
		Shininess:    128,
		IOR:          ior,
		Opacity:      1 - transparency,
		Transparency: transparency,
	}
}

// NewMirror creates an opaque reflective material with the given
// reflectivity, tinted by tint.
func NewMirror(tint core.Vec3, reflectivity float64) *Phong {
	return &Phong{
		BaseColor:    tint,
		SpecColor:    core.NewVec3(1, 1, 1),
		Shininess:    256,
		IOR:          1.0,
		Opacity:      1.0,
		Reflectivity: reflectivity,
	}
}

// NewEmissive creates a material that only emits, used for area/sphere
// lights that are also rendered as visible scene geometry.
func NewEmissive(emission core.Vec3) *Phong {
	return &Phong{Opacity: 1.0, Emission: emission}
}
