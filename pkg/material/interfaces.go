// Package material defines surface appearance: the Material contract, the
// per-hit MaterialSample snapshot it produces, and the procedural variants
// (checker, marble, rock, phong, dielectric) that vary a sample by hit point.
package material

import "github.com/nullstride/tracer/pkg/core"

// NormalNoise is the capability a material needs from a noise field to
// perturb shading normals. Implemented by pkg/noise so that material never
// imports noise's concrete generators.
type NormalNoise interface {
	Value(p core.Vec3) float64
	Scale() float64
	Strength() float64
	Eps() float64
}

// Material is the base contract every surface type implements. Procedural
// variants (checker, marble, rock) vary the returned sample by hit point;
// uniform variants (phong, dielectric) return a constant sample.
type Material interface {
	// Sample evaluates the material at a hit point, returning a fully
	// resolved snapshot for the shader and integrator to consume.
	Sample(hit *core.GeometryHit) MaterialSample
}

// MaterialSample is the per-hit, fully evaluated snapshot returned by
// Material.Sample. All color channels are linear in [0,1] unless noted.
type MaterialSample struct {
	BaseColor    core.Vec3 // diffuse albedo
	SpecColor    core.Vec3 // specular tint
	Shininess    float64   // Blinn-Phong exponent, >= 1
	IOR          float64   // index of refraction, >= 1
	Opacity      float64   // 1 = fully opaque, 0 = fully transparent
	Reflectivity float64   // mirror reflectance in [0,1]
	Transparency float64   // transmittance in [0,1]
	Emission     core.Vec3 // emitted radiance, added after lighting
	Noise        NormalNoise
}

// SurfaceInteraction wraps a GeometryHit with the material that produced it.
type SurfaceInteraction struct {
	Hit      core.GeometryHit
	Material Material
}

// Point returns the world-space intersection point.
func (si *SurfaceInteraction) Point() core.Vec3 { return si.Hit.Point }

// Normal returns the geometric hit normal (flipped to face the incoming
// ray), without any noise perturbation.
func (si *SurfaceInteraction) Normal() core.Vec3 { return si.Hit.Normal }

// UV returns the surface parametric coordinates, if the primitive computed any.
func (si *SurfaceInteraction) UV() core.Vec2 { return si.Hit.UV }
