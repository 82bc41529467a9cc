package noise

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
)

// FBM is fractal Brownian motion: an amplitude-normalized octave sum of an
// owned Perlin base, with configurable lacunarity (frequency growth per
// octave) and gain (amplitude decay per octave).
type FBM struct {
	Config
	base       *Perlin
	Octaves    int
	Lacunarity float64
	Gain       float64
}

// NewFBM creates an FBM field owning its own Perlin base noise.
func NewFBM(cfg Config, octaves int, lacunarity, gain float64, seed int64) *FBM {
	return &FBM{
		Config:     cfg,
		base:       NewPerlin(DefaultConfig(), seed),
		Octaves:    octaves,
		Lacunarity: lacunarity,
		Gain:       gain,
	}
}

// Value samples the fractal sum at p.
func (f *FBM) Value(p core.Vec3) float64 {
	tp := f.transform(p)
	sum := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxAmplitude := 0.0

	for i := 0; i < f.Octaves; i++ {
		sample := tp.Multiply(frequency)
		sum += amplitude * f.base.gen.Noise3D(sample.X, sample.Y, sample.Z)
		maxAmplitude += amplitude
		amplitude *= f.Gain
		frequency *= f.Lacunarity
	}

	if maxAmplitude == 0 {
		return 0
	}
	return sum / maxAmplitude
}

// Scale returns the configured sampling scale.
func (f *FBM) Scale() float64 { return f.Config.Scale }

// Strength returns the configured perturbation strength.
func (f *FBM) Strength() float64 { return f.Config.Strength }

// Eps returns the configured finite-difference step.
func (f *FBM) Eps() float64 { return f.Config.Eps }

// Ridge is ridged multifractal noise: 1 - |perlin|, squared, which produces
// sharp ridges along the zero crossings of the base Perlin field.
type Ridge struct {
	Config
	base *Perlin
}

// NewRidge creates a Ridge field owning its own Perlin base noise.
func NewRidge(cfg Config, seed int64) *Ridge {
	return &Ridge{Config: cfg, base: NewPerlin(DefaultConfig(), seed)}
}

// Value samples the ridged field at p.
func (r *Ridge) Value(p core.Vec3) float64 {
	tp := r.transform(p)
	n := r.base.gen.Noise3D(tp.X, tp.Y, tp.Z)
	ridge := 1 - math.Abs(n)
	return ridge * ridge
}

// Scale returns the configured sampling scale.
func (r *Ridge) Scale() float64 { return r.Config.Scale }

// Strength returns the configured perturbation strength.
func (r *Ridge) Strength() float64 { return r.Config.Strength }

// Eps returns the configured finite-difference step.
func (r *Ridge) Eps() float64 { return r.Config.Eps }
