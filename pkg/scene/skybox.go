package scene

import (
	"math"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/loaders"
)

// EquirectangularSkybox is a Background backed by a loaded environment map,
// sampled by converting the ray direction to spherical (u,v) coordinates.
type EquirectangularSkybox struct {
	image *loaders.ImageData
}

// LoadSkybox loads an equirectangular environment map from path.
func LoadSkybox(path string) (*EquirectangularSkybox, error) {
	img, err := loaders.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return &EquirectangularSkybox{image: img}, nil
}

// Sample returns the environment color in the given direction, using the
// same spherical parameterization as sphere UVs: theta = acos(clamp(y,-1,1)),
// phi = atan2(z,x).
func (s *EquirectangularSkybox) Sample(direction core.Vec3) core.Vec3 {
	d := direction.Normalize()
	theta := math.Acos(max(-1, min(1, d.Y)))
	phi := math.Atan2(d.Z, d.X)

	u := phi/(2*math.Pi) + 0.5
	v := theta / math.Pi

	x := int(u * float64(s.image.Width))
	y := int(v * float64(s.image.Height))
	x = clampInt(x, 0, s.image.Width-1)
	y = clampInt(y, 0, s.image.Height-1)

	return s.image.Pixels[y*s.image.Width+x]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
