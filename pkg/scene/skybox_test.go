package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nullstride/tracer/pkg/core"
)

func TestLoadSkybox_SamplesLoadedPixels(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sky.png")

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 120), B: 10, A: 255})
		}
	}
	f, err := os.Create(path)
	assert.NoError(t, err)
	assert.NoError(t, png.Encode(f, img))
	assert.NoError(t, f.Close())

	sky, err := LoadSkybox(path)
	assert.NoError(t, err)

	color1 := sky.Sample(core.NewVec3(1, 0, 0))
	color2 := sky.Sample(core.NewVec3(-1, 0, 0))
	assert.NotEqual(t, color1, color2)
}

func TestLoadSkybox_MissingFileReturnsError(t *testing.T) {
	_, err := LoadSkybox("does-not-exist.png")
	assert.Error(t, err)
}
