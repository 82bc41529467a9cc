// Package renderer drives the pixel/row render loop: jittered primary-ray
// sampling, gamma correction, and optional parallel row dispatch, with
// progress reporting and a post-process upscale stage.
package renderer

import (
	"context"
	"image/color"
	"math"
	"math/rand"
	"sync/atomic"

	"github.com/nullstride/tracer/pkg/core"
	"github.com/nullstride/tracer/pkg/imageio"
	"github.com/nullstride/tracer/pkg/integrator"
	"github.com/nullstride/tracer/pkg/shading"
)

// Camera is the capability the render loop needs to turn normalized image
// coordinates into primary rays.
type Camera interface {
	MakeRay(u, v float64) core.Ray
}

// Options configures a render pass.
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Shader          shading.Shader
}

// Progress is notified after each completed row, with the number of rows
// completed so far and the total row count, so callers can throttle or
// display it however they like.
type Progress func(rowsDone, totalRows int)

// jitterPattern is the fixed 2x2 supersampling pattern used when
// samples_per_pixel == 4, giving deterministic, reproducible output.
var jitterPattern = [4][2]float64{
	{-0.25, -0.25}, {0.25, -0.25}, {-0.25, 0.25}, {0.25, 0.25},
}

// RenderLinear renders the whole frame on the calling goroutine, row by
// row, top to bottom.
func RenderLinear(scene integrator.Scene, cam Camera, opts Options, progress Progress) *imageio.Frame {
	frame := imageio.NewFrame(opts.Width, opts.Height)
	random := rand.New(rand.NewSource(1))

	for j := 0; j < opts.Height; j++ {
		renderRow(scene, cam, opts, frame, j, random)
		if progress != nil {
			progress(j+1, opts.Height)
		}
	}
	return frame
}

// RenderParallel renders the frame using a worker pool sized to available
// hardware parallelism, dispatching one row per task. Rows are pulled by
// workers and may complete out of order, but each row writes to a disjoint
// contiguous span of the frame buffer, so no synchronization is needed on
// it. ctx allows cooperative cancellation between rows; on cancellation the
// function returns early with a partially rendered frame and false.
func RenderParallel(ctx context.Context, scene integrator.Scene, cam Camera, opts Options, progress Progress, pool RowPool) (*imageio.Frame, bool) {
	frame := imageio.NewFrame(opts.Width, opts.Height)

	var rowsDone atomic.Int64

	for j := 0; j < opts.Height; j++ {
		row := j
		if ctx.Err() != nil {
			break
		}

		pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			random := rand.New(rand.NewSource(int64(row) + 1))
			renderRow(scene, cam, opts, frame, row, random)
			done := rowsDone.Add(1)
			if progress != nil {
				progress(int(done), opts.Height)
			}
		})
	}

	pool.Wait()
	return frame, int(rowsDone.Load()) == opts.Height
}

// RowPool is the narrow worker-pool capability RenderParallel needs, so this
// package isn't coupled to a specific pool implementation's full API.
type RowPool interface {
	Submit(task func())
	Wait()
}

// renderRow fills one row of frame, sampling spp jittered primary rays per
// pixel and gamma-correcting the averaged result to 8-bit.
func renderRow(scene integrator.Scene, cam Camera, opts Options, frame *imageio.Frame, j int, random *rand.Rand) {
	for i := 0; i < opts.Width; i++ {
		u := float64(i)/float64(opts.Width-1) - 0.5
		v := float64(opts.Height-1-j)/float64(opts.Height-1) - 0.5

		accum := core.Vec3{}
		for s := 0; s < opts.SamplesPerPixel; s++ {
			du, dv := sampleJitter(s, opts.SamplesPerPixel, random)
			pixelWidth := 1.0 / float64(opts.Width)
			pixelHeight := 1.0 / float64(opts.Height)
			ray := cam.MakeRay(u+du*pixelWidth, v+dv*pixelHeight)
			accum = accum.Add(integrator.CastRay(ray, opts.MaxDepth, opts.Shader, scene))
		}
		avg := accum.Multiply(1.0 / float64(opts.SamplesPerPixel))
		frame.Set(i, j, toRGBA(avg))
	}
}

// sampleJitter returns the (du,dv) offset, in pixel widths, for sample index
// s of spp total: the fixed 2x2 pattern when spp==4, otherwise uniform
// random jitter within the pixel.
func sampleJitter(s, spp int, random *rand.Rand) (float64, float64) {
	if spp == 4 {
		p := jitterPattern[s%4]
		return p[0], p[1]
	}
	return random.Float64() - 0.5, random.Float64() - 0.5
}

// toRGBA gamma-corrects a linear [0,1] color to 8-bit sRGB-ish output using
// gamma 2.2, with rounding.
func toRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: u8(c.X),
		G: u8(c.Y),
		B: u8(c.Z),
		A: 255,
	}
}

func u8(v float64) uint8 {
	v = core.ClampFloat01(v)
	scaled := 255*math.Pow(v, 1.0/2.2) + 0.5
	return uint8(math.Max(0, math.Min(255, scaled)))
}
