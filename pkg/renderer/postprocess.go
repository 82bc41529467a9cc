package renderer

import (
	goimage "image"

	"golang.org/x/image/draw"

	"github.com/nullstride/tracer/pkg/imageio"
)

// Upscale resizes frame by an integer scale factor using Catmull-Rom
// resampling via golang.org/x/image/draw, producing a new frame at
// scale*width x scale*height.
func Upscale(frame *imageio.Frame, scale int) *imageio.Frame {
	if scale <= 1 {
		return frame
	}

	src := goimage.NewRGBA(goimage.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			src.SetRGBA(x, y, frame.At(x, y))
		}
	}

	dstW, dstH := frame.Width*scale, frame.Height*scale
	dst := goimage.NewRGBA(goimage.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	out := imageio.NewFrame(dstW, dstH)
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			out.Set(x, y, dst.RGBAAt(x, y))
		}
	}
	return out
}
