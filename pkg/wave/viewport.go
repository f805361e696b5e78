package wave

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Viewport extracts the currently visible slice of a composited image and
// stamps the position cursor into it, unscaled. The slice is always exactly
// VisibleSamples wide: columns past either end of the composite render
// black, so frames near the end of a track keep a constant size instead of
// shrinking. Returns nil when there is nothing to show yet.
func Viewport(img *image.RGBA, v View) *image.RGBA {
	if img == nil || v.VisibleSamples <= 0 {
		return nil
	}
	out := image.NewRGBA(image.Rect(0, 0, v.VisibleSamples, BandHeight))
	draw.Draw(out, out.Bounds(), image.NewUniform(colorBlack), image.Point{}, draw.Src)

	src := image.Rect(v.ScrollOffset, 0, v.ScrollOffset+v.VisibleSamples, BandHeight).
		Intersect(img.Bounds())
	if !src.Empty() {
		dst := src.Sub(image.Pt(v.ScrollOffset, 0))
		draw.Draw(out, dst, img, src.Min, draw.Src)
	}

	fillRect(out, v.MarkerOffset(), 0, 4, BandHeight, colorRed)
	return out
}

// Frame produces the displayable frame for one refresh tick: the viewport
// slice scaled to the output surface with a bilinear filter, aspect ratio
// ignored.
func Frame(img *image.RGBA, v View, outW, outH int) *image.RGBA {
	slice := Viewport(img, v)
	if slice == nil || outW <= 0 || outH <= 0 {
		return nil
	}
	return Scale(slice, outW, outH)
}

// Scale resizes an image to the given size, smoothing with bilinear
// interpolation.
func Scale(img image.Image, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}
