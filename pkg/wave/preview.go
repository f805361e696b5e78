package wave

import (
	"image"
	"image/draw"
	"math"
)

// RenderPreview paints the whole-track strip: one bar per preview sample
// rising from the bottom, plus a white baseline. A buffer carrying fewer
// samples than the strip is wide is rejected outright and renders nothing.
func RenderPreview(samples []PreviewSample) *image.RGBA {
	if len(samples) < PreviewWidth {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, PreviewWidth, PreviewHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBlack), image.Point{}, draw.Src)

	for x := 0; x < PreviewWidth; x++ {
		s := samples[x]
		h := int(s.Height)
		fillRect(img, x, 31-h, 1, h+1, barColor(s.ColorLevel))
	}
	fillRect(img, 0, 33, PreviewWidth, 1, colorWhite)
	return img
}

// PreviewStrip owns the rendered preview plus the live progress marker. The
// marker position is cached so repeated progress updates that land on the
// same column cost nothing.
type PreviewStrip struct {
	strip  *image.RGBA
	frame  *image.RGBA
	marker int
}

// SetData replaces the strip contents. Undersized data clears the strip.
func (p *PreviewStrip) SetData(samples []PreviewSample) {
	p.strip = RenderPreview(samples)
	p.frame = nil
}

// SetProgress moves the progress marker to the column matching a relative
// track position in [0,1]. Reports whether the marker actually moved, so
// callers can skip redraws.
func (p *PreviewStrip) SetProgress(rel float64) bool {
	pos := int(math.Round(PreviewWidth * rel))
	if pos == p.marker {
		return false
	}
	p.marker = pos
	p.frame = nil
	return true
}

// Marker returns the current marker column.
func (p *PreviewStrip) Marker() int {
	return p.marker
}

// Frame returns the strip with the progress marker stamped on top, or nil
// when no valid preview data has arrived. The frame is cached until the
// strip or the marker changes.
func (p *PreviewStrip) Frame() *image.RGBA {
	if p.strip == nil {
		return nil
	}
	if p.frame != nil {
		return p.frame
	}
	out := image.NewRGBA(p.strip.Bounds())
	draw.Draw(out, out.Bounds(), p.strip, image.Point{}, draw.Src)
	fillRect(out, p.marker, 0, 2, PreviewHeight, colorRed)
	p.frame = out
	return out
}
