package wave

import (
	"image"
	"image/color"
	"image/draw"
)

var (
	colorBlack  = color.RGBA{0, 0, 0, 255}
	colorWhite  = color.RGBA{255, 255, 255, 255}
	colorRed    = color.RGBA{255, 0, 0, 255}
	colorYellow = color.RGBA{255, 255, 0, 255}
)

// barColor maps an intensity level to the blue-to-white ramp used for both
// the detail and preview bars: pure blue at level 0, near white at the top.
func barColor(level uint8) color.RGBA {
	return color.RGBA{36 * level, 36 * level, 255, 255}
}

// Composite renders the full-track waveform image: black background, white
// center line, one vertical amplitude bar per sample and, when a beat grid
// is present, tick marks along the top and bottom edges. The image starts
// with markerOffset blank columns so the track's first sample lines up with
// the position cursor at scroll offset zero.
//
// The result depends only on the arguments; scrolling never requires a
// recomposite.
func Composite(samples []Sample, markers []BeatMarker, markerOffset int) *image.RGBA {
	width := markerOffset + len(samples)
	if width < 1 {
		width = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, BandHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBlack), image.Point{}, draw.Src)

	center := BandHeight / 2
	fillRect(img, 0, center, width, 1, colorWhite)

	for i, s := range samples {
		x := markerOffset + i
		h := int(s.Amplitude)
		fillRect(img, x, center-h, 1, 2*h+1, barColor(s.ColorLevel))
	}

	if len(samples) > 0 {
		for _, m := range markers {
			tick := colorWhite
			length := 5
			if m.Downbeat() {
				tick = colorRed
				length = 8
			}
			x := m.TimeMs*SampleRate/1000 + markerOffset
			fillRect(img, x-1, 0, 4, length, tick)
			fillRect(img, x-1, BandHeight-length, 4, length, tick)
		}
	}
	return img
}

// fillRect paints a solid rectangle, clipped to the image bounds.
func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// strokeRect outlines a rectangle one pixel wide, endpoints inclusive.
func strokeRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	fillRect(img, x, y, w+1, 1, c)
	fillRect(img, x, y+h, w+1, 1, c)
	fillRect(img, x, y, 1, h+1, c)
	fillRect(img, x+w, y, 1, h+1, c)
}
