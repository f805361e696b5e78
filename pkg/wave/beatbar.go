package wave

import (
	"image"
	"image/draw"
)

const beatBarGap = 6

// RenderBeatBar paints the 4-beat phrase indicator: four outlined boxes
// with fixed gaps, the box for the current beat-in-bar filled solid. A beat
// outside 1..4 fills none.
func RenderBeatBar(beat, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBlack), image.Point{}, draw.Src)

	boxWidth := (width - 1 - 3*beatBarGap) / 4
	boxHeight := height - 1
	if boxWidth < 1 || boxHeight < 1 {
		return img
	}
	for i := 0; i < 4; i++ {
		x := i * (boxWidth + beatBarGap)
		strokeRect(img, x, 0, boxWidth, boxHeight, colorYellow)
		if i == beat-1 {
			fillRect(img, x, 0, boxWidth+1, boxHeight+1, colorYellow)
		}
	}
	return img
}
