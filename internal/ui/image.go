package ui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ansiImage converts an RGBA frame to terminal cells using half blocks: one
// cell covers a 1x2 pixel column pair, upper pixel as foreground, lower as
// background. Odd heights get a black bottom row.
func ansiImage(img *image.RGBA) string {
	if img == nil {
		return ""
	}
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteString("\n")
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().
				Foreground(cellColor(img, x, y)).
				Background(cellColor(img, x, y+1))
			sb.WriteString(style.Render("▀"))
		}
	}
	return sb.String()
}

func cellColor(img *image.RGBA, x, y int) lipgloss.Color {
	if y >= img.Bounds().Max.Y {
		return lipgloss.Color("#000000")
	}
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		// Fully transparent pixel; our frames are opaque, but keep the
		// fallback anyway.
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color(c.Hex())
}
