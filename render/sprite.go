// Package render blits RGBA sprite images onto the terminal and provides
// the frame-polled visual effect helpers (glow pulse, cursor blink).
// Each terminal cell carries a 2x2 pixel block using quadrant characters,
// with the cell's foreground and background averaged from the lit and unlit
// pixels it covers.
package render

import (
	"image"

	"github.com/gdamore/tcell/v2"
)

// quadrantRunes indexes by a 4-bit pattern: bit 8 = top-left, 4 = top-right,
// 2 = bottom-left, 1 = bottom-right.
var quadrantRunes = [16]rune{
	' ', '▗', '▖', '▄', '▝', '▐', '▞', '▟',
	'▘', '▚', '▌', '▙', '▀', '▜', '▛', '█',
}

// SpriteCellSize returns the terminal footprint of an image in cells.
func SpriteCellSize(img *image.RGBA) (w, h int) {
	b := img.Bounds()
	return (b.Dx() + 1) / 2, (b.Dy() + 1) / 2
}

// BlitSprite draws the image with its top-left at cell (x, y). Transparent
// pixels leave the underlying background color visible.
func BlitSprite(s tcell.Screen, img *image.RGBA, x, y int, bg tcell.Color) {
	bounds := img.Bounds()
	cellW, cellH := SpriteCellSize(img)

	for cy := 0; cy < cellH; cy++ {
		for cx := 0; cx < cellW; cx++ {
			px := bounds.Min.X + cx*2
			py := bounds.Min.Y + cy*2

			var pattern int
			var litR, litG, litB, litN int
			sample := func(dx, dy, bit int) {
				c := img.RGBAAt(px+dx, py+dy)
				if c.A == 0 {
					return
				}
				pattern |= bit
				litR += int(c.R)
				litG += int(c.G)
				litB += int(c.B)
				litN++
			}
			sample(0, 0, 8)
			sample(1, 0, 4)
			sample(0, 1, 2)
			sample(1, 1, 1)

			if pattern == 0 {
				continue
			}

			fg := tcell.NewRGBColor(
				int32(litR/litN), int32(litG/litN), int32(litB/litN))
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			s.SetContent(x+cx, y+cy, quadrantRunes[pattern], nil, style)
		}
	}
}
