package export

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"turtlecode/turtle"
)

// RenderPreview draws the pen-down strokes of cmds onto a white canvas with
// cellPx pixels per turtle unit. The canvas covers everywhere the turtle
// went, pen up or down.
func RenderPreview(cmds []turtle.Command, cellPx int) *image.RGBA {
	if cellPx < 1 {
		cellPx = 1
	}
	tr := turtle.Simulate(cmds)
	b := tr.Bounds
	width, height := b.Dx()*cellPx, b.Dy()*cellPx
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	stroke := max(float64(cellPx)/4, 1) * 64
	dasher.SetStroke(fixed.Int26_6(stroke), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	dasher.SetColor(color.Black)

	px := func(p image.Point) fixed.Point26_6 {
		return rasterx.ToFixedP(
			(float64(p.X-b.Min.X)+.5)*float64(cellPx),
			(float64(p.Y-b.Min.Y)+.5)*float64(cellPx),
		)
	}
	for _, s := range tr.Strokes {
		dasher.Start(px(s[0]))
		if len(s) == 1 {
			// A lone pen-down still leaves a dot.
			dot := px(s[0])
			dot.X++
			dasher.Line(dot)
		}
		for _, p := range s[1:] {
			dasher.Line(px(p))
		}
		dasher.Stop(false)
	}
	dasher.Draw()
	return img
}
