package main

import (
	"image/color"

	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
)

var termFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

const (
	glyphWidth = 7
	lineHeight = 14
)

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, termFace, op)
}

// drawTextScaled draws s at an integer scale for headings; the bitmap face
// stays crisp under whole-number scaling.
func drawTextScaled(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, termFace, op)
}

// textWidth is the pixel width of s in the terminal face at scale 1.
func textWidth(s string) float64 {
	return float64(len(s) * glyphWidth)
}

var (
	colText   = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	colDim    = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	colGreen  = color.RGBA{G: 0xcc, A: 0xff}
	colYellow = color.RGBA{R: 0xcc, G: 0xcc, A: 0xff}
	colRed    = color.RGBA{R: 0xdd, G: 0x20, B: 0x20, A: 0xff}
	colWhite  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colHeart  = color.RGBA{R: 0xff, B: 0x30, A: 0xff}
	colBone   = color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}
)
