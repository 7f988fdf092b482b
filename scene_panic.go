package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PanicScene shows a kernel panic report. Enter reboots the machine; there is
// no other way out, which is accurate.
type PanicScene struct {
	game   *Game
	report []string
	tick   int
}

func NewPanicScene(g *Game, report []string) *PanicScene {
	return &PanicScene{game: g, report: report}
}

func (s *PanicScene) Update(in *Input) error {
	s.tick++
	// Small delay so a held Enter from the previous scene can't skip the
	// whole report.
	if s.tick > 30 && in.Submit {
		s.game.defeated = false
		s.game.setScene(NewBootScene(s.game))
	}
	return nil
}

func (s *PanicScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	y := 30.0
	for _, line := range s.report {
		drawText(screen, line, 20, y, colText)
		y += lineHeight
	}
}
