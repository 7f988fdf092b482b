package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vibecoded/badtime/bootseq"
	"github.com/vibecoded/badtime/common"
)

// BootScene plays the fake kernel boot scroll and hands off to login.
type BootScene struct {
	game *Game
	seq  *bootseq.Sequencer
}

func NewBootScene(g *Game) *BootScene {
	return &BootScene{
		game: g,
		seq:  bootseq.New(g.specs.boot),
	}
}

func (s *BootScene) Update(in *Input) error {
	s.seq.Update(in.AnyKeyPressed)
	if s.seq.Done() {
		s.game.setScene(NewLoginScene(s.game))
	}
	return nil
}

func (s *BootScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	lines := s.seq.Visible()

	// Scroll so the newest line stays on screen, like a real console.
	maxLines := (common.BaseHeight - 40) / lineHeight
	start := 0
	if len(lines) > maxLines {
		start = len(lines) - maxLines
	}

	y := 10.0
	for _, line := range lines[start:] {
		clr := lineColor(bootseq.Kind(line))
		drawText(screen, line, 10, y, clr)
		y += lineHeight
	}

	if s.seq.ShowGreeting() {
		drawText(screen, s.game.specs.boot.DistroGreeting, 10, y+lineHeight, colText)
	}
}

func lineColor(kind bootseq.LineKind) color.Color {
	switch kind {
	case bootseq.KindOK:
		return colGreen
	case bootseq.KindWarn:
		return colYellow
	case bootseq.KindFailed:
		return colRed
	default:
		return colText
	}
}
