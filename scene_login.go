package main

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

type loginPhase int

const (
	loginUsername loginPhase = iota
	loginPassword
)

// LoginScene is the classic tty login prompt. Only "root" gets in; the
// password is accepted blind, like the best production systems.
type LoginScene struct {
	game *Game

	phase    loginPhase
	username string
	password string
	failed   bool
	tick     int
}

func NewLoginScene(g *Game) *LoginScene {
	return &LoginScene{game: g}
}

func (s *LoginScene) Update(in *Input) error {
	s.tick++

	field := &s.username
	if s.phase == loginPassword {
		field = &s.password
	}

	for _, r := range in.Typed {
		if r >= 32 && r < 127 && len(*field) < 32 {
			*field += string(r)
		}
	}
	if in.Backspace && len(*field) > 0 {
		*field = (*field)[:len(*field)-1]
	}

	if !in.Submit {
		return nil
	}

	switch s.phase {
	case loginUsername:
		if strings.TrimSpace(s.username) == "" {
			return nil
		}
		s.phase = loginPassword
		s.failed = false
	case loginPassword:
		if strings.TrimSpace(s.username) == "root" {
			s.game.setScene(NewShellScene(s.game))
			return nil
		}
		s.username = ""
		s.password = ""
		s.phase = loginUsername
		s.failed = true
	}
	return nil
}

func (s *LoginScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	y := 20.0
	drawText(screen, s.game.specs.boot.DistroGreeting, 10, y, colDim)
	y += lineHeight * 2

	cursor := ""
	if s.tick/30%2 == 0 {
		cursor = "_"
	}

	userLine := "vibebox login: " + s.username
	if s.phase == loginUsername {
		userLine += cursor
	}
	drawText(screen, userLine, 10, y, colText)
	y += lineHeight

	if s.phase == loginPassword {
		// Password input draws nothing, the terminal way.
		drawText(screen, "Password: "+cursor, 10, y, colText)
		y += lineHeight
	}

	if s.failed {
		y += lineHeight
		drawText(screen, "Login incorrect", 10, y, colText)
	}
}
