package main

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.design/x/clipboard"

	"github.com/vibecoded/badtime/common"
	"github.com/vibecoded/badtime/shell"
)

const (
	termMaxScrollback = 200
	termMaxInput      = 200
	startxTicks       = 50
)

// ShellScene is the interactive terminal. It owns the scrollback and input
// line; command semantics live in the shell package.
type ShellScene struct {
	game *Game
	it   *shell.Interpreter

	scrollback []string
	inputLine  string
	history    []string
	histPos    int
	tick       int

	// startxTick counts the zoom-out once startx runs; 0 means inactive.
	startxTick int
}

func NewShellScene(g *Game) *ShellScene {
	it := shell.New(shell.Config{
		User:   "root",
		Host:   "vibebox",
		Kernel: g.specs.boot.KernelVersion,
		Lang:   g.settings.Get().Language,
	})
	return &ShellScene{
		game:       g,
		it:         it,
		scrollback: it.Banner(),
		histPos:    -1,
	}
}

func (s *ShellScene) Update(in *Input) error {
	s.tick++

	if s.startxTick > 0 {
		s.startxTick++
		if s.startxTick >= startxTicks {
			s.game.setScene(NewDesktopScene(s.game))
		}
		return nil
	}

	for _, r := range in.Typed {
		if r >= 32 && r < 127 && len(s.inputLine) < termMaxInput {
			s.inputLine += string(r)
		}
	}
	if in.Backspace && len(s.inputLine) > 0 {
		s.inputLine = s.inputLine[:len(s.inputLine)-1]
	}
	if in.Paste && clipboardReady {
		pasted := string(clipboard.Read(clipboard.FmtText))
		pasted = strings.Map(func(r rune) rune {
			if r < 32 || r > 126 {
				return -1
			}
			return r
		}, pasted)
		if len(s.inputLine)+len(pasted) <= termMaxInput {
			s.inputLine += pasted
		}
	}

	if in.HistoryUp && len(s.history) > 0 {
		if s.histPos < len(s.history)-1 {
			s.histPos++
		}
		s.inputLine = s.history[len(s.history)-1-s.histPos]
	}
	if in.HistoryDown && s.histPos >= 0 {
		s.histPos--
		if s.histPos < 0 {
			s.inputLine = ""
		} else {
			s.inputLine = s.history[len(s.history)-1-s.histPos]
		}
	}

	if in.Submit {
		s.execLine()
	}
	return nil
}

func (s *ShellScene) execLine() {
	line := s.inputLine
	s.inputLine = ""
	s.histPos = -1

	s.appendLine(s.it.Prompt() + line)
	if strings.TrimSpace(line) != "" {
		s.history = append(s.history, line)
	}

	res := s.it.Exec(line)
	for _, out := range res.Output {
		s.appendLine(out)
	}

	switch res.Directive {
	case shell.DirectiveClear:
		s.scrollback = nil
	case shell.DirectiveStartX:
		s.startxTick = 1
	case shell.DirectiveOpenConfig:
		s.game.setScene(NewConfigScene(s.game, s, s.it))
	case shell.DirectiveLogout:
		s.game.setScene(NewLoginScene(s.game))
	case shell.DirectiveReboot:
		s.game.setScene(NewBootScene(s.game))
	case shell.DirectiveShutdown, shell.DirectivePanic:
		// The machine does not approve of being turned off.
		s.game.setScene(NewPanicScene(s.game, s.game.specs.boot.PanicReport))
	}
}

func (s *ShellScene) appendLine(line string) {
	s.scrollback = append(s.scrollback, line)
	if len(s.scrollback) > termMaxScrollback {
		s.scrollback = s.scrollback[len(s.scrollback)-termMaxScrollback:]
	}
}

func (s *ShellScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.startxTick > 0 {
		s.drawStartX(screen)
		return
	}

	maxLines := (common.BaseHeight-20)/lineHeight - 1
	start := 0
	if len(s.scrollback) > maxLines {
		start = len(s.scrollback) - maxLines
	}

	y := 10.0
	for _, line := range s.scrollback[start:] {
		drawText(screen, line, 10, y, colText)
		y += lineHeight
	}

	cursor := ""
	if s.tick/30%2 == 0 {
		cursor = "_"
	}
	drawText(screen, s.it.Prompt()+s.inputLine+cursor, 10, y, colText)
}

// drawStartX fakes the X server taking over: the console text zooms away
// into a brightening screen.
func (s *ShellScene) drawStartX(screen *ebiten.Image) {
	t := float64(s.startxTick) / startxTicks
	scale := 1 + t*3
	fade := uint8(common.Clamp(t*255, 0, 255))

	msg := "Starting X server..."
	w := textWidth(msg) * scale
	drawTextScaled(screen, msg,
		(common.BaseWidth-w)/2,
		common.BaseHeight/2-common.Lerp(0, 100, t),
		scale, colText)

	vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight,
		color.RGBA{R: fade, G: fade, B: fade, A: fade}, false)
}
