package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/vibecoded/badtime/common"
)

const (
	desktopWalkSpeed = 3
	desktopAvatar    = 16
	fadeTicks        = 60
)

// The figure waits at a fixed spot; walking into its radius starts combat.
var (
	figurePos     = cp.Vector{X: 600, Y: 300}
	figureTrigger = 48.0
)

// DesktopScene is the fake graphical session: a desktop wallpaper the player
// walks around on until they bump into the figure.
type DesktopScene struct {
	game *Game

	pos  cp.Vector
	tick int

	// fadeTick counts down the encounter fade once the trigger fires.
	fadeTick int
}

func NewDesktopScene(g *Game) *DesktopScene {
	return &DesktopScene{
		game: g,
		pos:  cp.Vector{X: 120, Y: 300},
	}
}

// NewDesktopSceneAfterCombat places the player just past the figure so the
// encounter doesn't immediately retrigger.
func NewDesktopSceneAfterCombat(g *Game) *DesktopScene {
	s := NewDesktopScene(g)
	s.pos = cp.Vector{X: 700, Y: 300}
	return s
}

func (s *DesktopScene) Update(in *Input) error {
	s.tick++

	if s.fadeTick > 0 {
		s.fadeTick++
		if s.fadeTick >= fadeTicks {
			s.game.setScene(NewCombatScene(s.game))
		}
		return nil
	}

	if in.Cancel {
		s.game.setScene(NewConfigScene(s.game, s, nil))
		return nil
	}

	if in.Left {
		s.pos.X -= desktopWalkSpeed
	}
	if in.Right {
		s.pos.X += desktopWalkSpeed
	}
	if in.Up {
		s.pos.Y -= desktopWalkSpeed
	}
	if in.Down {
		s.pos.Y += desktopWalkSpeed
	}
	s.pos.X = common.Clamp(s.pos.X, desktopAvatar, common.BaseWidth-desktopAvatar)
	s.pos.Y = common.Clamp(s.pos.Y, desktopAvatar, common.BaseHeight-40-desktopAvatar)

	if !s.game.defeated && s.pos.Distance(figurePos) < figureTrigger {
		s.fadeTick = 1
	}
	return nil
}

func (s *DesktopScene) Draw(screen *ebiten.Image) {
	// Classic desktop teal.
	screen.Fill(color.RGBA{R: 0x00, G: 0x80, B: 0x80, A: 0xff})

	// Taskbar.
	vector.FillRect(screen, 0, common.BaseHeight-40, common.BaseWidth, 40,
		color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}, false)
	vector.FillRect(screen, 8, common.BaseHeight-34, 80, 28,
		color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, false)
	drawText(screen, "Start", 28, common.BaseHeight-32, color.Black)

	// A couple of dead icons.
	drawDesktopIcon(screen, 30, 30, "Trash")
	drawDesktopIcon(screen, 30, 110, "My PC")
	drawDesktopIcon(screen, 30, 190, "homework")

	if !s.game.defeated {
		s.drawFigure(screen)
	}

	// Player avatar.
	vector.FillRect(screen,
		float32(s.pos.X-desktopAvatar/2), float32(s.pos.Y-desktopAvatar/2),
		desktopAvatar, desktopAvatar, colHeart, false)

	if s.fadeTick > 0 {
		a := uint8(common.Clamp(float64(s.fadeTick)/fadeTicks*255, 0, 255))
		vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight,
			color.RGBA{A: a}, false)
	}

	if s.tick < 300 && s.fadeTick == 0 {
		drawText(screen, "arrow keys / WASD to walk, ESC for settings", 240, 8, colWhite)
	}
}

func (s *DesktopScene) drawFigure(screen *ebiten.Image) {
	x, y := float32(figurePos.X), float32(figurePos.Y)

	// Stubby hooded figure, idling with a slow bob.
	bob := float32(0)
	if s.tick/40%2 == 0 {
		bob = 2
	}
	vector.FillRect(screen, x-14, y-20+bob, 28, 40, color.RGBA{R: 0x30, G: 0x30, B: 0x40, A: 0xff}, false)
	vector.FillRect(screen, x-10, y-16+bob, 20, 12, colWhite, false)
	vector.FillRect(screen, x-6, y-13+bob, 3, 3, color.Black, false)
	vector.FillRect(screen, x+3, y-13+bob, 3, 3, color.Black, false)
}

func drawDesktopIcon(screen *ebiten.Image, x, y float32, label string) {
	vector.FillRect(screen, x, y, 40, 40, color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}, false)
	vector.StrokeRect(screen, x, y, 40, 40, 1, color.Black, false)
	drawText(screen, label, float64(x)-4, float64(y)+44, colWhite)
}
