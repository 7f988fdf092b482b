package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vibecoded/badtime/combat"
	"github.com/vibecoded/badtime/common"
)

// CombatScene renders and drives one encounter with the figure. All fight
// logic lives in the combat package; this scene only maps input and draws.
type CombatScene struct {
	game    *Game
	session *combat.Session
	player  *combat.Player
	tick    int
}

func NewCombatScene(g *Game) *CombatScene {
	return &CombatScene{
		game:    g,
		session: combat.NewSession(g.specs.combat, g.specs.dialogue, g.rng),
		player:  &combat.Player{Health: 100, MaxHealth: 100},
	}
}

func (s *CombatScene) Update(in *Input) error {
	s.tick++

	out := s.session.Update(combat.Input{
		Confirm:      in.Confirm,
		LeftPressed:  in.LeftPressed,
		RightPressed: in.RightPressed,
		JumpPressed:  in.JumpPressed,
		Left:         in.Left,
		Right:        in.Right,
		Down:         in.Down,
	}, s.player)

	if s.player.Health <= 0 {
		s.game.setScene(NewPanicScene(s.game, s.game.specs.boot.DeathReport))
		return nil
	}
	if out.ExitCombat {
		s.game.defeated = true
		s.game.setScene(NewDesktopSceneAfterCombat(s.game))
	}
	return nil
}

func (s *CombatScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	s.drawEnemy(screen)
	s.drawDialogue(screen)
	s.drawArena(screen)
	s.drawHPBar(screen)
	s.drawMenu(screen)
}

func (s *CombatScene) drawEnemy(screen *ebiten.Image) {
	// Shake kicks the sprite sideways while it decays.
	ox := float32(s.session.HitShake * math.Sin(float64(s.tick)*1.3))
	x := float32(common.BaseWidth/2) + ox

	vector.FillRect(screen, x-30, 60, 60, 90, color.RGBA{R: 0x30, G: 0x30, B: 0x40, A: 0xff}, false)
	vector.FillRect(screen, x-22, 68, 44, 26, colWhite, false)
	vector.FillRect(screen, x-14, 75, 6, 6, color.Black, false)
	vector.FillRect(screen, x+8, 75, 6, 6, color.Black, false)
}

func (s *CombatScene) drawDialogue(screen *ebiten.Image) {
	msg := s.session.DialogueText
	if s.session.Turn == combat.TurnEnemy {
		if s.session.Evasive {
			msg = s.game.specs.dialogue.EvasiveBubble
		} else {
			msg = s.game.specs.dialogue.PlatformBubble
		}
	}
	drawText(screen, msg, (common.BaseWidth-textWidth(msg))/2, 170, colWhite)
}

func (s *CombatScene) drawArena(screen *ebiten.Image) {
	a := s.session.Spec().Arena
	vector.StrokeRect(screen,
		float32(a.Left), float32(a.Top),
		float32(a.Right-a.Left), float32(a.Bottom-a.Top),
		3, colWhite, false)

	switch s.session.Turn {
	case combat.TurnEnemy:
		s.drawBones(screen)
		s.drawHeart(screen)
	case combat.TurnFighting:
		s.drawAttackBar(screen)
	default:
		if s.session.ActionText != "" {
			lines := splitLines(s.session.ActionText)
			y := (a.Top+a.Bottom)/2 - float64(len(lines))*lineHeight/2
			for _, line := range lines {
				drawText(screen, "* "+line, a.Left+20, y, colWhite)
				y += lineHeight
			}
		}
	}
}

func (s *CombatScene) drawBones(screen *ebiten.Image) {
	for _, b := range s.session.Bones {
		vector.FillRect(screen,
			float32(b.Pos.X), float32(b.Pos.Y),
			float32(b.Size.X), float32(b.Size.Y),
			colBone, false)
	}
}

func (s *CombatScene) drawHeart(screen *ebiten.Image) {
	bb := s.session.AvatarBB()
	vector.FillRect(screen,
		float32(bb.L), float32(bb.B),
		float32(bb.R-bb.L), float32(bb.T-bb.B),
		colHeart, false)
}

func (s *CombatScene) drawAttackBar(screen *ebiten.Image) {
	bar := s.session.Spec().AttackBar
	a := s.session.Spec().Arena
	top := float32(a.Top + 40)
	height := float32(a.Bottom - a.Top - 80)

	// Damage bands around the center.
	vector.FillRect(screen, float32(bar.Center-bar.OuterBand), top,
		float32(2*bar.OuterBand), height,
		color.RGBA{R: 0x28, G: 0x50, B: 0x28, A: 0xff}, false)
	vector.FillRect(screen, float32(bar.Center-bar.InnerBand), top,
		float32(2*bar.InnerBand), height,
		color.RGBA{R: 0x40, G: 0x90, B: 0x40, A: 0xff}, false)

	if s.session.BarActive || s.session.ActionText == "" {
		vector.FillRect(screen, float32(s.session.BarPos)-3, top, 6, height, colWhite, false)
	}

	if !s.session.BarActive && s.session.ActionText != "" {
		msg := s.session.ActionText
		drawTextScaled(screen, msg,
			(common.BaseWidth-textWidth(msg)*2)/2, float64(top)-30, 2, colWhite)
	}
}

func (s *CombatScene) drawHPBar(screen *ebiten.Image) {
	const barX, barY, barW, barH = 300, 480, 200, 16

	ratio := common.Clamp(s.player.Health/s.player.MaxHealth, 0, 1)
	vector.FillRect(screen, barX, barY, barW, barH, colRed, false)
	vector.FillRect(screen, barX, barY, float32(barW*ratio), barH, colYellow, false)

	label := fmt.Sprintf("HP %d/%d",
		int(math.Round(s.player.Health)), int(s.player.MaxHealth))
	drawText(screen, label, barX+barW+12, barY+2, colWhite)
	drawText(screen, "badtime  LV 1", barX-130, barY+2, colWhite)
}

var menuLabels = [...]string{"FIGHT", "ACT", "ITEM", "MERCY"}

func (s *CombatScene) drawMenu(screen *ebiten.Image) {
	const (
		menuY  = 520
		btnW   = 150
		btnH   = 48
		margin = 30
	)
	total := len(menuLabels)*btnW + (len(menuLabels)-1)*margin
	x := float32((common.BaseWidth - total) / 2)

	for i, label := range menuLabels {
		clr := color.RGBA{R: 0xff, G: 0x80, A: 0xff}
		if s.session.Turn == combat.TurnMenu && i == s.session.MenuSelection {
			clr = colYellow
			vector.FillRect(screen, x-6, menuY+14, 8, 8, colHeart, false)
		}
		vector.StrokeRect(screen, x, menuY, btnW, btnH, 2, clr, false)
		drawText(screen, label, float64(x)+(btnW-textWidth(label))/2, menuY+18, clr)
		x += btnW + margin
	}
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
