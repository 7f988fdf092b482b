// Package combat implements the turn-based encounter: the menu/attack/enemy
// turn state machine, avatar physics during the enemy's turn, bone waves, and
// collision damage. It never draws; the scene layer reads the exported state
// each frame and renders it.
package combat

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/vibecoded/badtime/tuning"
)

// Turn is the top-level combat state.
type Turn int

const (
	TurnMenu Turn = iota
	TurnFighting
	TurnActing
	TurnMercy
	TurnEnemy
)

// Menu options, left to right. Item shares the Acting state after applying
// its heal.
const (
	OptionFight = iota
	OptionAct
	OptionItem
	OptionMercy

	optionCount
)

// Input is the per-frame input snapshot the host feeds into Update. Pressed
// fields are edge-triggered; the rest are held state.
type Input struct {
	Confirm      bool
	LeftPressed  bool
	RightPressed bool
	JumpPressed  bool
	Left         bool
	Right        bool
	Down         bool
}

// Player is the slice of external game state combat is allowed to touch.
// Health only ever decreases here, except for the Item heal.
type Player struct {
	Health    float64
	MaxHealth float64
}

// Outcome reports requests the host must honor after a frame.
type Outcome struct {
	ExitCombat bool
}

// Session is one combat encounter. It is created fresh when the fight starts
// and discarded when it ends; nothing persists across encounters.
type Session struct {
	Turn          Turn
	MenuSelection int
	DialogueText  string
	ActionText    string

	// Timer is state-local: it resets on every transition and its meaning
	// depends on Turn.
	Timer float64

	BarPos    float64
	BarSpeed  float64
	BarActive bool

	// HitShake decays every frame while positive; the renderer uses it as a
	// cosmetic shake offset on the enemy sprite.
	HitShake float64

	AvatarPos cp.Vector
	AvatarVel cp.Vector
	CanJump   bool
	Evasive   bool
	Bones     []Bone

	spec tuning.CombatSpec
	dlg  tuning.DialogueSpec
	rng  *rand.Rand
}

// NewSession starts a fresh encounter in the menu state. The rng drives all
// randomized choices (dialogue, wave mode, wave geometry) so tests can seed it.
func NewSession(spec tuning.CombatSpec, dlg tuning.DialogueSpec, rng *rand.Rand) *Session {
	return &Session{
		Turn:         TurnMenu,
		DialogueText: dlg.Opening,
		BarSpeed:     spec.AttackBar.Speed,
		spec:         spec,
		dlg:          dlg,
		rng:          rng,
	}
}

// Spec returns the tuning the session was created with.
func (s *Session) Spec() tuning.CombatSpec {
	return s.spec
}

// Update advances the encounter by one frame.
func (s *Session) Update(in Input, p *Player) Outcome {
	if s == nil || p == nil {
		return Outcome{}
	}

	if s.HitShake > 0 {
		s.HitShake -= s.spec.ShakeDecay
		if s.HitShake < 0 {
			s.HitShake = 0
		}
	}

	var out Outcome
	switch s.Turn {
	case TurnMenu:
		s.updateMenu(in, p)
	case TurnFighting:
		s.updateFighting(in)
	case TurnActing, TurnMercy:
		if in.Confirm {
			if s.Turn == TurnMercy {
				out.ExitCombat = true
			} else {
				s.enterEnemyTurn()
			}
		}
	case TurnEnemy:
		s.updateEnemyTurn(in, p)
	}
	return out
}

func (s *Session) updateMenu(in Input, p *Player) {
	if in.LeftPressed && s.MenuSelection > 0 {
		s.MenuSelection--
	}
	if in.RightPressed && s.MenuSelection < optionCount-1 {
		s.MenuSelection++
	}
	if !in.Confirm {
		return
	}

	switch s.MenuSelection {
	case OptionFight:
		s.Turn = TurnFighting
		s.Timer = 0
		s.BarActive = true
		s.BarPos = s.spec.AttackBar.Start
		s.BarSpeed = s.spec.AttackBar.Speed
		s.ActionText = ""
	case OptionAct:
		s.Turn = TurnActing
		s.Timer = 0
		s.ActionText = s.pickLine(s.dlg.ActFlavors)
	case OptionItem:
		s.Turn = TurnActing
		s.Timer = 0
		p.Health += s.spec.HealAmount
		if p.Health > p.MaxHealth {
			p.Health = p.MaxHealth
		}
		s.ActionText = s.dlg.ItemText
	case OptionMercy:
		s.Turn = TurnMercy
		s.Timer = 0
		s.ActionText = s.dlg.SpareText
	}
}

func (s *Session) updateFighting(in Input) {
	if s.BarActive {
		s.BarPos += s.BarSpeed
		if s.BarPos > s.spec.AttackBar.Max {
			// Ran off the end of the box without a press.
			s.BarActive = false
			s.ActionText = "MISS"
			s.Timer = 0
		} else if in.Confirm {
			s.BarActive = false
			dmg := AttackDamage(s.spec.AttackBar, s.BarPos)
			if dmg > 0 {
				// A graze that shakes the enemy should never read as zero.
				shown := int(math.Round(dmg))
				if shown < 1 {
					shown = 1
				}
				s.ActionText = fmt.Sprintf("%d DMG", shown)
				s.HitShake = s.spec.ShakeOnHit
			} else {
				s.ActionText = "MISS"
			}
			s.Timer = 0
		}
		return
	}

	// Result is on screen; the next confirm hands the turn over.
	if in.Confirm {
		s.enterEnemyTurn()
	}
}

func (s *Session) enterEnemyTurn() {
	a := s.spec.Arena
	s.Turn = TurnEnemy
	s.Timer = 0
	s.DialogueText = s.pickLine(s.dlg.Taunts)
	s.AvatarPos = cp.Vector{X: (a.Left + a.Right) / 2, Y: a.Floor}
	s.AvatarVel = cp.Vector{}
	s.CanJump = true
	s.Bones = nil
	s.Evasive = s.rng.Intn(2) == 0
}

func (s *Session) updateEnemyTurn(in Input, p *Player) {
	s.Timer++

	s.stepAvatar(in)

	if iv := s.spec.Waves.IntervalTicks; iv > 0 && int(s.Timer)%iv == 0 {
		s.spawnWave()
	}

	if s.stepBones() {
		p.Health -= s.spec.HitDamage
		if p.Health < 0 {
			p.Health = 0
		}
	}

	if s.Timer > s.spec.SurvivalTicks {
		s.Turn = TurnMenu
		s.Timer = 0
		s.Bones = nil
		s.Evasive = false
		s.DialogueText = s.dlg.Closing
	}
}

func (s *Session) pickLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return lines[s.rng.Intn(len(lines))]
}
