package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vibecoded/badtime/common"
	"github.com/vibecoded/badtime/settings"
	"github.com/vibecoded/badtime/tuning"
)

// Scene is one screen of the fake OS. Scenes switch by calling Game.setScene;
// the game never stacks them.
type Scene interface {
	Update(in *Input) error
	Draw(screen *ebiten.Image)
}

type gameSpecs struct {
	combat   tuning.CombatSpec
	dialogue tuning.DialogueSpec
	boot     tuning.BootSpec
}

func loadSpecs() gameSpecs {
	combat, err := tuning.LoadCombatSpec()
	if err != nil {
		log.Printf("combat spec: %v", err)
	}
	dialogue, err := tuning.LoadDialogueSpec()
	if err != nil {
		log.Printf("dialogue spec: %v", err)
	}
	boot, err := tuning.LoadBootSpec()
	if err != nil {
		log.Printf("boot spec: %v", err)
	}
	return gameSpecs{combat: combat, dialogue: dialogue, boot: boot}
}

type Game struct {
	frames int
	debug  bool

	input    *Input
	scene    Scene
	settings *settings.Manager

	specs   gameSpecs
	watcher *tuning.Watcher
	rng     *rand.Rand

	// defeated flips once the player spares the figure; the desktop scene
	// reads it to keep the encounter from retriggering.
	defeated bool
}

func NewGame(sm *settings.Manager, debug bool) *Game {
	g := &Game{
		debug:    debug,
		input:    NewInput(),
		settings: sm,
		specs:    loadSpecs(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if debug {
		w, err := tuning.NewWatcher(tuning.DefaultDebounce, "tuning")
		if err != nil {
			log.Printf("tuning watcher: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.scene = NewBootScene(g)
	return g
}

func (g *Game) setScene(s Scene) {
	g.scene = s
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()
	g.drainWatcher()
	return g.scene.Update(g.input)
}

// drainWatcher reloads tuning on spec file edits. Running sessions keep the
// spec they started with; the reload lands on the next encounter.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	reload := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("tuning changed: %s", name)
			reload = true
		case err := <-g.watcher.Errors:
			log.Printf("tuning watcher: %v", err)
		default:
			if reload {
				g.specs = loadSpecs()
			}
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS()),
			0, common.BaseHeight-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
