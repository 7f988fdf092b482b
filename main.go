package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"golang.design/x/clipboard"

	"github.com/vibecoded/badtime/common"
	"github.com/vibecoded/badtime/settings"
)

// clipboardReady gates terminal paste; clipboard init can fail headless.
var clipboardReady bool

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and tuning hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		clipboardReady = true
	}

	store, err := gdata.Open(gdata.Config{AppName: "badtime"})
	if err != nil {
		log.Printf("gdata unavailable, settings won't persist: %v", err)
		store = nil
	}
	sm := settings.NewManager(store)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("badtime")
	ebiten.SetFullscreen(sm.Get().Fullscreen)

	game := NewGame(sm, *debug)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
