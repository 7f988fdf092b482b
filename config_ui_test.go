package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vibecoded/badtime/settings"
)

func TestFullscreenToggleKeepsWindowAndSettingInSync(t *testing.T) {
	g := newTestGame()
	s := NewConfigScene(g, NewShellScene(g), nil)

	for i := 0; i < 2; i++ {
		want := !g.settings.Get().Fullscreen
		s.toggleFullscreen()
		if got := g.settings.Get().Fullscreen; got != want {
			t.Fatalf("toggle %d: setting = %v, want %v", i, got, want)
		}
		if got := ebiten.IsFullscreen(); got != want {
			t.Fatalf("toggle %d: window fullscreen = %v, want %v", i, got, want)
		}
	}
}

func TestLanguageToggleCycles(t *testing.T) {
	g := newTestGame()
	s := NewConfigScene(g, NewShellScene(g), nil)

	s.toggleLanguage()
	if got := g.settings.Get().Language; got != settings.LangTurkish {
		t.Fatalf("first toggle: language = %v", got)
	}
	s.toggleLanguage()
	if got := g.settings.Get().Language; got != settings.LangEnglish {
		t.Fatalf("second toggle: language = %v", got)
	}
}
