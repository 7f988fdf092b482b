package main

import (
	"testing"

	"github.com/vibecoded/badtime/settings"
)

func newTestGame() *Game {
	return NewGame(settings.NewManager(nil), false)
}

func typeLine(s *ShellScene, line string) {
	s.Update(&Input{Typed: []rune(line)})
}

func TestShellTypingCombatKeysDoesNotAct(t *testing.T) {
	g := newTestGame()
	s := NewShellScene(g)
	before := len(s.scrollback)

	// Z doubles as the combat confirm key; in the terminal it is just a letter.
	s.Update(&Input{Typed: []rune{'z'}, Confirm: true})
	if s.inputLine != "z" {
		t.Fatalf("input line = %q, want %q", s.inputLine, "z")
	}
	if len(s.scrollback) != before {
		t.Fatalf("typing z submitted the line")
	}

	// Put a command into history, then check W doesn't recall it.
	s.inputLine = ""
	typeLine(s, "whoami")
	s.Update(&Input{Submit: true})

	s.Update(&Input{Typed: []rune{'w'}, UpPressed: true})
	if s.inputLine != "w" {
		t.Fatalf("input line = %q, want %q", s.inputLine, "w")
	}
}

func TestShellEnterSubmits(t *testing.T) {
	g := newTestGame()
	s := NewShellScene(g)
	before := len(s.scrollback)

	typeLine(s, "whoami")
	s.Update(&Input{Submit: true})

	if s.inputLine != "" {
		t.Fatalf("input line not cleared: %q", s.inputLine)
	}
	// Echoed prompt line plus the command output.
	if len(s.scrollback) != before+2 {
		t.Fatalf("scrollback grew by %d lines, want 2", len(s.scrollback)-before)
	}
}

func TestShellHistoryUsesArrowsOnly(t *testing.T) {
	g := newTestGame()
	s := NewShellScene(g)

	typeLine(s, "whoami")
	s.Update(&Input{Submit: true})
	typeLine(s, "uname")
	s.Update(&Input{Submit: true})

	s.Update(&Input{HistoryUp: true})
	if s.inputLine != "uname" {
		t.Fatalf("first recall = %q, want %q", s.inputLine, "uname")
	}
	s.Update(&Input{HistoryUp: true})
	if s.inputLine != "whoami" {
		t.Fatalf("second recall = %q, want %q", s.inputLine, "whoami")
	}
	s.Update(&Input{HistoryDown: true})
	s.Update(&Input{HistoryDown: true})
	if s.inputLine != "" {
		t.Fatalf("walking past the newest entry should clear the line, got %q", s.inputLine)
	}
}
