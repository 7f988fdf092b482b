// Package bootseq drives the fake kernel boot scroll shown before login.
// It owns only the timing and line-reveal logic; the scene layer renders
// whatever Visible returns.
package bootseq

import (
	"strings"

	"github.com/vibecoded/badtime/tuning"
)

// LineKind classifies a boot line for coloring.
type LineKind int

const (
	KindPlain LineKind = iota
	KindOK
	KindWarn
	KindFailed
)

// Kind inspects a line's status prefix.
func Kind(line string) LineKind {
	switch {
	case strings.HasPrefix(line, "[  OK  ]"):
		return KindOK
	case strings.HasPrefix(line, "[ WARN ]"):
		return KindWarn
	case strings.HasPrefix(line, "[FAILED]"):
		return KindFailed
	default:
		return KindPlain
	}
}

// Sequencer reveals boot lines on a fixed cadence, then waits out a short
// grace period before reporting done. Any skip input fast-forwards.
type Sequencer struct {
	spec  tuning.BootSpec
	tick  int
	shown int
	grace int
	done  bool
}

func New(spec tuning.BootSpec) *Sequencer {
	if spec.TicksPerPhase < 1 {
		spec.TicksPerPhase = 1
	}
	return &Sequencer{spec: spec}
}

// Update advances one tick. skip reveals the rest of the scroll on the first
// press and finishes the sequence on the second.
func (s *Sequencer) Update(skip bool) {
	if s.done {
		return
	}

	if skip {
		if s.shown < len(s.spec.Lines) {
			s.shown = len(s.spec.Lines)
			return
		}
		s.done = true
		return
	}

	if s.shown < len(s.spec.Lines) {
		s.tick++
		if s.tick >= s.spec.TicksPerPhase {
			s.tick = 0
			s.shown++
		}
		return
	}

	s.grace++
	if s.grace >= s.spec.CompleteTicks {
		s.done = true
	}
}

// Visible returns the revealed prefix of the boot scroll.
func (s *Sequencer) Visible() []string {
	return s.spec.Lines[:s.shown]
}

// ShowGreeting reports whether the distro greeting should be on screen yet.
func (s *Sequencer) ShowGreeting() bool {
	return s.shown == len(s.spec.Lines) && s.grace >= s.spec.GraceTicks
}

func (s *Sequencer) Done() bool {
	return s.done
}
