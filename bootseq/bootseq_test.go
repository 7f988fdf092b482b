package bootseq

import (
	"testing"

	"github.com/vibecoded/badtime/tuning"
)

func testSpec() tuning.BootSpec {
	spec := tuning.DefaultBootSpec()
	spec.Lines = []string{
		"[  OK  ] Started Load Kernel Modules.",
		"[ WARN ] Mounted /dev/hopes (read-only).",
		"[FAILED] Failed to start Motivation Daemon.",
		"Reached target Graphical Interface.",
	}
	spec.TicksPerPhase = 2
	spec.GraceTicks = 10
	spec.CompleteTicks = 20
	return spec
}

func TestKind(t *testing.T) {
	cases := []struct {
		line string
		want LineKind
	}{
		{"[  OK  ] Started thing.", KindOK},
		{"[ WARN ] Something odd.", KindWarn},
		{"[FAILED] Broke.", KindFailed},
		{"Reached target.", KindPlain},
		{"", KindPlain},
	}
	for _, c := range cases {
		if got := Kind(c.line); got != c.want {
			t.Errorf("Kind(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestRevealCadence(t *testing.T) {
	s := New(testSpec())

	if len(s.Visible()) != 0 {
		t.Fatalf("expected no lines before first tick")
	}
	s.Update(false)
	if len(s.Visible()) != 0 {
		t.Fatalf("line revealed too early")
	}
	s.Update(false)
	if len(s.Visible()) != 1 {
		t.Fatalf("expected 1 line after %d ticks, got %d", 2, len(s.Visible()))
	}

	for i := 0; i < 6; i++ {
		s.Update(false)
	}
	if len(s.Visible()) != 4 {
		t.Fatalf("expected all 4 lines, got %d", len(s.Visible()))
	}
	if s.Done() {
		t.Fatalf("done before grace elapsed")
	}
}

func TestGraceThenDone(t *testing.T) {
	spec := testSpec()
	s := New(spec)
	for len(s.Visible()) < len(spec.Lines) {
		s.Update(false)
	}

	for i := 0; i < spec.GraceTicks; i++ {
		if s.ShowGreeting() {
			t.Fatalf("greeting shown %d ticks into grace", i)
		}
		s.Update(false)
	}
	if !s.ShowGreeting() {
		t.Fatalf("greeting not shown after grace")
	}

	for i := spec.GraceTicks; i < spec.CompleteTicks; i++ {
		if s.Done() {
			t.Fatalf("done %d ticks into grace", i)
		}
		s.Update(false)
	}
	if !s.Done() {
		t.Fatalf("not done after complete ticks")
	}
}

func TestSkipTwice(t *testing.T) {
	s := New(testSpec())

	s.Update(true)
	if len(s.Visible()) != 4 {
		t.Fatalf("first skip should reveal everything, got %d lines", len(s.Visible()))
	}
	if s.Done() {
		t.Fatalf("first skip must not finish the sequence")
	}

	s.Update(true)
	if !s.Done() {
		t.Fatalf("second skip should finish the sequence")
	}
}

func TestDefaultBootLinesClassify(t *testing.T) {
	spec, err := tuning.LoadBootSpec()
	if err != nil {
		t.Fatalf("LoadBootSpec: %v", err)
	}
	if len(spec.Lines) == 0 {
		t.Fatalf("boot.yaml has no lines")
	}
	var ok, warn int
	for _, line := range spec.Lines {
		switch Kind(line) {
		case KindOK:
			ok++
		case KindWarn:
			warn++
		}
	}
	if ok == 0 {
		t.Fatalf("expected some [  OK  ] lines in boot.yaml")
	}
}
