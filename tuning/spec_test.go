package tuning

import (
	"testing"
)

func TestDefaultCombatSpec(t *testing.T) {
	spec := DefaultCombatSpec()

	if spec.AttackBar.Start != 50 || spec.AttackBar.Speed != 8 || spec.AttackBar.Center != 400 {
		t.Fatalf("attack bar defaults off: %+v", spec.AttackBar)
	}
	if spec.Arena.Left != 50 || spec.Arena.Right != 750 || spec.Arena.Floor != 440 {
		t.Fatalf("arena defaults off: %+v", spec.Arena)
	}
	if spec.Avatar.Gravity != 0.9 || spec.Avatar.JumpVelocity != -13 {
		t.Fatalf("avatar defaults off: %+v", spec.Avatar)
	}
	if spec.SurvivalTicks != 400 || spec.HitDamage != 5 || spec.HealAmount != 40 {
		t.Fatalf("combat defaults off: %+v", spec)
	}

	// The arena must leave room on both sides of the gap center range.
	if spec.Arena.Top+spec.Waves.GapHeight >= spec.Arena.Bottom-spec.Waves.GapHeight {
		t.Fatalf("gap height %v too large for arena span", spec.Waves.GapHeight)
	}
}

func TestLoadCombatSpecMatchesDefaults(t *testing.T) {
	spec, err := LoadCombatSpec()
	if err != nil {
		t.Fatalf("LoadCombatSpec: %v", err)
	}
	if spec != DefaultCombatSpec() {
		t.Fatalf("combat.yaml drifted from compiled-in defaults:\nfile: %+v\ncode: %+v",
			spec, DefaultCombatSpec())
	}
}

func TestLoadSpecOverridesOntoBase(t *testing.T) {
	base := DefaultCombatSpec()

	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	writeFile(t, "tuning/combat.yaml", "hit_damage: 9\nattack_bar:\n  speed: 12\n")

	spec, err := LoadSpec("combat.yaml", base)
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if spec.HitDamage != 9 {
		t.Errorf("override lost: HitDamage = %v, want 9", spec.HitDamage)
	}
	if spec.AttackBar.Speed != 12 {
		t.Errorf("override lost: AttackBar.Speed = %v, want 12", spec.AttackBar.Speed)
	}
	// Untouched fields keep their defaults.
	if spec.AttackBar.Center != base.AttackBar.Center {
		t.Errorf("unrelated field changed: Center = %v", spec.AttackBar.Center)
	}
	if spec.Arena != base.Arena {
		t.Errorf("unrelated section changed: %+v", spec.Arena)
	}
}

func TestLoadSpecBadYAMLKeepsBase(t *testing.T) {
	base := DefaultCombatSpec()

	dir := t.TempDir()
	restore := chdir(t, dir)
	defer restore()

	writeFile(t, "tuning/combat.yaml", "hit_damage: [this is not a number\n")

	spec, err := LoadSpec("combat.yaml", base)
	if err == nil {
		t.Fatalf("expected unmarshal error")
	}
	if spec != base {
		t.Fatalf("base should be returned untouched on error")
	}
}

func TestDialogueDefaultsNonEmpty(t *testing.T) {
	dlg := DefaultDialogueSpec()
	if dlg.Opening == "" || dlg.Closing == "" || len(dlg.Taunts) == 0 || len(dlg.ActFlavors) == 0 {
		t.Fatalf("dialogue defaults incomplete: %+v", dlg)
	}
}

func TestLoadBootSpecHasScript(t *testing.T) {
	spec, err := LoadBootSpec()
	if err != nil {
		t.Fatalf("LoadBootSpec: %v", err)
	}
	if len(spec.Lines) == 0 {
		t.Fatalf("boot.yaml has no lines")
	}
	if len(spec.PanicReport) == 0 || len(spec.DeathReport) == 0 {
		t.Fatalf("boot.yaml missing panic reports")
	}
	if spec.TicksPerPhase < 1 {
		t.Fatalf("ticks_per_phase must be positive, got %d", spec.TicksPerPhase)
	}
}
