package tuning

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CombatSpec holds every tunable constant of the combat encounter. All values
// are per-frame quantities; the host runs a fixed 60 TPS timestep.
type CombatSpec struct {
	Arena     ArenaSpec     `yaml:"arena"`
	AttackBar AttackBarSpec `yaml:"attack_bar"`
	Avatar    AvatarSpec    `yaml:"avatar"`
	Waves     WaveSpec      `yaml:"waves"`

	SurvivalTicks float64 `yaml:"survival_ticks"`
	HitDamage     float64 `yaml:"hit_damage"`
	HealAmount    float64 `yaml:"heal_amount"`
	ShakeOnHit    float64 `yaml:"shake_on_hit"`
	ShakeDecay    float64 `yaml:"shake_decay"`
}

// ArenaSpec is the rectangle the avatar is confined to. Bones are culled once
// their X position leaves [CullLeft, CullRight].
type ArenaSpec struct {
	Left      float64 `yaml:"left"`
	Right     float64 `yaml:"right"`
	Top       float64 `yaml:"top"`
	Floor     float64 `yaml:"floor"`
	Bottom    float64 `yaml:"bottom"`
	CullLeft  float64 `yaml:"cull_left"`
	CullRight float64 `yaml:"cull_right"`
}

// AttackBarSpec describes the timing mini-game. Damage is MaxDamage inside
// InnerBand of Center, MaxDamage minus distance out to OuterBand, zero beyond.
type AttackBarSpec struct {
	Start     float64 `yaml:"start"`
	Speed     float64 `yaml:"speed"`
	Center    float64 `yaml:"center"`
	Max       float64 `yaml:"max"`
	InnerBand float64 `yaml:"inner_band"`
	OuterBand float64 `yaml:"outer_band"`
	MaxDamage float64 `yaml:"max_damage"`
}

type AvatarSpec struct {
	Gravity       float64 `yaml:"gravity"`
	JumpVelocity  float64 `yaml:"jump_velocity"`
	FastFallAccel float64 `yaml:"fast_fall_accel"`
	MoveSpeed     float64 `yaml:"move_speed"`
	HitboxSize    float64 `yaml:"hitbox_size"`
}

type WaveSpec struct {
	IntervalTicks int     `yaml:"interval_ticks"`
	Speed         float64 `yaml:"speed"`
	GapHeight     float64 `yaml:"gap_height"`
	BoneWidth     float64 `yaml:"bone_width"`
	LowHeight     float64 `yaml:"low_height"`
	HighClearance float64 `yaml:"high_clearance"`
}

// DefaultCombatSpec returns the compiled-in tuning. combat.yaml overrides
// individual fields on top of these values.
func DefaultCombatSpec() CombatSpec {
	return CombatSpec{
		Arena: ArenaSpec{
			Left:      50,
			Right:     750,
			Top:       240,
			Floor:     440,
			Bottom:    460,
			CullLeft:  -50,
			CullRight: 850,
		},
		AttackBar: AttackBarSpec{
			Start:     50,
			Speed:     8,
			Center:    400,
			Max:       750,
			InnerBand: 20,
			OuterBand: 100,
			MaxDamage: 100,
		},
		Avatar: AvatarSpec{
			Gravity:       0.9,
			JumpVelocity:  -13,
			FastFallAccel: 0.8,
			MoveSpeed:     4,
			HitboxSize:    10,
		},
		Waves: WaveSpec{
			IntervalTicks: 40,
			Speed:         5.5,
			GapHeight:     60,
			BoneWidth:     20,
			LowHeight:     40,
			HighClearance: 40,
		},
		SurvivalTicks: 400,
		HitDamage:     5,
		HealAmount:    40,
		ShakeOnHit:    10,
		ShakeDecay:    0.5,
	}
}

// DialogueSpec is the text pool for the encounter. Combat dialogue stays
// English regardless of the shell language, matching the rest of the fight UI.
type DialogueSpec struct {
	Opening        string   `yaml:"opening"`
	Closing        string   `yaml:"closing"`
	Taunts         []string `yaml:"taunts"`
	ActFlavors     []string `yaml:"act_flavors"`
	ItemText       string   `yaml:"item_text"`
	SpareText      string   `yaml:"spare_text"`
	EvasiveBubble  string   `yaml:"evasive_bubble"`
	PlatformBubble string   `yaml:"platform_bubble"`
}

func DefaultDialogueSpec() DialogueSpec {
	return DialogueSpec{
		Opening:        "You feel like you're gonna have a bad time.",
		Closing:        "You feel your sins crawling on your back.",
		Taunts:         []string{"heh heh heh..."},
		ActFlavors:     []string{"Check: Sans 1 ATK 1 DEF.\nThe easiest enemy. Can only deal 1 damage."},
		ItemText:       "You ate the Legendary Hero.\nYou recovered 40 HP!",
		SpareText:      "You spared Sans.",
		EvasiveBubble:  "just dodge, buddy.",
		PlatformBubble: "hop to it.",
	}
}

// BootSpec drives the fake boot sequence.
type BootSpec struct {
	Lines          []string `yaml:"lines"`
	TicksPerPhase  int      `yaml:"ticks_per_phase"`
	GraceTicks     int      `yaml:"grace_ticks"`
	CompleteTicks  int      `yaml:"complete_ticks"`
	PanicReport    []string `yaml:"panic_report"`
	DeathReport    []string `yaml:"death_report"`
	KernelVersion  string   `yaml:"kernel_version"`
	DistroGreeting string   `yaml:"distro_greeting"`
}

func DefaultBootSpec() BootSpec {
	return BootSpec{
		TicksPerPhase: 2,
		GraceTicks:    60,
		CompleteTicks: 90,
		KernelVersion: "6.9.420-vibecoded",
	}
}

// LoadSpec reads and unmarshals a YAML spec file onto base, so fields absent
// from the file keep their default values.
func LoadSpec[T any](filename string, base T) (T, error) {
	data, err := Load(filename)
	if err != nil {
		return base, fmt.Errorf("tuning: load %s: %w", filename, err)
	}
	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return base, fmt.Errorf("tuning: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

func LoadCombatSpec() (CombatSpec, error) {
	return LoadSpec("combat.yaml", DefaultCombatSpec())
}

func LoadDialogueSpec() (DialogueSpec, error) {
	return LoadSpec("dialogue.yaml", DefaultDialogueSpec())
}

func LoadBootSpec() (BootSpec, error) {
	return LoadSpec("boot.yaml", DefaultBootSpec())
}
