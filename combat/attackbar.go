package combat

import (
	"math"

	"github.com/vibecoded/badtime/tuning"
)

// AttackDamage maps a stopped bar position to damage. Full damage inside the
// inner band around the center, linear falloff out to the outer band, zero
// beyond it.
func AttackDamage(bar tuning.AttackBarSpec, pos float64) float64 {
	dist := math.Abs(pos - bar.Center)
	switch {
	case dist < bar.InnerBand:
		return bar.MaxDamage
	case dist < bar.OuterBand:
		return bar.MaxDamage - dist
	default:
		return 0
	}
}
