package combat

import "github.com/jakecoffman/cp"

// spawnWave emits the next wave of bones for the mode chosen at enemy-turn
// entry. Evasive waves are vertical-gap pairs from the right; platform waves
// are one of three low/high obstacle shapes.
func (s *Session) spawnWave() {
	if s.Evasive {
		s.spawnGapWave()
	} else {
		s.spawnPlatformWave()
	}
}

// spawnGapWave spawns a top and bottom segment leaving a fixed-height gap at
// a random center. The two heights plus the gap always cover the arena's
// vertical span.
func (s *Session) spawnGapWave() {
	a := s.spec.Arena
	w := s.spec.Waves

	x := a.CullRight - w.BoneWidth
	lo := a.Top + w.GapHeight
	hi := a.Bottom - w.GapHeight
	gapCenter := lo + s.rng.Float64()*(hi-lo)

	gapTop := gapCenter - w.GapHeight/2
	gapBottom := gapCenter + w.GapHeight/2

	s.Bones = append(s.Bones,
		Bone{
			Pos:  cp.Vector{X: x, Y: a.Top},
			Size: cp.Vector{X: w.BoneWidth, Y: gapTop - a.Top},
			Vel:  cp.Vector{X: -w.Speed},
		},
		Bone{
			Pos:  cp.Vector{X: x, Y: gapBottom},
			Size: cp.Vector{X: w.BoneWidth, Y: a.Bottom - gapBottom},
			Vel:  cp.Vector{X: -w.Speed},
		},
	)
}

func (s *Session) spawnPlatformWave() {
	a := s.spec.Arena
	w := s.spec.Waves

	rightX := a.CullRight - w.BoneWidth
	leftX := a.CullLeft

	low := func(x, vx float64) Bone {
		return Bone{
			Pos:  cp.Vector{X: x, Y: a.Bottom - w.LowHeight},
			Size: cp.Vector{X: w.BoneWidth, Y: w.LowHeight},
			Vel:  cp.Vector{X: vx},
		}
	}

	switch s.rng.Intn(3) {
	case 0:
		// Single low bone from the right: jump it.
		s.Bones = append(s.Bones, low(rightX, -w.Speed))
	case 1:
		// High bone from the left: stay grounded under it.
		s.Bones = append(s.Bones, Bone{
			Pos:  cp.Vector{X: leftX, Y: a.Top},
			Size: cp.Vector{X: w.BoneWidth, Y: a.Bottom - w.HighClearance - a.Top},
			Vel:  cp.Vector{X: w.Speed},
		})
	case 2:
		// Pincer: low bones from both sides at once.
		s.Bones = append(s.Bones, low(rightX, -w.Speed), low(leftX, w.Speed))
	}
}
