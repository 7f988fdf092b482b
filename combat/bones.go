package combat

import "github.com/jakecoffman/cp"

// Bone is one moving obstacle rectangle, top-left anchored. Bones are owned
// by the session and live only for the enemy turn that spawned them.
type Bone struct {
	Pos  cp.Vector
	Size cp.Vector
	Vel  cp.Vector
}

// BB returns the bone's box in screen coordinates (B is the top edge, T the
// bottom), matching how the avatar hitbox is built.
func (b Bone) BB() cp.BB {
	return cp.BB{
		L: b.Pos.X,
		B: b.Pos.Y,
		R: b.Pos.X + b.Size.X,
		T: b.Pos.Y + b.Size.Y,
	}
}

// stepBones advances every bone, culls the ones that left the horizontal
// bounds, and reports whether any bone overlaps the avatar this frame. The
// report is a single flag: overlapping several bones at once still costs one
// hit.
func (s *Session) stepBones() bool {
	hit := false
	avatar := s.AvatarBB()
	a := s.spec.Arena

	kept := s.Bones[:0]
	for _, b := range s.Bones {
		b.Pos = b.Pos.Add(b.Vel)
		if b.BB().Intersects(avatar) {
			hit = true
		}
		if b.Pos.X < a.CullLeft || b.Pos.X > a.CullRight {
			continue
		}
		kept = append(kept, b)
	}
	s.Bones = kept
	return hit
}
