package combat

import "github.com/jakecoffman/cp"

// stepAvatar runs one frame of heart physics during the enemy turn: gravity,
// jump, fast-fall, direct horizontal movement, integration, floor and arena
// clamping.
func (s *Session) stepAvatar(in Input) {
	av := s.spec.Avatar
	a := s.spec.Arena

	s.AvatarVel.Y += av.Gravity

	if in.JumpPressed && s.CanJump {
		s.AvatarVel.Y = av.JumpVelocity
		s.CanJump = false
	}
	if !s.CanJump && in.Down {
		s.AvatarVel.Y += av.FastFallAccel
	}

	// Horizontal movement is positional, not velocity-integrated.
	if in.Left {
		s.AvatarPos.X -= av.MoveSpeed
	}
	if in.Right {
		s.AvatarPos.X += av.MoveSpeed
	}

	s.AvatarPos = s.AvatarPos.Add(s.AvatarVel)

	if s.AvatarPos.Y >= a.Floor {
		s.AvatarPos.Y = a.Floor
		s.AvatarVel.Y = 0
		s.CanJump = true
	}
	if s.AvatarPos.Y < a.Top {
		s.AvatarPos.Y = a.Top
	}
	if s.AvatarPos.X < a.Left {
		s.AvatarPos.X = a.Left
	}
	if s.AvatarPos.X > a.Right {
		s.AvatarPos.X = a.Right
	}
}

// AvatarBB is the fixed-size hitbox centered on the avatar position, in
// screen coordinates (B is the top edge, T the bottom).
func (s *Session) AvatarBB() cp.BB {
	half := s.spec.Avatar.HitboxSize / 2
	return cp.BB{
		L: s.AvatarPos.X - half,
		B: s.AvatarPos.Y - half,
		R: s.AvatarPos.X + half,
		T: s.AvatarPos.Y + half,
	}
}
