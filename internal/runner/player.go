package runner

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tsunami-run/internal/config"
	"github.com/vovakirdan/tsunami-run/internal/core"
)

// contactSkin widens platform boxes so that resting exactly on a top face
// still counts as contact despite float rounding.
const contactSkin = 1e-3

// Player is the runner's kinematic state. It is a value: Step returns the
// next state and never mutates the receiver.
type Player struct {
	Pos      mgl32.Vec3
	Vel      mgl32.Vec3
	Yaw      float32 // Radians, rotation about +y
	Pitch    float32 // Radians, clamped to ±PitchLimit
	Grounded bool
	Jumps    int // Jumps used since last landing

	jumpHeld bool // Jump flag of the previous step, for edge detection
	cfg      config.PlayerConfig
}

// NewPlayer creates a player at the configured spawn point, airborne.
func NewPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Pos: mgl32.Vec3{cfg.Spawn[0], cfg.Spawn[1], cfg.Spawn[2]},
		cfg: cfg,
	}
}

// HalfExtents returns the half size of the player's collision box.
func (p Player) HalfExtents() mgl32.Vec3 {
	return mgl32.Vec3{p.cfg.HalfExtents[0], p.cfg.HalfExtents[1], p.cfg.HalfExtents[2]}
}

// Bounds returns the player's collision box at its current position.
func (p Player) Bounds() cube.BBox {
	return core.BoxAround(p.Pos, p.HalfExtents())
}

// Step integrates one frame of movement and resolves collisions against the
// given platform boxes, which are tested in order.
func (p Player) Step(dt float32, in core.Controls, platforms []cube.BBox) Player {
	dt = core.SanitizeDelta(dt, 0)
	next := p

	// Orientation
	next.Yaw -= in.LookX * p.cfg.LookSensitivity
	next.Pitch -= in.LookY * p.cfg.LookSensitivity
	next.Pitch = core.ClampF32(next.Pitch, -p.cfg.PitchLimit, p.cfg.PitchLimit)

	// Horizontal velocity is set outright from input, never accumulated
	dir := mgl32.Vec3{}
	if in.Moving() {
		if in.Forward {
			dir[2]--
		}
		if in.Backward {
			dir[2]++
		}
		if in.Left {
			dir[0]--
		}
		if in.Right {
			dir[0]++
		}
		// Opposite keys cancel out
		if dir.LenSqr() > 0 {
			dir = mgl32.Rotate3DY(next.Yaw).Mul3x1(dir.Normalize())
		}
	}
	next.Vel[0] = dir.X() * p.cfg.Speed
	next.Vel[2] = dir.Z() * p.cfg.Speed

	if !p.Grounded {
		next.Vel[1] -= p.cfg.Gravity * dt
	}

	// Jump fires on the rising edge only
	if in.Jump && !p.jumpHeld {
		switch {
		case p.Grounded:
			next.Vel[1] = p.cfg.JumpForce
			next.Grounded = false
			next.Jumps = 1
		case p.Jumps < p.cfg.MaxJumps:
			next.Vel[1] = p.cfg.JumpForce
			next.Jumps++
		}
	}
	next.jumpHeld = in.Jump

	candidate := p.Pos.Add(next.Vel.Mul(dt))
	next.Grounded = false

	box := core.BoxAround(candidate, p.HalfExtents())
	for _, platform := range platforms {
		if !platform.Grow(contactSkin).IntersectsWith(box) {
			continue
		}
		top := platform.Max().Y()
		if next.Vel.Y() <= 0 && p.Pos.Y() >= top-p.cfg.LandingTolerance {
			candidate[1] = top + p.cfg.HalfExtents[1]
			next.Vel[1] = 0
			next.Grounded = true
			next.Jumps = 0
			continue
		}
		// Side contact: refuse the horizontal move, keep the vertical one
		candidate[0] = p.Pos.X()
		candidate[2] = p.Pos.Z()
	}

	next.Pos = candidate
	return next
}

// HorizontalSpeed returns the magnitude of the xz velocity.
func (p Player) HorizontalSpeed() float32 {
	return math32.Hypot(p.Vel.X(), p.Vel.Z())
}
