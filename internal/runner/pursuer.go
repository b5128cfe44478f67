package runner

import (
	"github.com/chewxy/math32"

	"github.com/vovakirdan/tsunami-run/internal/config"
)

// Pursuer is the tsunami: a wall sweeping toward -z that speeds up over time.
// Only Z matters for gameplay.
type Pursuer struct {
	Z     float32
	Speed float32
	Phase float32 // Seconds of animation, cosmetic only

	cfg config.PursuerConfig
}

// NewPursuer creates the wave at its starting position and speed.
func NewPursuer(cfg config.PursuerConfig) Pursuer {
	return Pursuer{Z: cfg.StartZ, Speed: cfg.StartSpeed, cfg: cfg}
}

// Advance moves the wave by one frame, then ramps its speed.
func (p *Pursuer) Advance(dt float32) {
	if dt <= 0 {
		return
	}
	p.Z -= p.Speed * dt
	p.Speed += p.cfg.Ramp * dt
	p.Phase += dt
}

// ApplyPowerUp knocks the wave's speed down, never below the floor.
func (p *Pursuer) ApplyPowerUp() {
	p.Speed = math32.Max(p.cfg.FloorSpeed, p.Speed-p.cfg.PowerUpCut)
}

// Catches reports whether a player at playerZ has been swallowed.
func (p Pursuer) Catches(playerZ float32) bool {
	return playerZ > p.Z-p.cfg.CatchMargin
}

// Gap returns how far ahead of the catch line the player is.
func (p Pursuer) Gap(playerZ float32) float32 {
	return (p.Z - p.cfg.CatchMargin) - playerZ
}

// Bob is the wave's cosmetic motion for the current phase.
type Bob struct {
	OffsetY float32 // Vertical bob
	ScaleY  float32 // Vertical stretch
	Scroll  float32 // Texture scroll
}

// Bob derives the cosmetic motion from Phase alone.
func (p Pursuer) Bob() Bob {
	return Bob{
		OffsetY: math32.Sin(p.Phase*5) * p.cfg.BobAmplitude,
		ScaleY:  1 + math32.Sin(p.Phase*10)*0.1,
		Scroll:  math32.Mod(p.Phase*0.5, 1),
	}
}
