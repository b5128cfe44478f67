package runner

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tsunami-run/internal/core"
)

// Kind tags what a platform object is. Gameplay switches on it; there are no
// per-object flags.
type Kind uint8

const (
	KindSolid       Kind = iota // Plain platform
	KindCollectible             // Focus shard, restores attention
	KindPowerUp                 // Focus burst ring, slows the wave
	KindBarrier                 // Solid wall across the track
	KindTrap                    // Platform flagged as an engagement trap (cosmetic)
)

// String returns the kind name used in logs and digests.
func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindCollectible:
		return "collectible"
	case KindPowerUp:
		return "powerup"
	case KindBarrier:
		return "barrier"
	case KindTrap:
		return "trap"
	default:
		return "unknown"
	}
}

// Collidable reports whether the player collides with objects of this kind.
func (k Kind) Collidable() bool {
	switch k {
	case KindSolid, KindBarrier, KindTrap:
		return true
	default:
		return false
	}
}

// Pickup reports whether objects of this kind are consumed on contact.
func (k Kind) Pickup() bool {
	return k == KindCollectible || k == KindPowerUp
}

// Object is a single piece of generated world content. Positions are world
// coordinates of the object's centre.
type Object struct {
	ID    uint64
	Kind  Kind
	Pos   mgl32.Vec3
	Half  mgl32.Vec3 // Half extents
	Chunk int        // Owning chunk index
}

// Bounds returns the object's axis-aligned bounding box.
func (o Object) Bounds() cube.BBox {
	return core.BoxAround(o.Pos, o.Half)
}

// Top returns the y of the object's upper face.
func (o Object) Top() float32 {
	return o.Pos.Y() + o.Half.Y()
}

// Label is a floating word drifting above a platform. Purely cosmetic.
type Label struct {
	Text string
	Pos  mgl32.Vec3
}
