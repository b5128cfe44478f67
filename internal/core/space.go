package core

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BoxAround returns the bounding box centred on c with the given half extents.
func BoxAround(c, half mgl32.Vec3) cube.BBox {
	return cube.Box(
		c.X()-half.X(), c.Y()-half.Y(), c.Z()-half.Z(),
		c.X()+half.X(), c.Y()+half.Y(), c.Z()+half.Z(),
	)
}

// ClampF32 restricts a float32 to [lo, hi]. NaN collapses to lo.
func ClampF32(v, lo, hi float32) float32 {
	if math32.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SanitizeDelta clamps a frame delta to [0, max]. A non-positive max disables
// the upper bound.
func SanitizeDelta(dt, max float32) float32 {
	if math32.IsNaN(dt) || dt < 0 {
		return 0
	}
	if max > 0 && dt > max {
		return max
	}
	return dt
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}
