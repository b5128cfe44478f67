package runner

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// Digest hashes the gameplay-relevant part of the session. Two sessions fed
// the same seed, deltas and controls produce the same digest.
func (s *Session) Digest() uint64 {
	return s.Snapshot().Digest()
}

// Digest hashes the snapshot with xxh3. Labels are cosmetic and left out.
func (snap Snapshot) Digest() uint64 {
	b := make([]byte, 0, 128+len(snap.Objects)*32)
	le := binary.LittleEndian

	b = le.AppendUint64(b, snap.Tick)
	b = le.AppendUint64(b, uint64(snap.Seed))
	b = appendVec(b, snap.Player.Pos)
	b = appendVec(b, snap.PlayerVel)
	b = appendF32(b, snap.Player.Yaw)
	b = appendF32(b, snap.Player.Pitch)
	b = appendBool(b, snap.Grounded)
	b = le.AppendUint32(b, uint32(snap.Jumps))
	b = appendF32(b, snap.Pursuer.Pos.Z())
	b = appendF32(b, snap.PursuerSpeed)
	b = appendF32(b, snap.Frontier)

	st := snap.State
	b = le.AppendUint32(b, uint32(st.Phase))
	b = le.AppendUint64(b, math.Float64bits(st.Score))
	b = appendF32(b, st.Attention)
	b = appendF32(b, st.Distance)
	b = le.AppendUint32(b, uint32(st.Reason))

	for _, o := range snap.Objects {
		b = le.AppendUint64(b, o.ID)
		b = append(b, byte(o.Kind))
		b = appendVec(b, o.Pos)
		b = appendVec(b, o.Half)
	}
	for _, c := range snap.Chunks {
		b = le.AppendUint64(b, uint64(c.Index))
	}

	return xxh3.Hash(b)
}

func appendF32(b []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
}

func appendVec(b []byte, v mgl32.Vec3) []byte {
	for _, c := range v {
		b = appendF32(b, c)
	}
	return b
}

func appendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}
