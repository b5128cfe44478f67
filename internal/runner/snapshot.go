package runner

import "github.com/go-gl/mathgl/mgl32"

// Transform places a renderable entity.
type Transform struct {
	Pos    mgl32.Vec3
	Yaw    float32
	Pitch  float32
	ScaleY float32
}

// ObjectView is a world object as seen by a renderer.
type ObjectView struct {
	ID   uint64
	Kind Kind
	Pos  mgl32.Vec3
	Half mgl32.Vec3
}

// Snapshot is a deep copy of everything a renderer needs. It never aliases
// session state.
type Snapshot struct {
	Tick         uint64
	Seed         int64
	Player       Transform
	PlayerVel    mgl32.Vec3
	Grounded     bool
	Jumps        int
	Pursuer      Transform
	PursuerSpeed float32
	Scroll       float32
	Frontier     float32
	Objects      []ObjectView
	Labels       []Label
	Chunks       []ChunkInfo
	State        State
}

// Snapshot captures the session between steps.
func (s *Session) Snapshot() Snapshot {
	objs := s.world.Objects()
	views := make([]ObjectView, len(objs))
	for i, o := range objs {
		views[i] = ObjectView{ID: o.ID, Kind: o.Kind, Pos: o.Pos, Half: o.Half}
	}

	bob := s.pursuer.Bob()
	return Snapshot{
		Tick:      s.tick,
		Seed:      s.seed,
		Player:    Transform{Pos: s.player.Pos, Yaw: s.player.Yaw, Pitch: s.player.Pitch, ScaleY: 1},
		PlayerVel: s.player.Vel,
		Grounded:  s.player.Grounded,
		Jumps:     s.player.Jumps,
		Pursuer: Transform{
			Pos:    mgl32.Vec3{0, bob.OffsetY, s.pursuer.Z},
			ScaleY: bob.ScaleY,
		},
		PursuerSpeed: s.pursuer.Speed,
		Scroll:       bob.Scroll,
		Frontier:     s.world.Frontier(),
		Objects:      views,
		Labels:       s.world.Labels(),
		Chunks:       s.world.Chunks(),
		State:        s.state,
	}
}
