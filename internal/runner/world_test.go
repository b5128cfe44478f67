package runner

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tsunami-run/internal/config"
)

func newTestWorld(cfg config.WorldConfig, seed int64) *World {
	return NewWorld(cfg, rand.New(rand.NewSource(seed)))
}

func TestNewWorldInitialChunks(t *testing.T) {
	w := newTestWorld(config.DefaultRunnerConfig().World, 1)

	chunks := w.Chunks()
	if len(chunks) != 2 {
		t.Fatalf("expected 2 initial chunks, got %d", len(chunks))
	}
	if chunks[0].Index != -1 || chunks[0].Offset != 50 {
		t.Errorf("first chunk = %+v, expected index -1 at offset 50", chunks[0])
	}
	if chunks[1].Index != 0 || chunks[1].Offset != 0 {
		t.Errorf("second chunk = %+v, expected index 0 at offset 0", chunks[1])
	}
	if w.Frontier() != 0 {
		t.Errorf("frontier = %v, expected 0", w.Frontier())
	}
}

func TestGenerateChunkDeterministic(t *testing.T) {
	cfg := config.DefaultRunnerConfig().World

	a := newTestWorld(cfg, 99)
	b := newTestWorld(cfg, 99)
	a.Update(-400)
	b.Update(-400)

	if !reflect.DeepEqual(a.Objects(), b.Objects()) {
		t.Error("same seed produced different objects")
	}
	if !reflect.DeepEqual(a.Labels(), b.Labels()) {
		t.Error("same seed produced different labels")
	}

	c := newTestWorld(cfg, 100)
	c.Update(-400)
	if reflect.DeepEqual(a.Objects(), c.Objects()) {
		t.Error("different seeds produced identical worlds")
	}
}

func TestGenerateChunkContents(t *testing.T) {
	cfg := config.DefaultRunnerConfig().World
	w := newTestWorld(cfg, 7)
	w.Update(-1000)

	gen := cfg.Platform
	platforms := make(map[int]int)
	var last Object
	for _, o := range w.Objects() {
		switch o.Kind {
		case KindSolid, KindTrap:
			platforms[o.Chunk]++
			last = o
			width, depth := o.Half.X()*2, o.Half.Z()*2
			if width < gen.MinWidth || width > gen.MaxWidth {
				t.Errorf("platform %d width %v out of range", o.ID, width)
			}
			if depth < gen.MinDepth || depth > gen.MaxDepth {
				t.Errorf("platform %d depth %v out of range", o.ID, depth)
			}
			if o.Pos.X() < -gen.SpreadX/2 || o.Pos.X() > gen.SpreadX/2 {
				t.Errorf("platform %d x %v out of range", o.ID, o.Pos.X())
			}
			offset := w.OffsetOf(o.Chunk)
			if o.Pos.Z() < offset-cfg.ChunkSize/2 || o.Pos.Z() > offset+cfg.ChunkSize/2 {
				t.Errorf("platform %d z %v outside chunk at %v", o.ID, o.Pos.Z(), offset)
			}
		case KindCollectible:
			if o.Pos.X() != last.Pos.X() || !near(o.Pos.Y(), last.Pos.Y()+1.5) || o.Pos.Z() != last.Pos.Z() {
				t.Errorf("shard %d at %v not above platform %v", o.ID, o.Pos, last.Pos)
			}
		case KindPowerUp:
			if !near(o.Pos.Y(), last.Pos.Y()+2) {
				t.Errorf("ring %d at %v not above platform %v", o.ID, o.Pos, last.Pos)
			}
		case KindBarrier:
			if o.Pos.X() != 0 || o.Pos.Y() != gen.BarrierY || !near(o.Pos.Z(), last.Pos.Z()+gen.BarrierDz) {
				t.Errorf("barrier %d misplaced at %v", o.ID, o.Pos)
			}
		}
	}

	for _, c := range w.Chunks() {
		if platforms[c.Index] != cfg.PlatformsPerChunk {
			t.Errorf("chunk %d has %d platforms, expected %d", c.Index, platforms[c.Index], cfg.PlatformsPerChunk)
		}
	}
}

func TestGenerateChunkRefusesLiveAndEvicted(t *testing.T) {
	w := newTestWorld(config.DefaultRunnerConfig().World, 3)

	if _, ok := w.GenerateChunk(0); ok {
		t.Error("regenerated a live chunk")
	}

	res := w.Update(-300)
	if len(res.Evicted) == 0 {
		t.Fatal("expected evictions when the player is at -300")
	}
	for _, index := range res.Evicted {
		if _, ok := w.GenerateChunk(index); ok {
			t.Errorf("regenerated evicted chunk %d", index)
		}
	}
}

func TestUpdateStreamsAheadOfPlayer(t *testing.T) {
	cfg := config.DefaultRunnerConfig().World
	w := newTestWorld(cfg, 11)

	generated := make(map[int]bool)
	evicted := make(map[int]bool)
	offsets := make(map[float32]bool)
	for _, c := range w.Chunks() {
		generated[c.Index] = true
		offsets[c.Offset] = true
	}

	// 15 u/s at 60 Hz
	for z, first := float32(0), true; z >= -300; z -= 0.25 {
		res := w.Update(z)
		if !first && len(res.Generated) > 1 {
			t.Fatalf("z=%v generated %d chunks in one update", z, len(res.Generated))
		}
		first = false

		for _, index := range res.Generated {
			if generated[index] {
				t.Fatalf("chunk %d generated twice", index)
			}
			generated[index] = true
			off := w.OffsetOf(index)
			if offsets[off] {
				t.Fatalf("two chunks at offset %v", off)
			}
			offsets[off] = true
		}
		for _, index := range res.Evicted {
			if evicted[index] {
				t.Fatalf("chunk %d evicted twice", index)
			}
			evicted[index] = true
		}

		if w.Frontier() > z-cfg.RenderDistance {
			t.Fatalf("frontier %v not ahead of player at %v", w.Frontier(), z)
		}
	}

	if w.Frontier() > -600 {
		t.Errorf("frontier = %v, expected <= -600", w.Frontier())
	}
	for _, c := range w.Chunks() {
		if c.Offset > -300+cfg.EvictionMargin {
			t.Errorf("chunk %d at %v should have been evicted", c.Index, c.Offset)
		}
	}
	for index := range evicted {
		if _, ok := w.GenerateChunk(index); ok {
			t.Errorf("evicted chunk %d came back", index)
		}
	}
}

func TestConsumeIsIdempotent(t *testing.T) {
	cfg := config.DefaultRunnerConfig().World
	cfg.Chances.Shard = 1
	w := newTestWorld(cfg, 5)

	pickups := w.Pickups()
	if len(pickups) == 0 {
		t.Fatal("expected pickups with shard chance 1")
	}
	id := pickups[0].ID
	before := len(w.Objects())

	if !w.Consume(id) {
		t.Fatal("first Consume() returned false")
	}
	if w.Consume(id) {
		t.Error("second Consume() returned true")
	}
	if _, ok := w.Object(id); ok {
		t.Error("consumed object still present")
	}
	if len(w.Objects()) != before-1 {
		t.Errorf("objects = %d, expected %d", len(w.Objects()), before-1)
	}

	if w.Consume(1 << 40) {
		t.Error("Consume() of unknown id returned true")
	}
}

func TestConsumeIgnoresSolids(t *testing.T) {
	w := newTestWorld(config.DefaultRunnerConfig().World, 5)

	for _, o := range w.Objects() {
		if o.Kind.Collidable() {
			if w.Consume(o.ID) {
				t.Errorf("consumed %s object %d", o.Kind, o.ID)
			}
			break
		}
	}
}

func TestCollidablesExcludePickups(t *testing.T) {
	cfg := config.DefaultRunnerConfig().World
	cfg.Chances = config.Chances{Shard: 1, Ring: 1}
	w := newTestWorld(cfg, 8)

	want := w.Len() * cfg.PlatformsPerChunk
	if got := len(w.Collidables()); got != want {
		t.Errorf("collidables = %d, expected %d platforms", got, want)
	}
	if got := len(w.Pickups()); got != want*2 {
		t.Errorf("pickups = %d, expected %d", got, want*2)
	}
}

func TestObjectsReturnsCopies(t *testing.T) {
	w := newTestWorld(config.DefaultRunnerConfig().World, 2)

	objs := w.Objects()
	objs[0].Pos[1] = 1000

	if w.Objects()[0].Pos.Y() == 1000 {
		t.Error("Objects() aliases world state")
	}
}

func TestNewRandomWorld(t *testing.T) {
	w := NewRandomWorld(config.DefaultRunnerConfig().World)
	if w.Len() != 2 || w.Frontier() != 0 {
		t.Errorf("random world starts with %d chunks, frontier %v", w.Len(), w.Frontier())
	}
}
