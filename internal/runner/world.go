package runner

import (
	"math/rand"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tsunami-run/internal/config"
)

// Decoration sizes (half extents).
var (
	shardHalf = mgl32.Vec3{0.3, 0.3, 0.3}
	ringHalf  = mgl32.Vec3{0.5, 0.5, 0.1}
)

// World streams chunks of track ahead of the player and drops them once
// they are far enough behind. It is the only writer of the object list.
type World struct {
	cfg    config.WorldConfig
	rng    *rand.Rand
	chunks *orderedmap.OrderedMap[int, *Chunk]
	owner  map[uint64]int // Object id -> chunk index

	frontier     int // Index of the furthest generated chunk
	evictedBelow int // Every index below this has been evicted for good
	nextID       uint64
}

// UpdateResult lists the chunks created and destroyed by one Update call.
type UpdateResult struct {
	Generated []int
	Evicted   []int
}

// NewWorld creates a world that draws all randomness from rng. Chunk 0 and
// the chunk behind it are generated up front so the spawn point has track.
func NewWorld(cfg config.WorldConfig, rng *rand.Rand) *World {
	w := &World{
		cfg:          cfg,
		rng:          rng,
		chunks:       orderedmap.NewOrderedMap[int, *Chunk](),
		owner:        make(map[uint64]int),
		frontier:     -1,
		evictedBelow: -1,
	}
	w.GenerateChunk(-1)
	w.GenerateChunk(0)
	return w
}

// NewRandomWorld creates a world seeded from the clock, for live play only.
func NewRandomWorld(cfg config.WorldConfig) *World {
	return NewWorld(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// OffsetOf returns the z anchor of the chunk with the given index.
func (w *World) OffsetOf(index int) float32 {
	return -float32(index) * w.cfg.ChunkSize
}

// Frontier returns the z offset of the furthest generated chunk.
func (w *World) Frontier() float32 {
	return w.OffsetOf(w.frontier)
}

// Len returns the number of live chunks.
func (w *World) Len() int {
	return w.chunks.Len()
}

// GenerateChunk creates the chunk at index. Indices that are live or were
// already evicted are refused.
func (w *World) GenerateChunk(index int) (*Chunk, bool) {
	if index < w.evictedBelow {
		return nil, false
	}
	if _, ok := w.chunks.Get(index); ok {
		return nil, false
	}

	c := &Chunk{Index: index, Offset: w.OffsetOf(index)}
	for i := 0; i < w.cfg.PlatformsPerChunk; i++ {
		w.populate(c)
	}

	w.chunks.Set(index, c)
	for _, o := range c.Objects {
		w.owner[o.ID] = index
	}
	if index > w.frontier {
		w.frontier = index
	}
	return c, true
}

// populate adds one platform and its decorations to c. The order of random
// draws is fixed so a seed fully determines a chunk.
func (w *World) populate(c *Chunk) {
	gen := w.cfg.Platform
	width := w.between(gen.MinWidth, gen.MaxWidth)
	depth := w.between(gen.MinDepth, gen.MaxDepth)
	x := w.centered(gen.SpreadX)
	y := w.centered(gen.SpreadY)
	z := c.Offset + w.centered(w.cfg.ChunkSize)

	platform := Object{
		ID:    w.id(),
		Kind:  KindSolid,
		Pos:   mgl32.Vec3{x, y, z},
		Half:  mgl32.Vec3{width / 2, gen.Height / 2, depth / 2},
		Chunk: c.Index,
	}

	var extras []Object
	if w.roll(w.cfg.Chances.Label) && len(w.cfg.Labels) > 0 {
		word := w.cfg.Labels[w.rng.Intn(len(w.cfg.Labels))]
		c.Labels = append(c.Labels, Label{
			Text: word,
			Pos:  mgl32.Vec3{x + w.centered(5), y + 3 + w.rng.Float32()*2, z},
		})
	}
	if w.roll(w.cfg.Chances.Shard) {
		extras = append(extras, w.decoration(c, KindCollectible, mgl32.Vec3{x, y + 1.5, z}, shardHalf))
	}
	if w.roll(w.cfg.Chances.Ring) {
		extras = append(extras, w.decoration(c, KindPowerUp, mgl32.Vec3{x, y + 2, z}, ringHalf))
	}
	if w.roll(w.cfg.Chances.Barrier) {
		half := mgl32.Vec3{gen.BarrierW / 2, gen.BarrierH / 2, 0.5}
		extras = append(extras, w.decoration(c, KindBarrier, mgl32.Vec3{0, gen.BarrierY, z + gen.BarrierDz}, half))
	}
	if w.roll(w.cfg.Chances.Trap) {
		platform.Kind = KindTrap
	}

	c.Objects = append(c.Objects, platform)
	c.Objects = append(c.Objects, extras...)
}

func (w *World) decoration(c *Chunk, kind Kind, pos, half mgl32.Vec3) Object {
	return Object{ID: w.id(), Kind: kind, Pos: pos, Half: half, Chunk: c.Index}
}

func (w *World) id() uint64 {
	w.nextID++
	return w.nextID
}

func (w *World) roll(chance float64) bool {
	return w.rng.Float64() < chance
}

func (w *World) between(lo, hi float32) float32 {
	return lo + w.rng.Float32()*(hi-lo)
}

// centered returns a value in [-span/2, span/2).
func (w *World) centered(span float32) float32 {
	return (w.rng.Float32() - 0.5) * span
}

// Update keeps the frontier at least RenderDistance ahead of playerZ, one
// chunk per crossing, then evicts chunks more than EvictionMargin behind.
func (w *World) Update(playerZ float32) UpdateResult {
	var res UpdateResult

	for w.Frontier() > playerZ-w.cfg.RenderDistance {
		next := w.frontier + 1
		if _, ok := w.GenerateChunk(next); !ok {
			break
		}
		res.Generated = append(res.Generated, next)
	}

	limit := playerZ + w.cfg.EvictionMargin
	var stale []int
	for el := w.chunks.Front(); el != nil; el = el.Next() {
		if el.Value.Offset > limit {
			stale = append(stale, el.Key)
		}
	}
	for _, index := range stale {
		w.evict(index)
		res.Evicted = append(res.Evicted, index)
	}

	return res
}

func (w *World) evict(index int) {
	c, ok := w.chunks.Get(index)
	if !ok {
		return
	}
	for _, o := range c.Objects {
		delete(w.owner, o.ID)
	}
	w.chunks.Delete(index)
	if index+1 > w.evictedBelow {
		w.evictedBelow = index + 1
	}
}

// Consume removes a collectible or power-up. It returns false, and does
// nothing, for unknown, already consumed or non-pickup ids.
func (w *World) Consume(id uint64) bool {
	o, ok := w.Object(id)
	if !ok || !o.Kind.Pickup() {
		return false
	}
	c, ok := w.chunks.Get(o.Chunk)
	if !ok || !c.remove(id) {
		return false
	}
	delete(w.owner, id)
	return true
}

// Object looks up a live object by id.
func (w *World) Object(id uint64) (Object, bool) {
	index, ok := w.owner[id]
	if !ok {
		return Object{}, false
	}
	c, ok := w.chunks.Get(index)
	if !ok {
		return Object{}, false
	}
	for _, o := range c.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return Object{}, false
}

// Objects returns a fresh copy of every live object, in chunk order.
func (w *World) Objects() []Object {
	var out []Object
	for el := w.chunks.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.Objects...)
	}
	return out
}

// Pickups returns a fresh copy of every live collectible and power-up.
func (w *World) Pickups() []Object {
	var out []Object
	for el := w.chunks.Front(); el != nil; el = el.Next() {
		for _, o := range el.Value.Objects {
			if o.Kind.Pickup() {
				out = append(out, o)
			}
		}
	}
	return out
}

// Collidables returns the bounding boxes of every solid object.
func (w *World) Collidables() []cube.BBox {
	var out []cube.BBox
	for el := w.chunks.Front(); el != nil; el = el.Next() {
		for _, o := range el.Value.Objects {
			if o.Kind.Collidable() {
				out = append(out, o.Bounds())
			}
		}
	}
	return out
}

// Labels returns every live cosmetic label.
func (w *World) Labels() []Label {
	var out []Label
	for el := w.chunks.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.Labels...)
	}
	return out
}

// Chunks describes the live chunks in index order.
func (w *World) Chunks() []ChunkInfo {
	out := make([]ChunkInfo, 0, w.chunks.Len())
	for el := w.chunks.Front(); el != nil; el = el.Next() {
		out = append(out, ChunkInfo{Index: el.Key, Offset: el.Value.Offset, Objects: len(el.Value.Objects)})
	}
	return out
}
