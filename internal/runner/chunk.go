package runner

// Chunk is a fixed-length slice of track anchored at Offset on the z axis.
// Index 0 sits at z=0 and indices grow in the direction of travel (-z).
type Chunk struct {
	Index   int
	Offset  float32
	Objects []Object
	Labels  []Label
}

// remove deletes the object with the given id, preserving order.
func (c *Chunk) remove(id uint64) bool {
	for i := range c.Objects {
		if c.Objects[i].ID == id {
			c.Objects = append(c.Objects[:i], c.Objects[i+1:]...)
			return true
		}
	}
	return false
}

// ChunkInfo is a read-only description of a live chunk.
type ChunkInfo struct {
	Index   int
	Offset  float32
	Objects int
}
