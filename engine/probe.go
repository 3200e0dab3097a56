package engine

// Probe is a fixed-cell, power-of-two ring buffer time-series capture
// (spec.md §4.6). It does not read the grid itself on a schedule — a
// client calls Record once per step it cares about, keeping the probe
// decoupled from Grid.Step the way an external collaborator would be.
type Probe struct {
	x, y int
	buf  []float32
	pos  int
	n    uint64 // total samples ever written
}

// NewProbe creates a probe watching cell (x, y) with a ring buffer of
// length L, which must be a power of two (spec.md §7 InvalidParameter:
// "buffer size not a power of two").
func NewProbe(x, y, length int) (*Probe, error) {
	if !isPowerOfTwo(length) {
		return nil, invalidParameter("probe length=%d, must be a power of two", length)
	}
	return &Probe{x: x, y: y, buf: make([]float32, length)}, nil
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// X and Y return the cell the probe watches.
func (p *Probe) X() int { return p.x }
func (p *Probe) Y() int { return p.y }

// Len returns the ring buffer length L.
func (p *Probe) Len() int { return len(p.buf) }

// Record writes g's current value at the probe's cell to the ring
// buffer and advances the write position (spec.md §4.6).
func (p *Probe) Record(g *Grid) {
	p.buf[p.pos] = g.FieldAt(p.x, p.y)
	p.pos = (p.pos + 1) % len(p.buf)
	p.n++
}

// Snapshot returns the buffer contents in chronological order, oldest
// first (spec.md §4.6). Before the buffer has filled once, only the
// samples actually recorded so far are returned.
func (p *Probe) Snapshot() []float32 {
	count := len(p.buf)
	if p.n < uint64(count) {
		count = int(p.n)
	}
	out := make([]float32, count)
	if count == 0 {
		return out
	}
	start := (p.pos - count + len(p.buf)) % len(p.buf)
	for i := 0; i < count; i++ {
		out[i] = p.buf[(start+i)%len(p.buf)]
	}
	return out
}

// Clear resets the probe to its just-constructed state.
func (p *Probe) Clear() {
	zeroF32(p.buf)
	p.pos = 0
	p.n = 0
}
