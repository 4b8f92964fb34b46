// Package raster holds the grid data model shared by the flow-direction
// solvers and the accumulation propagator: a fixed-size rectangular raster
// of elevations, direction codes and accumulation counts, plus the two
// transient per-cell flags the priority-flood solver needs while it runs.
package raster

import "fmt"

// Dir is a flow-direction code. The zero value marks a sink/outlet.
// Values are the eight powers of two enumerated clockwise from east,
// the canonical encoding fixed by the spec (ArcGIS convention).
type Dir uint8

const (
	DirNone Dir = 0
	DirE    Dir = 1
	DirSE   Dir = 2
	DirS    Dir = 4
	DirSW   Dir = 8
	DirW    Dir = 16
	DirNW   Dir = 32
	DirN    Dir = 64
	DirNE   Dir = 128
)

// Neighbors lists the eight directions in the fixed iteration order the
// spec requires: E, SE, S, SW, W, NW, N, NE (clockwise from east). The
// priority-flood solver walks this slice in order, since the order feeds
// the priority queue's insertion counter; the local-slope solver uses its
// own tie-break order instead.
var Neighbors = [8]Dir{DirE, DirSE, DirS, DirSW, DirW, DirNW, DirN, DirNE}

// Offset returns the (dx, dy) step a direction code represents.
func (d Dir) Offset() (dx, dy int) {
	switch d {
	case DirE:
		return 1, 0
	case DirSE:
		return 1, 1
	case DirS:
		return 0, 1
	case DirSW:
		return -1, 1
	case DirW:
		return -1, 0
	case DirNW:
		return -1, -1
	case DirN:
		return 0, -1
	case DirNE:
		return 1, -1
	case DirNone:
		return 0, 0
	default:
		panic(fmt.Sprintf("raster: invalid direction code %d", uint8(d)))
	}
}

// DirTo returns the code that, applied to a cell at (fromX, fromY), points
// at the cell (toX, toY). The two cells must be 8-neighbors.
func DirTo(fromX, fromY, toX, toY int) Dir {
	dx, dy := toX-fromX, toY-fromY
	for _, d := range Neighbors {
		ox, oy := d.Offset()
		if ox == dx && oy == dy {
			return d
		}
	}
	panic(fmt.Sprintf("raster: (%d,%d) is not a neighbor of (%d,%d)", toX, toY, fromX, fromY))
}

// Cell is a grid coordinate, used for the processing-order sequence.
type Cell struct {
	X, Y int
}

// Raster is a W x H grid carrying the elevation, direction and
// accumulation layers plus the two flags used while solving for flow
// direction. Layers are stored as flat row-major slices, not because the
// spec requires it but because it gives O(1) random access with a single
// allocation per layer.
type Raster struct {
	w, h int

	elev []int
	dir  []Dir
	acc  []uint32

	queued  []bool
	visited []bool

	seq []Cell
}

// New allocates a raster of the given dimensions. Both dimensions must be
// at least 2; a smaller raster has no interior and is rejected outright.
func New(w, h int) *Raster {
	if w < 2 || h < 2 {
		panic(fmt.Sprintf("raster: dimensions must be at least 2x2, got %dx%d", w, h))
	}
	n := w * h
	return &Raster{
		w:       w,
		h:       h,
		elev:    make([]int, n),
		dir:     make([]Dir, n),
		acc:     make([]uint32, n),
		queued:  make([]bool, n),
		visited: make([]bool, n),
		seq:     make([]Cell, 0, n),
	}
}

// Dims returns the raster's width and height.
func (r *Raster) Dims() (w, h int) { return r.w, r.h }

// Width returns the number of columns.
func (r *Raster) Width() int { return r.w }

// Height returns the number of rows.
func (r *Raster) Height() int { return r.h }

func (r *Raster) inBounds(x, y int) bool {
	return x >= 0 && x < r.w && y >= 0 && y < r.h
}

func (r *Raster) idx(x, y int) int {
	if !r.inBounds(x, y) {
		panic(fmt.Sprintf("raster: index (%d,%d) out of bounds for %dx%d grid", x, y, r.w, r.h))
	}
	return y*r.w + x
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (r *Raster) InBounds(x, y int) bool { return r.inBounds(x, y) }

// Elev returns the elevation at (x, y).
func (r *Raster) Elev(x, y int) int { return r.elev[r.idx(x, y)] }

// SetElev sets the elevation at (x, y). Only the external loader should
// call this; the solver passes treat elev as read-only.
func (r *Raster) SetElev(x, y, v int) { r.elev[r.idx(x, y)] = v }

// Dir returns the direction code at (x, y).
func (r *Raster) Dir(x, y int) Dir { return r.dir[r.idx(x, y)] }

// SetDir assigns the direction code at (x, y).
func (r *Raster) SetDir(x, y int, d Dir) { r.dir[r.idx(x, y)] = d }

// Acc returns the accumulation count at (x, y).
func (r *Raster) Acc(x, y int) uint32 { return r.acc[r.idx(x, y)] }

// SetAcc overwrites the accumulation count at (x, y).
func (r *Raster) SetAcc(x, y int, v uint32) { r.acc[r.idx(x, y)] = v }

// AddAcc adds delta to the accumulation count at (x, y).
func (r *Raster) AddAcc(x, y int, delta uint32) { r.acc[r.idx(x, y)] += delta }

// IsQueued reports whether (x, y) has already been pushed to the
// priority queue.
func (r *Raster) IsQueued(x, y int) bool { return r.queued[r.idx(x, y)] }

// MarkQueued flags (x, y) as pushed, preventing re-insertion.
func (r *Raster) MarkQueued(x, y int) { r.queued[r.idx(x, y)] = true }

// IsVisited reports whether (x, y) has been extracted and finalized.
func (r *Raster) IsVisited(x, y int) bool { return r.visited[r.idx(x, y)] }

// MarkVisited flags (x, y) as extracted. Diagnostic only; not required
// for algorithmic correctness.
func (r *Raster) MarkVisited(x, y int) { r.visited[r.idx(x, y)] = true }

// AppendSeq records a cell as the next entry of the processing-order
// sequence P.
func (r *Raster) AppendSeq(x, y int) { r.seq = append(r.seq, Cell{X: x, Y: y}) }

// Seq returns the processing-order sequence produced by a direction
// solver. The returned slice aliases internal storage and must not be
// mutated by the caller.
func (r *Raster) Seq() []Cell { return r.seq }

// Reset clears dir, acc, the queued/visited flags and the processing
// sequence, leaving elev untouched. Used to re-run a solver pass or to
// verify accumulation idempotence (§8 property 6).
func (r *Raster) Reset() {
	for i := range r.dir {
		r.dir[i] = DirNone
		r.acc[i] = 0
		r.queued[i] = false
		r.visited[i] = false
	}
	r.seq = r.seq[:0]
}

// ResetAcc zeroes only the accumulation layer, leaving dir, the flags and
// the processing sequence intact. Used by the idempotence check (§8
// property 6): re-running the propagator over the existing sequence must
// reproduce the same acc grid.
func (r *Raster) ResetAcc() {
	for i := range r.acc {
		r.acc[i] = 0
	}
}

// IsBoundary reports whether (x, y) lies on the outer edge of the raster.
func (r *Raster) IsBoundary(x, y int) bool {
	return x == 0 || y == 0 || x == r.w-1 || y == r.h-1
}

// Snapshot is the gob-encodable subset of a Raster's state: the
// elevation, direction and accumulation layers. The transient queued and
// visited flags, and the processing sequence, carry no meaning once a
// solver pass has finished, so they are deliberately excluded.
type Snapshot struct {
	W, H int
	Elev []int
	Dir  []Dir
	Acc  []uint32
}

// Snapshot captures the raster's persistent layers for serialization.
func (r *Raster) Snapshot() Snapshot {
	return Snapshot{
		W:    r.w,
		H:    r.h,
		Elev: append([]int(nil), r.elev...),
		Dir:  append([]Dir(nil), r.dir...),
		Acc:  append([]uint32(nil), r.acc...),
	}
}

// FromSnapshot rebuilds a Raster from a previously captured Snapshot.
// queued, visited and the processing sequence start empty; a restored
// raster is fit to read dir/acc from, not to re-run a solver pass over.
func FromSnapshot(s Snapshot) *Raster {
	r := New(s.W, s.H)
	copy(r.elev, s.Elev)
	copy(r.dir, s.Dir)
	copy(r.acc, s.Acc)
	return r
}

// UnitContributingArea returns (acc[x,y]+1) * cellArea, the area draining
// through the cell in the caller's elevation-grid units, mirroring the
// reference model's UnitContributingArea notion of area-through-a-cell.
func (r *Raster) UnitContributingArea(x, y int, cellArea float64) float64 {
	return float64(r.Acc(x, y)+1) * cellArea
}
