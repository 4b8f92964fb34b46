package flood

import "github.com/maseology/flowdir/raster"

// seedBoundary enumerates every edge cell of r and pushes it onto a fresh
// priority queue with direction code 0 (outlet), in a fixed order: the
// top row left-to-right, the bottom row left-to-right, then the left and
// right columns (excluding the two rows already covered) top-to-bottom.
// Corners are therefore pushed exactly once, as part of the top or
// bottom row. The fixed order pins the insertion-order tie-break for
// same-elevation boundary cells.
func seedBoundary(r *raster.Raster) (minHeap, int) {
	w, h := r.Dims()
	pq := make(minHeap, 0, w*h)
	order := 0

	push := func(x, y int) {
		r.SetDir(x, y, raster.DirNone)
		r.MarkQueued(x, y)
		pq.push(entry{elev: r.Elev(x, y), order: order, x: x, y: y})
		order++
	}

	for x := 0; x < w; x++ {
		push(x, 0)
	}
	if h > 1 {
		for x := 0; x < w; x++ {
			push(x, h-1)
		}
	}
	for y := 1; y < h-1; y++ {
		push(0, y)
		if w > 1 {
			push(w-1, y)
		}
	}

	return pq, order
}
