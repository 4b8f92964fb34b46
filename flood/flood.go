// Package flood implements the priority-flood flow-direction solver: a
// best-first traversal from the raster boundary inward, ordered by
// elevation with a stable insertion-order tie-break, assigning each
// newly discovered cell a direction pointing at whichever cell found it.
package flood

import "github.com/maseology/flowdir/raster"

// ProgressFunc is called after each cell is extracted from the priority
// queue, with the number of cells processed so far and the total cell
// count. A nil ProgressFunc disables progress reporting.
type ProgressFunc func(done, total int)

// Solve runs the boundary seeder followed by the priority-flood main
// loop over r, leaving dir, queued, visited and the processing sequence
// fully populated. r must be freshly constructed or Reset.
func Solve(r *raster.Raster, progress ProgressFunc) {
	w, h := r.Dims()
	total := w * h

	pq, order := seedBoundary(r)

	for len(pq) > 0 {
		c := pq.pop()
		r.AppendSeq(c.x, c.y)
		r.MarkVisited(c.x, c.y)
		if progress != nil {
			progress(len(r.Seq()), total)
		}

		for _, d := range raster.Neighbors {
			dx, dy := d.Offset()
			nx, ny := c.x+dx, c.y+dy
			if !r.InBounds(nx, ny) || r.IsQueued(nx, ny) {
				continue
			}
			r.SetDir(nx, ny, raster.DirTo(nx, ny, c.x, c.y))
			r.MarkQueued(nx, ny)
			pq.push(entry{elev: r.Elev(nx, ny), order: order, x: nx, y: ny})
			order++
		}
	}
}
