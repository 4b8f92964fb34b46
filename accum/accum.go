// Package accum implements the flow-accumulation propagator shared by
// both direction-solver front-ends: given a finalized dir layer and a
// traversal order in which every cell's downstream receiver appears
// before the cell itself, it walks that order in reverse and adds
// (acc[cell]+1) to the receiver in a single linear pass, upstream-first.
package accum

import (
	"github.com/maseology/flowdir/raster"
	"github.com/maseology/mmaths/topology"
)

// Propagate walks order in reverse and, for every cell whose direction
// is not a sink, adds acc[cell]+1 to the downstream neighbor it points
// at. order must place every cell's downstream receiver earlier in the
// slice than the cell itself — the priority-flood solver's own
// processing sequence (r.Seq()) satisfies this by construction; for
// fronts that don't produce such a sequence naturally, build one with
// OrderFromDir first.
func Propagate(r *raster.Raster, order []raster.Cell) {
	for i := len(order) - 1; i >= 0; i-- {
		c := order[i]
		d := r.Dir(c.X, c.Y)
		if d == raster.DirNone {
			continue
		}
		dx, dy := d.Offset()
		dxc, dyc := c.X+dx, c.Y+dy
		if !r.InBounds(dxc, dyc) {
			panic("accum: direction code points out of bounds")
		}
		r.AddAcc(dxc, dyc, r.Acc(c.X, c.Y)+1)
	}
}

// OrderFromDir builds a traversal order for a dir layer that was not
// produced by the priority-flood solver's own extraction sequence (the
// local-slope front-end has no such sequence). It expresses the dir
// layer as a downstream-pointer tree — cid to its single downstream cid,
// sink cells pointing at -1 — and topologically sorts it with
// topology.OrderFromToTree (package mmaths/topology), the same routing-order primitive RTR.subset
// uses to order subwatersheds from the downslope-watershed map (see
// model/router.go, basin/router.go). OrderFromToTree returns each node
// before its downstream receiver (children before parents, the order
// its own callers need to accumulate level counts upward); Propagate
// needs the opposite, a receiver placed earlier than what drains into
// it, so the result is reversed before it is handed back.
func OrderFromDir(r *raster.Raster) []raster.Cell {
	w, h := r.Dims()
	n := w * h

	toCid := func(x, y int) int { return y*w + x }
	toCell := func(cid int) raster.Cell { return raster.Cell{X: cid % w, Y: cid / w} }

	dsws := make(map[int]int, n)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cid := toCid(x, y)
			d := r.Dir(x, y)
			if d == raster.DirNone {
				dsws[cid] = -1
				continue
			}
			dx, dy := d.Offset()
			dsws[cid] = toCid(x+dx, y+dy)
		}
	}

	fromSource := topology.OrderFromToTree(dsws, -1)
	order := make([]raster.Cell, len(fromSource))
	for i, cid := range fromSource {
		order[len(fromSource)-1-i] = toCell(cid)
	}
	return order
}
