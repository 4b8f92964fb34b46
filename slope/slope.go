// Package slope implements the local-slope D8 flow-direction solver: a
// single scan over every cell that picks the direction toward whichever
// neighbor has the steepest positive drop, dividing diagonal drops by
// √2 to approximate true distance. Unlike the priority-flood solver
// (package flood), this front-end does not route across pits or flats —
// a cell with no positive drop is left as a sink (dir = 0).
package slope

import (
	"math"

	"github.com/maseology/flowdir/raster"
)

// tieOrder is the cascaded-comparison order preserved from the original
// D8 prototype: S, SE, N, E, NE, NW, W, SW. It is arbitrary but must not
// change, or every tie-broken cell in the test fixtures shifts.
var tieOrder = [8]raster.Dir{
	raster.DirS, raster.DirSE, raster.DirN, raster.DirE,
	raster.DirNE, raster.DirNW, raster.DirW, raster.DirSW,
}

func isDiagonal(d raster.Dir) bool {
	switch d {
	case raster.DirSE, raster.DirSW, raster.DirNE, raster.DirNW:
		return true
	default:
		return false
	}
}

// Solve assigns dir for every cell of r by comparing its elevation
// against its eight neighbors. It does not touch queued, visited or the
// processing sequence — those belong to the priority-flood front-end
// only; the accumulation propagator for this front-end instead derives
// its own traversal order from the resulting dir layer (see package
// accum's OrderFromDir).
func Solve(r *raster.Raster) {
	w, h := r.Dims()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			solveCell(r, x, y, w, h)
		}
	}
}

func solveCell(r *raster.Raster, x, y, w, h int) {
	ez := r.Elev(x, y)
	best := raster.DirNone
	max := 0.0

	for _, d := range tieOrder {
		dx, dy := d.Offset()
		nx, ny := x+dx, y+dy

		var drop float64
		if nx < 0 || nx >= w || ny < 0 || ny >= h {
			drop = math.Inf(-1)
		} else {
			diff := float64(ez - r.Elev(nx, ny))
			if isDiagonal(d) {
				drop = diff / math.Sqrt2
			} else {
				drop = diff
			}
		}

		if drop > max {
			max = drop
			best = d
		}
	}

	if max > 0 {
		r.SetDir(x, y, best)
	} else {
		r.SetDir(x, y, raster.DirNone)
	}
}
