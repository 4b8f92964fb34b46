// Package rasterio defines the boundary contracts the core pipeline
// talks to — a Loader that produces a populated elevation raster plus an
// optional georeferencing descriptor, and a Writer that consumes the
// finished direction/accumulation layers — and ships concrete adapters
// for the cases this repository needs to be runnable end-to-end: plain
// text grids and a gob-encoded build cache.
package rasterio

import "github.com/maseology/flowdir/raster"

// Loader produces a raster with its elevation layer populated, plus an
// optional georeferencing descriptor to be passed through to a Writer
// untouched. Raster decoding and projection parsing are explicitly out
// of scope for the core (§1); Loader pins the contract a real decoder
// must satisfy.
type Loader interface {
	Load() (*raster.Raster, *GeoRef, error)
}

// Writer consumes a raster whose dir and acc layers have been finalized
// and persists them, reusing geo verbatim when present.
type Writer interface {
	Write(r *raster.Raster, geo *GeoRef) error
}
