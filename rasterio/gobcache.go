package rasterio

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/maseology/flowdir/raster"
)

// GobCache round-trips a raster's persistent layers through
// encoding/gob, mirroring the reference model's own build-cache
// convention (Structure.saveGob, Mapper.saveGob, ...) of skipping
// expensive rebuilds by checking for a cached file first.
type GobCache struct {
	Path string
}

// Save encodes r's snapshot to the cache file, overwriting it if present.
func (c GobCache) Save(r *raster.Raster) error {
	f, err := os.Create(c.Path)
	if err != nil {
		return fmt.Errorf("rasterio: creating gob cache %s: %w", c.Path, err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(r.Snapshot()); err != nil {
		return fmt.Errorf("rasterio: encoding gob cache %s: %w", c.Path, err)
	}
	return nil
}

// Load decodes a raster snapshot from the cache file.
func (c GobCache) Load() (*raster.Raster, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("rasterio: opening gob cache %s: %w", c.Path, err)
	}
	defer f.Close()
	var s raster.Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("rasterio: decoding gob cache %s: %w", c.Path, err)
	}
	return raster.FromSnapshot(s), nil
}

// Exists reports whether the cache file is present, mirroring the
// reference model's mmio.FileExists pre-check before an expensive build.
func (c GobCache) Exists() bool {
	_, err := os.Stat(c.Path)
	return err == nil
}
