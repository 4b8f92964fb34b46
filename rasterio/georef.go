package rasterio

import "github.com/im7mortal/UTM"

// GeoRef is the opaque georeferencing descriptor threaded from a Loader
// to a Writer. The core never inspects it beyond passing it through; it
// exists so a georeferenced adapter has somewhere to carry the affine
// transform and projection string the spec calls for in §6.
type GeoRef struct {
	// Transform is the GDAL-convention affine transform: pixel (x, y)
	// maps to projected (Transform[0]+x*Transform[1]+y*Transform[2],
	// Transform[3]+x*Transform[4]+y*Transform[5]).
	Transform [6]float64
	// Projection is an opaque projection string (e.g. WKT or PROJ.4),
	// reused verbatim by writers.
	Projection string
	// Zone and Northern describe the UTM zone the projected coordinates
	// fall in, used only by Coordinate below.
	Zone     int
	Northern bool
}

// ProjectedCoordinate applies the affine transform to a pixel
// coordinate, returning the projected (easting, northing).
func (g GeoRef) ProjectedCoordinate(x, y int) (easting, northing float64) {
	fx, fy := float64(x), float64(y)
	easting = g.Transform[0] + fx*g.Transform[1] + fy*g.Transform[2]
	northing = g.Transform[3] + fx*g.Transform[4] + fy*g.Transform[5]
	return
}

// Coordinate converts the pixel at (x, y) into a (latitude, longitude)
// pair via UTM, so a caller can log a human-readable position for a
// grid corner without the core depending on a full GIS stack.
func (g GeoRef) Coordinate(x, y int) (lat, lon float64, err error) {
	easting, northing := g.ProjectedCoordinate(x, y)
	zoneLetter := "N"
	if !g.Northern {
		zoneLetter = "M" // southern-hemisphere MGRS band, see UTM.ToLatLon
	}
	return UTM.ToLatLon(easting, northing, g.Zone, zoneLetter)
}
