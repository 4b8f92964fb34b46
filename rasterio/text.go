package rasterio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/flowdir/raster"
	"github.com/maseology/mmio"
)

// TextLoader reads the §6 plain-text elevation format: one row of
// integers per line, space- or comma-separated, trailing and empty
// lines ignored.
type TextLoader struct {
	Path string
}

// Load implements Loader. It returns a dimension error (not a panic) on
// ragged rows or an empty file, per §7 — the only validation the core
// asks an adapter to perform before handing a raster to the solvers.
func (l TextLoader) Load() (*raster.Raster, *GeoRef, error) {
	lines, err := mmio.ReadTextLines(l.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("rasterio: %s: %w", l.Path, err)
	}
	rows := make([][]int, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		fields := strings.FieldsFunc(ln, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, nil, fmt.Errorf("rasterio: %s: invalid elevation value %q: %w", l.Path, f, err)
			}
			row = append(row, v)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("rasterio: %s: raster must have at least 2 rows, got %d", l.Path, len(rows))
	}
	w := len(rows[0])
	if w < 2 {
		return nil, nil, fmt.Errorf("rasterio: %s: raster must have at least 2 columns, got %d", l.Path, w)
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, nil, fmt.Errorf("rasterio: %s: row %d has %d columns, want %d", l.Path, y, len(row), w)
		}
	}

	r := raster.New(w, len(rows))
	for y, row := range rows {
		for x, v := range row {
			r.SetElev(x, y, v)
		}
	}
	return r, nil, nil
}

// TextWriter writes the finished dir and acc layers as two
// whitespace-aligned plain-text grids.
type TextWriter struct {
	DirPath string
	AccPath string
}

// Write implements Writer. geo is ignored: the plain-text format carries
// no georeferencing metadata.
func (w TextWriter) Write(r *raster.Raster, geo *GeoRef) error {
	if err := writeGrid(w.DirPath, r, func(x, y int) int { return int(r.Dir(x, y)) }); err != nil {
		return err
	}
	return writeGrid(w.AccPath, r, func(x, y int) int { return int(r.Acc(x, y)) })
}

func writeGrid(fp string, r *raster.Raster, value func(x, y int) int) error {
	width, height := r.Dims()
	tw, err := mmio.NewTXTwriter(fp)
	if err != nil {
		return fmt.Errorf("rasterio: creating %s: %w", fp, err)
	}
	defer tw.Close()

	for y := 0; y < height; y++ {
		cells := make([]string, width)
		for x := 0; x < width; x++ {
			cells[x] = fmt.Sprintf("%6d", value(x, y))
		}
		tw.WriteLine(strings.Join(cells, " "))
	}
	return nil
}
