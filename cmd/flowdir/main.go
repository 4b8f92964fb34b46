// Command flowdir computes a flow-direction and flow-accumulation grid
// from a plain-text elevation raster. See flowdir(1) usage below, or run
// with no arguments.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/flowdir"
	"github.com/maseology/flowdir/rasterio"
	"github.com/maseology/mmio"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: flowdir <input-raster> <dir-output> <acc-output> [flags]")
	flag.PrintDefaults()
}

func main() {
	algoFlag := flag.String("algorithm", "priority-flood", "direction solver: priority-flood or local-slope")
	cellsize := flag.Float64("cellsize", 0, "cell size (area units) for the reported unit contributing area; 0 disables the report")
	progress := flag.Bool("progress", false, "show a terminal progress bar over the priority-flood solver")
	flag.Usage = usage
	flag.Parse()

	// flags may also follow the three positional arguments, as usage shows
	args := flag.Args()
	if len(args) > 3 {
		_ = flag.CommandLine.Parse(args[3:])
		args = append(args[:3:3], flag.Args()...)
	}
	if len(args) != 3 {
		usage()
		os.Exit(2)
	}
	inFP, dirFP, accFP := args[0], args[1], args[2]

	algo, err := flowdir.ParseAlgorithm(*algoFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}

	tt := mmio.NewTimer()
	defer tt.Print("flowdir complete")

	opt := flowdir.Options{Algorithm: algo}
	var bar *uiprogress.Bar
	if *progress {
		uiprogress.Start()
		defer uiprogress.Stop()
		opt.Progress = func(done, total int) {
			if bar == nil {
				bar = uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
			}
			bar.Set(done)
		}
	}

	loader := rasterio.TextLoader{Path: inFP}
	writer := rasterio.TextWriter{DirPath: dirFP, AccPath: accFP}

	res, err := flowdir.Run(loader, writer, opt)
	if err != nil {
		log.Fatalf("%v", err)
	}

	w, h := res.Raster.Dims()
	fmt.Printf("%s: %dx%d cells, algorithm=%s\n", inFP, w, h, res.Algorithm)

	if *cellsize > 0 {
		var maxArea float64
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if a := res.Raster.UnitContributingArea(x, y, *cellsize); a > maxArea {
					maxArea = a
				}
			}
		}
		fmt.Printf("max unit contributing area: %.3f\n", maxArea)
	}
}
