package flood

import "github.com/maseology/flowdir/raster"

// decimalToCanonical pairs the original D8 prototype's decimal direction
// encoding with the canonical powers-of-two code it stands for.
var decimalToCanonical = map[int]raster.Dir{
	40: raster.DirE,
	10: raster.DirSE,
	20: raster.DirS,
	30: raster.DirSW,
	50: raster.DirW,
	80: raster.DirNW,
	70: raster.DirN,
	60: raster.DirNE,
}

var canonicalToDecimal = func() map[raster.Dir]int {
	m := make(map[raster.Dir]int, len(decimalToCanonical))
	for dec, can := range decimalToCanonical {
		m[can] = dec
	}
	return m
}()

// DecimalToCanonical translates the legacy {10,20,...,80} direction code
// into the canonical powers-of-two encoding. It panics on an unknown
// code, matching the core's treatment of invariant violations.
func DecimalToCanonical(dec int) raster.Dir {
	if dec == 0 {
		return raster.DirNone
	}
	d, ok := decimalToCanonical[dec]
	if !ok {
		panic("flood: unknown decimal direction code")
	}
	return d
}

// CanonicalToDecimal translates a canonical direction code into the
// legacy decimal encoding, for interop with tooling that still expects
// the original convention.
func CanonicalToDecimal(d raster.Dir) int {
	if d == raster.DirNone {
		return 0
	}
	dec, ok := canonicalToDecimal[d]
	if !ok {
		panic("flood: unknown canonical direction code")
	}
	return dec
}
