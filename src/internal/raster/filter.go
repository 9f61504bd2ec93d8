// FILE: alin/src/internal/raster/filter.go
package raster

import (
	"fmt"
	"sort"
)

// PixelFunc rewrites one RGB triplet.
type PixelFunc func(r, g, b byte) (byte, byte, byte)

// Apply runs fn over every complete triplet of plane in place and returns
// the number of pixels processed. A trailing partial triplet is left alone.
func Apply(plane []byte, fn PixelFunc) int {
	n := len(plane) / 3
	for i := 0; i < n*3; i += 3 {
		plane[i], plane[i+1], plane[i+2] = fn(plane[i], plane[i+1], plane[i+2])
	}
	return n
}

// Grayscale replaces each pixel with its BT.601 luma on all three channels.
func Grayscale(r, g, b byte) (byte, byte, byte) {
	// Integer weights truncate exactly as 0.299R + 0.587G + 0.114B would
	y := byte((299*int(r) + 587*int(g) + 114*int(b)) / 1000)
	return y, y, y
}

// Sepia applies the classic sepia tone matrix, saturating at 255.
func Sepia(r, g, b byte) (byte, byte, byte) {
	ri, gi, bi := int(r), int(g), int(b)
	return clamp((393*ri + 769*gi + 189*bi) / 1000),
		clamp((349*ri + 686*gi + 168*bi) / 1000),
		clamp((272*ri + 534*gi + 131*bi) / 1000)
}

func clamp(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

var filters = map[string]PixelFunc{
	"grayscale": Grayscale,
	"sepia":     Sepia,
}

// Lookup returns the named filter.
func Lookup(name string) (PixelFunc, error) {
	fn, ok := filters[name]
	if !ok {
		return nil, fmt.Errorf("unknown filter: %s", name)
	}
	return fn, nil
}

// Names lists the registered filters.
func Names() []string {
	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyFilter runs the named filter over the image plane.
func (img *Image) ApplyFilter(name string) (int, error) {
	fn, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	return Apply(img.Plane(), fn), nil
}
