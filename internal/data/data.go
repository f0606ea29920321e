package data

import (
	"fmt"
	"strings"
)

// Sample is a single (x,y) observation.
type Sample struct {
	X float64
	Y float64
}

// Samples is an ordered series of observations.
type Samples []Sample

// Generate returns the fixed demonstration dataset.
// The repeated x values map to different y values on purpose,
// so that no function of x can fit the responses exactly.
func Generate() Samples {
	return Samples{
		{X: -1, Y: -1},
		{X: -1, Y: 1},
		{X: 0, Y: 1},
		{X: 0, Y: 3},
		{X: 1, Y: -1},
		{X: 1, Y: -3},
	}
}

// XY splits the samples into their x and y columns, preserving order.
func (ss Samples) XY() ([]float64, []float64) {
	xx := make([]float64, len(ss))
	yy := make([]float64, len(ss))
	for i, s := range ss {
		xx[i] = s.X
		yy[i] = s.Y
	}
	return xx, yy
}

// Table formats the samples as a printable two column table.
func (ss Samples) Table() string {
	var b strings.Builder
	b.WriteString("       x   y\n")
	for i, s := range ss {
		b.WriteString(fmt.Sprintf("%d %6.0f %3.0f\n", i, s.X, s.Y))
	}
	return b.String()
}
