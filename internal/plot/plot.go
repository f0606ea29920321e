package plot

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"rsquared/internal/data"
)

const dpi = 300

// Render scatter plots the samples, overlays the model predictions over an
// evaluation range extending one unit past the observed x bounds, and writes
// the figure as a png to the given path.
// The parent directory is created when missing and the file is overwritten.
func Render(samples data.Samples, predict func([]float64) []float64, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create output dir: %w", err)
		}
	}

	x, _ := samples.XY()
	xx := evalRange(floats.Min(x), floats.Max(x))
	yy := predict(xx)

	p := plot.New()
	p.Title.Text = "Support Vector Regression - R² Analysis"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = s.X
		pts[i].Y = s.Y
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("could not build scatter: %w", err)
	}
	scatter.GlyphStyle.Color = color.RGBA{B: 139, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)

	curve := make(plotter.XYs, len(xx))
	for i := range xx {
		curve[i].X = xx[i]
		curve[i].Y = yy[i]
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return fmt.Errorf("could not build prediction line: %w", err)
	}
	line.Color = color.RGBA{R: 255, A: 255}
	line.Width = vg.Points(2)

	p.Add(scatter, line)
	p.Legend.Add("SVR Prediction", line)

	canvas := vgimg.NewWith(vgimg.UseWH(6*vg.Inch, 4*vg.Inch), vgimg.UseDPI(dpi))
	p.Draw(draw.New(canvas))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create output file: %w", err)
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(f); err != nil {
		return fmt.Errorf("could not write png: %w", err)
	}
	return nil
}

// evalRange returns the integer steps from min-1 to max+1 inclusive.
func evalRange(min, max float64) []float64 {
	xx := make([]float64, 0)
	for v := math.Floor(min) - 1; v <= math.Ceil(max)+1; v++ {
		xx = append(xx, v)
	}
	return xx
}
