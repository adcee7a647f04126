// Package diagram renders the column buckling design chart: the
// Johnson parabola up to the transition slenderness and the Euler
// hyperbola beyond it, with the checked column overlaid as a point.
package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"Strut/internal/buckling"
)

type CurveData struct {
	C  float64 // end-condition constant
	E  float64 // modulus of elasticity, Pa
	Sy float64 // yield strength, Pa

	// Right edge of the chart; 0 means twice the transition slenderness.
	MaxSlenderness float64
	// Samples per branch; 0 means 64.
	Points int

	// Optional design point overlay, skipped when zero.
	DesignSlenderness float64
	DesignUnitLoadPa  float64
}

const mega = 1e6

func buildPlot(data CurveData) (*plot.Plot, error) {
	t, err := buckling.TransitionSlenderness(data.C, data.E, data.Sy)
	if err != nil {
		return nil, err
	}

	points := data.Points
	if points <= 0 {
		points = 64
	}
	maxSlnd := data.MaxSlenderness
	if maxSlnd <= t {
		maxSlnd = 2 * t
	}
	if data.DesignSlenderness > 0.8*maxSlnd {
		maxSlnd = 1.25 * data.DesignSlenderness
	}

	p := plot.New()
	p.Title.Text = "Column Buckling Design Chart"
	p.X.Label.Text = "Slenderness ratio L/k"
	p.Y.Label.Text = "Unit critical load (MPa)"
	p.Y.Min = 0

	// A unit section (A = 1, I = 1) has k = 1, so a column of length
	// lambda evaluates the unit-load formulas at that slenderness.
	johnson := make(plotter.XYs, points)
	for i := 1; i <= points; i++ {
		lambda := t * float64(i) / float64(points)
		s, err := buckling.JohnsonUnitCriticalLoad(data.E, 1, lambda, data.C, 1, data.Sy)
		if err != nil {
			return nil, err
		}
		johnson[i-1] = plotter.XY{X: lambda, Y: s / mega}
	}
	johnsonLine, err := plotter.NewLine(johnson)
	if err != nil {
		return nil, err
	}
	johnsonLine.LineStyle.Width = vg.Points(2)
	johnsonLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(johnsonLine)

	euler := make(plotter.XYs, points+1)
	for i := 0; i <= points; i++ {
		lambda := t + (maxSlnd-t)*float64(i)/float64(points)
		s, err := buckling.EulerUnitCriticalLoad(data.E, 1, lambda, data.C, 1)
		if err != nil {
			return nil, err
		}
		euler[i] = plotter.XY{X: lambda, Y: s / mega}
	}
	eulerLine, err := plotter.NewLine(euler)
	if err != nil {
		return nil, err
	}
	eulerLine.LineStyle.Width = vg.Points(2)
	eulerLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(eulerLine)

	// Yield strength reference
	syLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: data.Sy / mega},
		{X: maxSlnd, Y: data.Sy / mega},
	})
	if err != nil {
		return nil, err
	}
	syLine.LineStyle.Width = vg.Points(1)
	syLine.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	syLine.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(syLine)

	// Transition slenderness marker
	tLine, err := plotter.NewLine(plotter.XYs{
		{X: t, Y: 0},
		{X: t, Y: data.Sy / mega},
	})
	if err != nil {
		return nil, err
	}
	tLine.LineStyle.Width = vg.Points(1)
	tLine.LineStyle.Color = color.Gray{Y: 128}
	tLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(tLine)

	label, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: t, Y: data.Sy / mega}},
		Labels: []string{fmt.Sprintf("(L/k)1 = %.1f", t)},
	})
	if err != nil {
		return nil, err
	}
	p.Add(label)

	if data.DesignSlenderness > 0 {
		point, err := plotter.NewScatter(plotter.XYs{
			{X: data.DesignSlenderness, Y: data.DesignUnitLoadPa / mega},
		})
		if err != nil {
			return nil, err
		}
		point.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		point.GlyphStyle.Radius = vg.Points(4)
		point.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(point)
	}

	return p, nil
}

// ExportCurve writes the chart to an image file; the format follows
// the extension, defaulting to PNG.
func ExportCurve(data CurveData, filename string) error {
	p, err := buildPlot(data)
	if err != nil {
		return err
	}

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// WriteCurvePNG streams the chart as PNG, for HTTP responses.
func WriteCurvePNG(data CurveData, w io.Writer) error {
	p, err := buildPlot(data)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
