package section

import (
	"fmt"
	"math"

	"Strut/internal/buckling"
)

const (
	ShapeRect   = "rect"
	ShapeCircle = "circle"
	ShapePipe   = "pipe"
)

type Input struct {
	Shape          string  `json:"shape"` // rect, circle or pipe
	WidthM         float64 `json:"width_m"`
	HeightM        float64 `json:"height_m"`
	DiameterM      float64 `json:"diameter_m"`
	OuterDiameterM float64 `json:"outer_diameter_m"`
	InnerDiameterM float64 `json:"inner_diameter_m"`
}

type Result struct {
	AreaM2       float64 `json:"area_m2"`
	InertiaMinM4 float64 `json:"inertia_min_m4"`
	InertiaMaxM4 float64 `json:"inertia_max_m4"`
	GyrationMinM float64 `json:"radius_of_gyration_min_m"`
	Notes        string  `json:"notes"`
}

// Calculate returns the gross properties a buckling check needs: area,
// second moments about both principal axes and the least radius of
// gyration (columns buckle about the weak axis).
func Calculate(in Input) (Result, error) {
	var area, imin, imax float64
	var notes string

	switch in.Shape {
	case ShapeRect:
		if in.WidthM <= 0 || in.HeightM <= 0 {
			return Result{}, fmt.Errorf("invalid input")
		}
		b, h := in.WidthM, in.HeightM
		area = b * h
		ix := b * h * h * h / 12.0
		iy := h * b * b * b / 12.0
		imin = math.Min(ix, iy)
		imax = math.Max(ix, iy)
		notes = "Solid rectangle b x h."
	case ShapeCircle:
		if in.DiameterM <= 0 {
			return Result{}, fmt.Errorf("invalid input")
		}
		d := in.DiameterM
		area = math.Pi * d * d / 4.0
		imin = math.Pi * math.Pow(d, 4) / 64.0
		imax = imin
		notes = "Solid round bar."
	case ShapePipe:
		if in.InnerDiameterM <= 0 || in.OuterDiameterM <= in.InnerDiameterM {
			return Result{}, fmt.Errorf("invalid input")
		}
		D, d := in.OuterDiameterM, in.InnerDiameterM
		area = math.Pi * (D*D - d*d) / 4.0
		imin = math.Pi * (math.Pow(D, 4) - math.Pow(d, 4)) / 64.0
		imax = imin
		notes = "Circular tube."
	default:
		return Result{}, fmt.Errorf("unknown section shape %q", in.Shape)
	}

	k, err := buckling.RadiusOfGyration(imin, area)
	if err != nil {
		return Result{}, err
	}

	return Result{
		AreaM2:       area,
		InertiaMinM4: imin,
		InertiaMaxM4: imax,
		GyrationMinM: k,
		Notes:        notes,
	}, nil
}
