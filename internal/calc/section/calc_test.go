package section_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"Strut/internal/calc/section"
)

func TestCalculateRect(t *testing.T) {
	res, err := section.Calculate(section.Input{Shape: section.ShapeRect, WidthM: 0.1, HeightM: 0.2})
	require.NoError(t, err)

	require.InEpsilon(t, 0.02, res.AreaM2, 1e-12)
	require.InEpsilon(t, 1.6666666666666667e-5, res.InertiaMinM4, 1e-12)
	require.InEpsilon(t, 6.666666666666667e-5, res.InertiaMaxM4, 1e-12)
	// Weak axis of a rectangle: k = b / sqrt(12)
	require.InEpsilon(t, 0.1/math.Sqrt(12), res.GyrationMinM, 1e-12)
}

func TestCalculateCircle(t *testing.T) {
	res, err := section.Calculate(section.Input{Shape: section.ShapeCircle, DiameterM: 0.05})
	require.NoError(t, err)

	require.InEpsilon(t, math.Pi*0.0025/4, res.AreaM2, 1e-12)
	require.Equal(t, res.InertiaMinM4, res.InertiaMaxM4)
	// Round bar: k = d / 4
	require.InEpsilon(t, 0.0125, res.GyrationMinM, 1e-12)
}

func TestCalculatePipe(t *testing.T) {
	res, err := section.Calculate(section.Input{
		Shape:          section.ShapePipe,
		OuterDiameterM: 0.06,
		InnerDiameterM: 0.05,
	})
	require.NoError(t, err)

	require.InEpsilon(t, math.Pi*(0.06*0.06-0.05*0.05)/4, res.AreaM2, 1e-12)
	// Tube: k = sqrt((D^2 + d^2)) / 4
	require.InEpsilon(t, math.Sqrt(0.06*0.06+0.05*0.05)/4, res.GyrationMinM, 1e-12)
}

func TestCalculateInvalid(t *testing.T) {
	cases := []struct {
		name string
		in   section.Input
	}{
		{"unknown shape", section.Input{Shape: "hexagon", WidthM: 1, HeightM: 1}},
		{"rect zero width", section.Input{Shape: section.ShapeRect, HeightM: 1}},
		{"circle zero diameter", section.Input{Shape: section.ShapeCircle}},
		{"pipe inner >= outer", section.Input{Shape: section.ShapePipe, OuterDiameterM: 0.05, InnerDiameterM: 0.05}},
		{"pipe zero inner", section.Input{Shape: section.ShapePipe, OuterDiameterM: 0.05}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := section.Calculate(tc.in)
			require.Error(t, err)
		})
	}
}
