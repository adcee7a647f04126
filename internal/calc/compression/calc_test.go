package compression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"Strut/internal/calc/compression"
)

func TestCalculate(t *testing.T) {
	res, err := compression.Calculate(compression.Input{
		SallowPa: 250e6,
		LoadN:    100e3,
		AreaM2:   0.002,
	})
	require.NoError(t, err)

	require.InEpsilon(t, 4e-4, res.RequiredAreaM2, 1e-12)
	require.InEpsilon(t, 5e7, res.StressPa, 1e-12)
	require.InEpsilon(t, 5.0, res.SafetyFactor, 1e-12)
	require.True(t, res.OK)
}

func TestCalculateSizesSection(t *testing.T) {
	res, err := compression.Calculate(compression.Input{
		SallowPa: 250e6,
		LoadN:    100e3,
	})
	require.NoError(t, err)

	// Sized at the allowable stress the member works at SF = 1.
	require.Equal(t, res.RequiredAreaM2, res.AreaM2)
	require.InEpsilon(t, 250e6, res.StressPa, 1e-9)
	require.InEpsilon(t, 1.0, res.SafetyFactor, 1e-9)
}

func TestCalculateMaterialDefault(t *testing.T) {
	res, err := compression.Calculate(compression.Input{
		Material: "s355",
		LoadN:    71e3,
	})
	require.NoError(t, err)
	require.InEpsilon(t, 71e3/355e6, res.RequiredAreaM2, 1e-12)

	_, err = compression.Calculate(compression.Input{Material: "unobtainium", LoadN: 1})
	require.Error(t, err)
}

func TestCalculateOverstressed(t *testing.T) {
	res, err := compression.Calculate(compression.Input{
		SallowPa: 250e6,
		LoadN:    600e3,
		AreaM2:   0.002,
	})
	require.NoError(t, err)
	require.Less(t, res.SafetyFactor, 1.0)
	require.False(t, res.OK)
}

func TestCalculateInvalidInput(t *testing.T) {
	_, err := compression.Calculate(compression.Input{SallowPa: 250e6})
	require.Error(t, err)

	_, err = compression.Calculate(compression.Input{SallowPa: 250e6, LoadN: -5})
	require.Error(t, err)
}
