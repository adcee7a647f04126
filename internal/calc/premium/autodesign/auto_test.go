package autodesign_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"Strut/internal/buckling"
	"Strut/internal/calc/premium/autodesign"
)

func TestColumnPicksSmallestDiameter(t *testing.T) {
	res, err := autodesign.Column(autodesign.ColumnAutoInput{
		Material:     "steel",
		LengthM:      2,
		LoadN:        100e3,
		TargetSafety: 2,
	})
	require.NoError(t, err)

	// 53 mm falls just short of SF 2, 54 mm clears it.
	require.InDelta(t, 0.054, res.DiameterM, 1e-9)
	require.Equal(t, "euler", res.Regime)
	require.GreaterOrEqual(t, res.SafetyFactor, 2.0)
	require.Less(t, res.SafetyFactor, 2.2)

	want, err := buckling.EulerCriticalLoad(200e9, res.InertiaM4, 2, 1)
	require.NoError(t, err)
	require.Equal(t, want, res.CriticalLoadN)
}

func TestColumnLightLoadStopsAtFirstSize(t *testing.T) {
	res, err := autodesign.Column(autodesign.ColumnAutoInput{
		LengthM: 0.5,
		LoadN:   10,
	})
	require.NoError(t, err)
	require.Equal(t, 0.005, res.DiameterM)
}

func TestColumnNoFit(t *testing.T) {
	_, err := autodesign.Column(autodesign.ColumnAutoInput{
		LengthM:      10,
		LoadN:        1e9,
		TargetSafety: 10,
	})
	require.Error(t, err)
}

func TestColumnInvalidInput(t *testing.T) {
	_, err := autodesign.Column(autodesign.ColumnAutoInput{LoadN: 100})
	require.Error(t, err)
}
