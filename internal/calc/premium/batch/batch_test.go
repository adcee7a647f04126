package batch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	column "Strut/internal/calc/column"
	"Strut/internal/calc/premium/batch"
)

func TestCalculateColumn(t *testing.T) {
	in := batch.ColumnBatchInput{Items: []column.Input{
		{LengthM: 2, AreaM2: 0.002, InertiaM4: 8e-6, LoadN: 100e3},
		{LengthM: 10, AreaM2: 0.002, InertiaM4: 8e-6, LoadN: 50e3},
	}}

	out, err := batch.CalculateColumn(in)
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	require.Equal(t, "johnson", out.Results[0].Regime)
	require.Equal(t, "euler", out.Results[1].Regime)
}

func TestCalculateColumnEmpty(t *testing.T) {
	_, err := batch.CalculateColumn(batch.ColumnBatchInput{})
	require.Error(t, err)
}

func TestCalculateColumnBadItem(t *testing.T) {
	in := batch.ColumnBatchInput{Items: []column.Input{
		{LengthM: 2, AreaM2: 0.002, InertiaM4: 8e-6, LoadN: 100e3},
		{LengthM: -1},
	}}
	_, err := batch.CalculateColumn(in)
	require.Error(t, err)
}
