package material_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"Strut/internal/material"
)

func TestLookup(t *testing.T) {
	for _, grade := range material.Grades() {
		props, err := material.Lookup(grade)
		require.NoError(t, err, grade)
		require.NotEmpty(t, props.Name, grade)
		require.Greater(t, props.E, 0.0, grade)
		require.Greater(t, props.Sy, 0.0, grade)
	}

	steel, err := material.Lookup(material.GradeSteel)
	require.NoError(t, err)
	require.Equal(t, 200e9, steel.E)
	require.Equal(t, 250e6, steel.Sy)

	_, err = material.Lookup("unobtainium")
	require.Error(t, err)
}
