package curve

import (
	"Strut/internal/buckling"
	column "Strut/internal/calc/column"
	"Strut/internal/diagram"
	"Strut/internal/material"
)

// Build resolves a column payload into chart data. Geometry and load
// are optional: without them the chart carries no design point.
func Build(in column.Input) (diagram.CurveData, error) {
	c := in.EndFactor
	if c <= 0 {
		c = buckling.CPinnedPinned
	}
	e, sy := in.E_Pa, in.SyPa
	if e <= 0 || sy <= 0 {
		grade := in.Material
		if grade == "" {
			grade = material.GradeSteel
		}
		props, err := material.Lookup(grade)
		if err != nil {
			return diagram.CurveData{}, err
		}
		if e <= 0 {
			e = props.E
		}
		if sy <= 0 {
			sy = props.Sy
		}
	}

	data := diagram.CurveData{C: c, E: e, Sy: sy}

	if in.LengthM > 0 && in.AreaM2 > 0 && in.InertiaM4 > 0 && in.LoadN > 0 {
		res, err := column.Calculate(in)
		if err != nil {
			return diagram.CurveData{}, err
		}
		data.DesignSlenderness = res.Slenderness
		data.DesignUnitLoadPa = res.UnitCriticalPa
	}

	return data, nil
}
