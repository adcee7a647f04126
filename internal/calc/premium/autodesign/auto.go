package autodesign

import (
	"fmt"

	column "Strut/internal/calc/column"
	section "Strut/internal/calc/section"
)

type ColumnAutoInput struct {
	Material     string  `json:"material"`
	E_Pa         float64 `json:"e_pa"`
	SyPa         float64 `json:"sy_pa"`
	LengthM      float64 `json:"length_m"`
	EndFactor    float64 `json:"end_factor"`
	LoadN        float64 `json:"load_n"`
	TargetSafety float64 `json:"target_safety"`
}

type ColumnAutoResult struct {
	DiameterM     float64 `json:"diameter_m"`
	AreaM2        float64 `json:"area_m2"`
	InertiaM4     float64 `json:"inertia_m4"`
	Regime        string  `json:"regime"`
	CriticalLoadN float64 `json:"critical_load_n"`
	SafetyFactor  float64 `json:"safety_factor"`
	Notes         string  `json:"notes"`
}

// Round-bar diameters are stepped in 1 mm increments from 5 mm up to
// 1 m; the first section whose buckling safety factor reaches the
// target wins.
func Column(in ColumnAutoInput) (ColumnAutoResult, error) {
	if in.LengthM <= 0 || in.LoadN <= 0 {
		return ColumnAutoResult{}, fmt.Errorf("invalid input")
	}
	if in.TargetSafety <= 0 {
		in.TargetSafety = 2.0
	}

	for d := 0.005; d <= 1.0; d += 0.001 {
		sec, err := section.Calculate(section.Input{Shape: section.ShapeCircle, DiameterM: d})
		if err != nil {
			return ColumnAutoResult{}, err
		}
		res, err := column.Calculate(column.Input{
			LengthM:   in.LengthM,
			EndFactor: in.EndFactor,
			AreaM2:    sec.AreaM2,
			InertiaM4: sec.InertiaMinM4,
			E_Pa:      in.E_Pa,
			SyPa:      in.SyPa,
			LoadN:     in.LoadN,
			Material:  in.Material,
		})
		if err != nil {
			return ColumnAutoResult{}, err
		}
		if res.SafetyFactor >= in.TargetSafety {
			return ColumnAutoResult{
				DiameterM:     d,
				AreaM2:        sec.AreaM2,
				InertiaM4:     sec.InertiaMinM4,
				Regime:        res.Regime,
				CriticalLoadN: res.CriticalLoadN,
				SafetyFactor:  res.SafetyFactor,
				Notes:         "Auto-sized round bar (smallest diameter meeting the target safety factor).",
			}, nil
		}
	}
	return ColumnAutoResult{}, fmt.Errorf("no bar up to 1 m in diameter meets the target")
}
