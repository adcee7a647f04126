package column

import (
	"fmt"

	"Strut/internal/buckling"
	"Strut/internal/material"
)

type Input struct {
	LengthM   float64 `json:"length_m"`
	EndFactor float64 `json:"end_factor"`
	AreaM2    float64 `json:"area_m2"`
	InertiaM4 float64 `json:"inertia_m4"`
	E_Pa      float64 `json:"e_pa"`
	SyPa      float64 `json:"sy_pa"`
	LoadN     float64 `json:"load_n"`
	Material  string  `json:"material"`
}

type Result struct {
	GyrationM      float64 `json:"radius_of_gyration_m"`
	Slenderness    float64 `json:"slenderness"`
	TransitionSlnd float64 `json:"transition_slenderness"`
	Regime         string  `json:"regime"`
	UnitCriticalPa float64 `json:"unit_critical_load_pa"`
	CriticalLoadN  float64 `json:"critical_load_n"`
	SafetyFactor   float64 `json:"safety_factor"`
	OK             bool    `json:"ok"`
	Notes          string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.LengthM <= 0 || in.AreaM2 <= 0 || in.InertiaM4 <= 0 || in.LoadN <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.EndFactor <= 0 {
		in.EndFactor = buckling.CPinnedPinned
	}
	if in.E_Pa <= 0 || in.SyPa <= 0 {
		grade := in.Material
		if grade == "" {
			grade = material.GradeSteel
		}
		props, err := material.Lookup(grade)
		if err != nil {
			return Result{}, err
		}
		if in.E_Pa <= 0 {
			in.E_Pa = props.E
		}
		if in.SyPa <= 0 {
			in.SyPa = props.Sy
		}
	}

	k, err := buckling.RadiusOfGyration(in.InertiaM4, in.AreaM2)
	if err != nil {
		return Result{}, err
	}
	lambda, err := buckling.SlendernessRatio(in.LengthM, k)
	if err != nil {
		return Result{}, err
	}
	limit, err := buckling.TransitionSlenderness(in.EndFactor, in.E_Pa, in.SyPa)
	if err != nil {
		return Result{}, err
	}

	check, err := buckling.SafetyFactorBuckling(in.E_Pa, in.InertiaM4, in.LengthM, in.EndFactor, in.AreaM2, in.SyPa, in.LoadN)
	if err != nil {
		return Result{}, err
	}

	var unit float64
	var notes string
	if check.Regime == buckling.RegimeEuler {
		unit, err = buckling.EulerUnitCriticalLoad(in.E_Pa, in.InertiaM4, in.LengthM, in.EndFactor, in.AreaM2)
		notes = "Euler elastic buckling governs (slender column)."
	} else {
		unit, err = buckling.JohnsonUnitCriticalLoad(in.E_Pa, in.InertiaM4, in.LengthM, in.EndFactor, in.AreaM2, in.SyPa)
		notes = "Johnson parabola governs (intermediate column)."
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		GyrationM:      k,
		Slenderness:    lambda,
		TransitionSlnd: limit,
		Regime:         string(check.Regime),
		UnitCriticalPa: unit,
		CriticalLoadN:  check.CriticalLoad,
		SafetyFactor:   check.SafetyFactor,
		OK:             check.SafetyFactor >= 1.0,
		Notes:          notes,
	}, nil
}
