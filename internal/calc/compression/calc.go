package compression

import (
	"fmt"

	"Strut/internal/buckling"
	"Strut/internal/material"
)

type Input struct {
	Material string  `json:"material"`
	SallowPa float64 `json:"sallow_pa"`
	LoadN    float64 `json:"load_n"`
	AreaM2   float64 `json:"area_m2"`
}

type Result struct {
	RequiredAreaM2 float64 `json:"required_area_m2"`
	AreaM2         float64 `json:"area_m2"`
	StressPa       float64 `json:"stress_pa"`
	SafetyFactor   float64 `json:"safety_factor"`
	OK             bool    `json:"ok"`
	Notes          string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.LoadN <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.SallowPa <= 0 {
		grade := in.Material
		if grade == "" {
			grade = material.GradeSteel
		}
		props, err := material.Lookup(grade)
		if err != nil {
			return Result{}, err
		}
		in.SallowPa = props.Sy
	}

	// Pure compression: A = F / S
	required, err := buckling.RequiredArea(in.LoadN, in.SallowPa)
	if err != nil {
		return Result{}, err
	}

	// Size the section at the allowable stress if not provided
	if in.AreaM2 <= 0 {
		in.AreaM2 = required
	}

	stress := in.LoadN / in.AreaM2
	sf, err := buckling.SafetyFactorCompression(in.SallowPa, in.LoadN, in.AreaM2)
	if err != nil {
		return Result{}, err
	}

	return Result{
		RequiredAreaM2: required,
		AreaM2:         in.AreaM2,
		StressPa:       stress,
		SafetyFactor:   sf,
		OK:             sf >= 1.0,
		Notes:          "Direct compression check (P/A), no buckling.",
	}, nil
}
