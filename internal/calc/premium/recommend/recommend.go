package recommend

import (
	"fmt"
	"math"

	"Strut/internal/buckling"
	"Strut/internal/material"
)

type SectionRecommendInput struct {
	Material string  `json:"material"`
	SallowPa float64 `json:"sallow_pa"`
	LoadN    float64 `json:"load_n"`
}

type SectionRecommendResult struct {
	RequiredAreaM2 float64 `json:"required_area_m2"`
	RoundDiameterM float64 `json:"round_diameter_m"`
	SquareSideM    float64 `json:"square_side_m"`
	Notes          string  `json:"notes"`
}

func Section(in SectionRecommendInput) (SectionRecommendResult, error) {
	if in.LoadN <= 0 {
		return SectionRecommendResult{}, fmt.Errorf("invalid input")
	}
	if in.SallowPa <= 0 {
		grade := in.Material
		if grade == "" {
			grade = material.GradeSteel
		}
		props, err := material.Lookup(grade)
		if err != nil {
			return SectionRecommendResult{}, err
		}
		in.SallowPa = props.Sy
	}

	area, err := buckling.RequiredArea(in.LoadN, in.SallowPa)
	if err != nil {
		return SectionRecommendResult{}, err
	}

	// A = pi*d^2/4 and A = a^2
	d := math.Sqrt(4.0 * area / math.Pi)
	a := math.Sqrt(area)
	if d < 0.005 {
		d = 0.005
	}
	if a < 0.005 {
		a = 0.005
	}

	return SectionRecommendResult{
		RequiredAreaM2: area,
		RoundDiameterM: d,
		SquareSideM:    a,
		Notes:          "Sections sized for pure compression; run the column check for buckling.",
	}, nil
}
