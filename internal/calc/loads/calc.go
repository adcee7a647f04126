package loads

import "fmt"

type Method string

const (
	MethodASD  Method = "ASD"
	MethodLRFD Method = "LRFD"
	MethodEC   Method = "EC"
)

type Input struct {
	Method Method  `json:"method"`
	DeadN  float64 `json:"dead_n"`
	LiveN  float64 `json:"live_n"`
	WindN  float64 `json:"wind_n"`
}

type Result struct {
	DesignLoadN float64 `json:"design_load_n"`
	ComboName   string  `json:"combo_name"`
	Notes       string  `json:"notes"`
}

// Calculate combines the axial service loads into the design load the
// column check takes as load_n.
func Calculate(in Input) (Result, error) {
	if in.DeadN <= 0 {
		return Result{}, fmt.Errorf("invalid permanent load")
	}
	gD, gL, gW, name := factors(in.Method)
	design := in.DeadN*gD + in.LiveN*gL + in.WindN*gW
	return Result{
		DesignLoadN: design,
		ComboName:   name,
		Notes:       "Simplified combination with one permanent and two variable loads.",
	}, nil
}

func factors(method Method) (gD, gL, gW float64, name string) {
	switch method {
	case MethodLRFD:
		return 1.2, 1.6, 1.0, "LRFD basic"
	case MethodEC:
		return 1.35, 1.5, 0.9, "EN 1990 6.10"
	default:
		return 1.0, 1.0, 1.0, "ASD service"
	}
}
