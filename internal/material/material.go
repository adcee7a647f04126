package material

import "fmt"

// Grade names accepted by Lookup.
const (
	GradeSteel  = "steel" // generic structural steel, E 200 GPa / Sy 250 MPa
	GradeA36    = "a36"
	GradeS235   = "s235"
	GradeS355   = "s355"
	Grade1018   = "1018" // AISI 1018 cold drawn
	Grade6061T6 = "6061-t6"
)

// Props carries the two material properties the column formulas need, in Pa.
type Props struct {
	Name string  `json:"name"`
	E    float64 `json:"e_pa"`
	Sy   float64 `json:"sy_pa"`
}

// Lookup resolves a grade name to its properties.
func Lookup(grade string) (Props, error) {
	switch grade {
	case GradeSteel:
		return Props{Name: "structural steel", E: 200e9, Sy: 250e6}, nil
	case GradeA36:
		return Props{Name: "ASTM A36", E: 200e9, Sy: 250e6}, nil
	case GradeS235:
		return Props{Name: "S235", E: 210e9, Sy: 235e6}, nil
	case GradeS355:
		return Props{Name: "S355", E: 210e9, Sy: 355e6}, nil
	case Grade1018:
		return Props{Name: "AISI 1018 CD", E: 205e9, Sy: 370e6}, nil
	case Grade6061T6:
		return Props{Name: "6061-T6 aluminum", E: 68.9e9, Sy: 276e6}, nil
	}
	return Props{}, fmt.Errorf("unknown material grade %q", grade)
}

// Grades lists the accepted grade names.
func Grades() []string {
	return []string{GradeSteel, GradeA36, GradeS235, GradeS355, Grade1018, Grade6061T6}
}
