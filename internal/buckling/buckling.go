package buckling

import "math"

// End-condition constants C (Shigley Table 4-2). Theoretical values, plus
// the recommended conservative values for ends that are not ideally rigid.
const (
	CFixedFree    = 0.25
	CPinnedPinned = 1.0
	CFixedPinned  = 2.0
	CFixedFixed   = 4.0

	CFixedPinnedRecommended = 1.2
	CFixedFixedRecommended  = 1.2
)

// Regime identifies which buckling formula governs a column.
type Regime string

const (
	RegimeEuler   Regime = "euler"
	RegimeJohnson Regime = "johnson"
)

// SafetyResult is the outcome of a buckling safety-factor check: the factor
// itself, the critical load it was derived from, and the formula regime that
// produced it.
type SafetyResult struct {
	SafetyFactor float64
	CriticalLoad float64
	Regime       Regime
}

// RequiredArea returns the minimum cross-section area A = F/S able to carry
// the compressive load F at the allowable strength S.
func RequiredArea(F, S float64) (float64, error) {
	if F <= 0 {
		return 0, ErrInvalidLoad
	}
	if S <= 0 {
		return 0, ErrInvalidStrength
	}
	return F / S, nil
}

// EulerCriticalLoad returns the elastic buckling critical load
// Pcr = C·π²·E·I / L² for a long (Euler) column, Shigley Eq. (4-42).
func EulerCriticalLoad(E, I, L, C float64) (float64, error) {
	if E <= 0 {
		return 0, ErrInvalidModulus
	}
	if I <= 0 {
		return 0, ErrInvalidInertia
	}
	if L <= 0 {
		return 0, ErrInvalidLength
	}
	if C <= 0 {
		return 0, ErrInvalidEndCondition
	}
	return C * math.Pi * math.Pi * E * I / (L * L), nil
}

// RadiusOfGyration returns k = √(I/A) for a cross section. I and A must be
// strictly positive so the root is always real.
func RadiusOfGyration(I, A float64) (float64, error) {
	if I <= 0 {
		return 0, ErrInvalidInertia
	}
	if A <= 0 {
		return 0, ErrInvalidArea
	}
	return math.Sqrt(I / A), nil
}

// SlendernessRatio returns λ = L/k.
func SlendernessRatio(L, k float64) (float64, error) {
	if L <= 0 {
		return 0, ErrInvalidLength
	}
	if k <= 0 {
		return 0, ErrInvalidGyration
	}
	return L / k, nil
}

// EulerUnitCriticalLoad returns the Euler critical load per unit area
// σcr = C·π²·E / λ², with λ derived from the section via RadiusOfGyration
// and SlendernessRatio.
func EulerUnitCriticalLoad(E, I, L, C, A float64) (float64, error) {
	if E <= 0 {
		return 0, ErrInvalidModulus
	}
	if C <= 0 {
		return 0, ErrInvalidEndCondition
	}
	k, err := RadiusOfGyration(I, A)
	if err != nil {
		return 0, err
	}
	lambda, err := SlendernessRatio(L, k)
	if err != nil {
		return 0, err
	}
	return C * math.Pi * math.Pi * E / (lambda * lambda), nil
}

// TransitionSlenderness returns λ₁ = √(2·π²·C·E / Sy), Shigley Eq. (4-43):
// the slenderness at which the Euler and Johnson curves meet. Columns more
// slender than λ₁ buckle elastically.
func TransitionSlenderness(C, E, Sy float64) (float64, error) {
	if C <= 0 {
		return 0, ErrInvalidEndCondition
	}
	if E <= 0 {
		return 0, ErrInvalidModulus
	}
	if Sy <= 0 {
		return 0, ErrInvalidYield
	}
	return math.Sqrt(2 * math.Pi * math.Pi * C * E / Sy), nil
}

// IsEulerColumn reports whether the column is slender enough (λ > λ₁) for
// the Euler formula to govern. A false result places the column in the
// intermediate-length Johnson regime.
func IsEulerColumn(C, E, Sy, L, A, I float64) (bool, error) {
	k, err := RadiusOfGyration(I, A)
	if err != nil {
		return false, err
	}
	lambda, err := SlendernessRatio(L, k)
	if err != nil {
		return false, err
	}
	limit, err := TransitionSlenderness(C, E, Sy)
	if err != nil {
		return false, err
	}
	return lambda > limit, nil
}

// JohnsonUnitCriticalLoad returns the Johnson parabola critical load per
// unit area σcr = Sy − (Sy·L / (2π·k))² · 1/(C·E), Shigley Eq. (4-46),
// for intermediate-length columns.
func JohnsonUnitCriticalLoad(E, I, L, C, A, Sy float64) (float64, error) {
	if E <= 0 {
		return 0, ErrInvalidModulus
	}
	if C <= 0 {
		return 0, ErrInvalidEndCondition
	}
	if Sy <= 0 {
		return 0, ErrInvalidYield
	}
	if L <= 0 {
		return 0, ErrInvalidLength
	}
	k, err := RadiusOfGyration(I, A)
	if err != nil {
		return 0, err
	}
	a := Sy * L / (2 * math.Pi * k)
	return Sy - a*a/(C*E), nil
}

// JohnsonCriticalLoad returns the Johnson critical load Pcr = σcr·A.
func JohnsonCriticalLoad(E, I, L, C, A, Sy float64) (float64, error) {
	unit, err := JohnsonUnitCriticalLoad(E, I, L, C, A, Sy)
	if err != nil {
		return 0, err
	}
	return unit * A, nil
}

// SafetyFactorCompression returns SF = Sallow/σ for pure compression, with
// the working stress σ = F/A.
func SafetyFactorCompression(Sallow, F, A float64) (float64, error) {
	if Sallow <= 0 {
		return 0, ErrInvalidStrength
	}
	if F <= 0 {
		return 0, ErrInvalidLoad
	}
	if A <= 0 {
		return 0, ErrInvalidArea
	}
	sigma := F / A
	return Sallow / sigma, nil
}

// SafetyFactorBuckling runs the full column check: decide the regime with
// IsEulerColumn, compute the critical load with the governing formula, and
// return SF = Pcr/F together with the regime tag.
func SafetyFactorBuckling(E, I, L, C, A, Sy, F float64) (SafetyResult, error) {
	if F <= 0 {
		return SafetyResult{}, ErrInvalidLoad
	}
	euler, err := IsEulerColumn(C, E, Sy, L, A, I)
	if err != nil {
		return SafetyResult{}, err
	}

	var pcr float64
	regime := RegimeJohnson
	if euler {
		regime = RegimeEuler
		pcr, err = EulerCriticalLoad(E, I, L, C)
	} else {
		pcr, err = JohnsonCriticalLoad(E, I, L, C, A, Sy)
	}
	if err != nil {
		return SafetyResult{}, err
	}

	return SafetyResult{
		SafetyFactor: pcr / F,
		CriticalLoad: pcr,
		Regime:       regime,
	}, nil
}
