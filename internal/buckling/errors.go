package buckling

import "errors"

var (
	// ErrInvalidLoad indicates a zero or negative applied load.
	ErrInvalidLoad = errors.New("buckling: invalid load")
	// ErrInvalidStrength indicates a zero or negative allowable strength.
	ErrInvalidStrength = errors.New("buckling: invalid allowable strength")
	// ErrInvalidModulus indicates a zero or negative Young's modulus.
	ErrInvalidModulus = errors.New("buckling: invalid elastic modulus")
	// ErrInvalidInertia indicates a zero or negative second moment of area.
	ErrInvalidInertia = errors.New("buckling: invalid moment of inertia")
	// ErrInvalidLength indicates a zero or negative column length.
	ErrInvalidLength = errors.New("buckling: invalid length")
	// ErrInvalidEndCondition indicates a zero or negative end-condition constant.
	ErrInvalidEndCondition = errors.New("buckling: invalid end-condition constant")
	// ErrInvalidArea indicates a zero or negative cross-section area.
	ErrInvalidArea = errors.New("buckling: invalid area")
	// ErrInvalidGyration indicates a zero or negative radius of gyration.
	ErrInvalidGyration = errors.New("buckling: invalid radius of gyration")
	// ErrInvalidYield indicates a zero or negative yield strength.
	ErrInvalidYield = errors.New("buckling: invalid yield strength")
)
