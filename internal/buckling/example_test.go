package buckling_test

import (
	"fmt"

	"Strut/internal/buckling"
)

// A 2 m pinned-pinned steel strut: λ ≈ 31.6 sits below the transition
// slenderness λ₁ ≈ 125.7, so the Johnson parabola governs the check.
func ExampleSafetyFactorBuckling() {
	res, err := buckling.SafetyFactorBuckling(200e9, 8e-6, 2.0, 1.0, 0.002, 250e6, 100e3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("regime:", res.Regime)
	fmt.Printf("safety factor: %.2f\n", res.SafetyFactor)
	// Output:
	// regime: johnson
	// safety factor: 4.84
}

func ExampleIsEulerColumn() {
	short, _ := buckling.IsEulerColumn(1.0, 200e9, 250e6, 2.0, 0.002, 8e-6)
	long, _ := buckling.IsEulerColumn(1.0, 200e9, 250e6, 10.0, 0.002, 8e-6)
	fmt.Println(short, long)
	// Output:
	// false true
}
