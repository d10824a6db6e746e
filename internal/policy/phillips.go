package policy

// NaturalUnemployment and PhillipsBeta are original_source/src/utils/Config.h's
// NATURAL_UNEMPLOYMENT and PHILLIPS_BETA constants.
const (
	NaturalUnemployment = 0.04
	PhillipsBeta        = 0.5

	// inflationFloor is the deflation limit PhillipsCurve::calculate clamps to.
	inflationFloor = -0.05
)

// Inflation implements the expectations-augmented Phillips curve
// π = π^e - β(u - u*), floored at inflationFloor (grounded on
// original_source/src/models/PhillipsCurve.h's calculate).
func Inflation(unemployment, naturalUnemployment, expectedInflation float64) float64 {
	gap := unemployment - naturalUnemployment
	inflation := expectedInflation - PhillipsBeta*gap
	if inflation < inflationFloor {
		return inflationFloor
	}
	return inflation
}

// AdaptiveExpectation nudges expected inflation toward the actual rate
// at the given adaptation speed (PhillipsCurve::updateExpectations).
func AdaptiveExpectation(expected, actual, speed float64) float64 {
	return expected + speed*(actual-expected)
}
