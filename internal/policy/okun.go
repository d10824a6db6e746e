package policy

// OkunGamma is original_source/src/utils/Config.h's OKUN_GAMMA coefficient.
const OkunGamma = 2.5

// PotentialGDP backs out potential output from actual GDP and the
// unemployment gap: (Y-Y*)/Y* = -γ(u-u*) rearranged for Y* (grounded on
// original_source/src/models/OkunLaw.h's calculatePotentialGdp).
func PotentialGDP(actualGDP, unemployment, naturalUnemployment float64) float64 {
	denom := 1.0 - OkunGamma*(unemployment-naturalUnemployment)
	if absf(denom) < 0.01 {
		if denom >= 0 {
			denom = 0.01
		} else {
			denom = -0.01
		}
	}
	return actualGDP / denom
}

// GDPGap returns the fractional gap between actual and potential GDP.
func GDPGap(actualGDP, potentialGDP float64) float64 {
	if potentialGDP <= 0 {
		return 0
	}
	return (actualGDP - potentialGDP) / potentialGDP
}

// GDPLoss estimates output lost to unemployment above the natural
// rate (OkunLaw::calculateGdpLoss).
func GDPLoss(unemployment, naturalUnemployment, potentialGDP float64) float64 {
	return OkunGamma * (unemployment - naturalUnemployment) * potentialGDP
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
