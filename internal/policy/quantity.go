package policy

// MoneyVelocity is original_source/src/utils/Config.h's MONEY_VELOCITY
// constant, the constant-velocity assumption the quantity equation uses
// when a world has no measured velocity of its own yet.
const MoneyVelocity = 4.0

// PriceLevel solves the quantity equation MV = PQ for P (grounded on
// original_source/src/models/QuantityTheory.h's calculatePriceLevel).
// Returns 1 (a neutral price level) when there is no real output to
// divide by, matching the original's guard.
func PriceLevel(moneySupply, velocity, realOutput float64) float64 {
	if realOutput <= 0 {
		return 1
	}
	return (moneySupply * velocity) / realOutput
}

// Velocity backs out the implied velocity of money from nominal GDP and
// money supply, falling back to MoneyVelocity when the supply is zero
// (QuantityTheory::calculateVelocity).
func Velocity(nominalGDP, moneySupply float64) float64 {
	if moneySupply <= 0 {
		return MoneyVelocity
	}
	return nominalGDP / moneySupply
}

// InflationFromMoneyGrowth approximates long-run inflation as the
// excess of money growth over output growth
// (QuantityTheory::calculateInflationFromMoneyGrowth).
func InflationFromMoneyGrowth(moneyGrowthRate, outputGrowthRate float64) float64 {
	return moneyGrowthRate - outputGrowthRate
}
