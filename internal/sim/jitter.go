package sim

import (
	"github.com/Shafin2954/cppConomy-sub000/internal/catalog"
	"github.com/Shafin2954/cppConomy-sub000/internal/kernel"
)

// minIncome is the income jitter floor (spec.md §4.6 phase 7).
const minIncome = 50.0

// jitterIncome multiplies a consumer's daily income by (1+factor),
// flooring at minIncome.
func jitterIncome(c *kernel.Consumer, factor float64) {
	c.DailyIncome *= 1 + factor
	if c.DailyIncome < minIncome {
		c.DailyIncome = minIncome
	}
}

// shockIntercept multiplies a consumer's demand intercept for one
// product by factor, flooring at 1, if the consumer holds that need
// (spec.md §4.6 phase 8).
func shockIntercept(c *kernel.Consumer, product catalog.ProductID, factor float64) {
	d, ok := c.DemandLines[product]
	if !ok {
		return
	}
	d.Intercept *= factor
	if d.Intercept < 1 {
		d.Intercept = 1
	}
	c.DemandLines[product] = d
}
