// Package pricing derives the per-client hour and price allocations for
// the three offer tiers. All functions are pure and assume inputs that
// already passed profile validation (capacity > 0 in particular).
package pricing

import (
	"math"

	"offerforge/models"
)

// Tier price multipliers relative to the core (base) price.
const (
	StarterMultiplier = 0.65
	PremiumMultiplier = 1.75
)

// Tier hour multipliers relative to hours-per-client. Premium never
// exceeds 1.3x the capacity-derived per-client budget.
const (
	StarterHoursMultiplier = 0.6
	CoreHoursMultiplier    = 1.0
	PremiumHoursMultiplier = 1.3
)

// Derived holds the pricing outputs consumed by the synthesizer and prompts
type Derived struct {
	HoursPerClient  int
	MonthlyValue    int
	AnnualValue     int
	StarterPrice    int
	CorePrice       int
	PremiumPrice    int
	StarterHours    int
	CoreHours       int
	PremiumHours    int
}

// Derive converts capacity, monthly hours and the contract-value target
// into tier allocations. No rounding-error correction is applied across
// tiers; each figure rounds independently.
func Derive(capacity, monthlyHours, contractValue int, period models.ValuePeriod) Derived {
	var monthlyValue, annualValue float64
	switch period {
	case models.PeriodAnnual:
		annualValue = float64(contractValue)
		monthlyValue = annualValue / 12
	default:
		monthlyValue = float64(contractValue)
		annualValue = monthlyValue * 12
	}

	monthlyPerClient := math.Round(monthlyValue / float64(capacity))
	hoursPerClient := math.Round(float64(monthlyHours) / float64(capacity))

	return Derived{
		HoursPerClient: int(hoursPerClient),
		MonthlyValue:   int(math.Round(monthlyValue)),
		AnnualValue:    int(math.Round(annualValue)),
		StarterPrice:   int(math.Round(StarterMultiplier * monthlyPerClient)),
		CorePrice:      int(monthlyPerClient),
		PremiumPrice:   int(math.Round(PremiumMultiplier * monthlyPerClient)),
		StarterHours:   int(math.Round(StarterHoursMultiplier * hoursPerClient)),
		CoreHours:      int(hoursPerClient),
		PremiumHours:   int(math.Round(PremiumHoursMultiplier * hoursPerClient)),
	}
}

// FromProfile derives pricing straight from a validated profile
func FromProfile(p *models.BusinessProfile) Derived {
	return Derive(p.Business.Capacity, p.Business.MonthlyHours, p.Business.ContractValue, p.Business.ValuePeriod)
}
