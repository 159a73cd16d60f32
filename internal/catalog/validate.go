package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// validateTables checks the structural invariants of the rate data: every
// band list partitions [0, ∞) with no gaps or overlaps, the top band is
// unbounded, and no rate or amount is negative. Combinatorial coverage
// across lanes and categories is deliberately not required here; a missing
// combination surfaces as a CalculationError at request time.
func validateTables(t Tables) []string {
	var problems []string

	if len(t.ReferralRules) == 0 {
		problems = append(problems, "no referral rules configured")
	}
	for category, rule := range t.ReferralRules {
		label := fmt.Sprintf("referral rule for %q", category)
		if len(rule.Tiers) == 0 {
			problems = append(problems, label+" has no tiers")
			continue
		}
		problems = append(problems, checkIntervals(label, tierIntervals(rule.Tiers))...)
		for _, tier := range rule.Tiers {
			if tier.Percent.IsNegative() {
				problems = append(problems, fmt.Sprintf("%s has a negative percentage", label))
			}
			if tier.Percent.GreaterThan(hundred) {
				problems = append(problems, fmt.Sprintf("%s has a percentage above 100", label))
			}
		}
	}

	for lane, bands := range t.WeightBands {
		label := fmt.Sprintf("weight bands for %s", lane)
		if !lane.Location.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown location %q", label, lane.Location))
		}
		if !lane.ShippingMode.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown shipping mode %q", label, lane.ShippingMode))
		}
		problems = append(problems, checkAmountBands(label, bands)...)
	}

	for category, bands := range t.ClosingFees {
		problems = append(problems, checkAmountBands(fmt.Sprintf("closing fees for %q", category), bands)...)
	}

	for key, amount := range t.PickPackRates {
		label := fmt.Sprintf("pick & pack rate for %s", key)
		if !key.ProductSize.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown product size %q", label, key.ProductSize))
		}
		if !key.ShippingMode.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown shipping mode %q", label, key.ShippingMode))
		}
		if amount.IsNegative() {
			problems = append(problems, label+" is negative")
		}
	}

	return problems
}

// interval is a band boundary pair, decoupled from what the band maps to.
type interval struct {
	lower decimal.Decimal
	upper *decimal.Decimal
}

func tierIntervals(tiers []RateTier) []interval {
	out := make([]interval, len(tiers))
	for i, t := range tiers {
		out[i] = interval{lower: t.Lower, upper: t.Upper}
	}
	return out
}

func bandIntervals(bands []AmountBand) []interval {
	out := make([]interval, len(bands))
	for i, b := range bands {
		out[i] = interval{lower: b.Lower, upper: b.Upper}
	}
	return out
}

func checkAmountBands(label string, bands []AmountBand) []string {
	if len(bands) == 0 {
		return []string{label + " has no bands"}
	}
	problems := checkIntervals(label, bandIntervals(bands))
	for _, b := range bands {
		if b.Amount.IsNegative() {
			problems = append(problems, fmt.Sprintf("%s has a negative amount in band starting at %s", label, b.Lower))
		}
	}
	return problems
}

// checkIntervals verifies a sorted interval list partitions [0, ∞):
// starts at zero, each upper equals the next lower, only the last interval
// is unbounded.
func checkIntervals(label string, ivs []interval) []string {
	var problems []string

	if !ivs[0].lower.IsZero() {
		problems = append(problems, fmt.Sprintf("%s does not start at 0 (starts at %s)", label, ivs[0].lower))
	}
	for i, iv := range ivs {
		last := i == len(ivs)-1
		if iv.upper == nil {
			if !last {
				problems = append(problems, fmt.Sprintf("%s has an unbounded band before the last position", label))
			}
			continue
		}
		if !iv.upper.GreaterThan(iv.lower) {
			problems = append(problems, fmt.Sprintf("%s has an empty band [%s, %s)", label, iv.lower, iv.upper))
		}
		if last {
			problems = append(problems, fmt.Sprintf("%s has a bounded top band (must extend to infinity)", label))
			continue
		}
		next := ivs[i+1].lower
		switch {
		case iv.upper.LessThan(next):
			problems = append(problems, fmt.Sprintf("%s has a gap between %s and %s", label, iv.upper, next))
		case iv.upper.GreaterThan(next):
			problems = append(problems, fmt.Sprintf("%s has overlapping bands at %s", label, next))
		}
	}

	return problems
}
