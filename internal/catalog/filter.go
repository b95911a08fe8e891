// Package catalog derives the visible subset of the package listing page
// from the user's filter panel. Filtering is pure and synchronous: the full
// fetched list stays in memory and the subset is recomputed on every
// criteria change, preserving the original order.
package catalog

import "holidays/internal/domain/models"

type FlightOption string

const (
	FlightAny     FlightOption = ""
	FlightWith    FlightOption = "With Flight"
	FlightWithout FlightOption = "Without Flight"
)

// MaxBudget is the upper bound of the budget slider.
const MaxBudget int64 = 200000

// Criteria is the active set of filter constraints. Zero values mean "no
// constraint": empty strings, Nights 0, Flight FlightAny and BudgetMax 0.
type Criteria struct {
	Category     string
	Destination  string
	Nights       int
	StartingCity string
	BudgetMax    int64
	Flight       FlightOption
}

// ClampBudget keeps BudgetMax inside the slider range.
func (c *Criteria) ClampBudget() {
	if c.BudgetMax < 0 {
		c.BudgetMax = 0
	}
	if c.BudgetMax > MaxBudget {
		c.BudgetMax = MaxBudget
	}
}

func (c Criteria) empty() bool {
	return c.Category == "" &&
		c.Destination == "" &&
		c.Nights == 0 &&
		c.StartingCity == "" &&
		c.BudgetMax == 0 &&
		c.Flight == FlightAny
}

// Visible returns the listings matching every active predicate, in their
// original order. With no active predicate the input is returned unchanged.
func Visible(listings []models.HolidayPackage, c Criteria) []models.HolidayPackage {
	if c.empty() {
		return listings
	}

	out := make([]models.HolidayPackage, 0, len(listings))
	for _, pkg := range listings {
		if Matches(pkg, c) {
			out = append(out, pkg)
		}
	}
	return out
}

// Matches reports whether a single listing passes all active predicates.
// Missing listing fields fail the corresponding non-empty predicate; they
// never panic.
func Matches(pkg models.HolidayPackage, c Criteria) bool {
	if c.Category != "" && pkg.Category != c.Category {
		return false
	}

	if c.Destination != "" && !hasDestination(pkg.Destinations, c.Destination) {
		return false
	}

	switch c.Flight {
	case FlightWith:
		if !pkg.WithFlight {
			return false
		}
	case FlightWithout:
		if pkg.WithFlight {
			return false
		}
	}

	if c.Nights != 0 && pkg.Nights != c.Nights {
		return false
	}

	if c.StartingCity != "" && pkg.StartingCity != c.StartingCity {
		return false
	}

	if c.BudgetMax != 0 {
		price := pkg.OfferPrice
		if price < 0 {
			price = 0
		}
		if price > c.BudgetMax {
			return false
		}
	}

	return true
}

func hasDestination(dests []models.PackageDestination, name string) bool {
	for _, d := range dests {
		if d.Name == name {
			return true
		}
	}
	return false
}
