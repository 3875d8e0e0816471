package services

import "sort"

// DefaultCategoryRatio applies to compare requests whose category is not in
// the table. Buckets never use it.
const DefaultCategoryRatio = 0.05

// categoryRatios is the share of monthly income recommended per category.
// Keys are matched case-sensitively.
var categoryRatios = map[string]float64{
	"Rent":          0.35,
	"Food":          0.10,
	"Transport":     0.08,
	"Utilities":     0.07,
	"Health":        0.05,
	"Savings":       0.15,
	"Entertainment": 0.08,
	"Other":         0.012,
}

// CategoryRatio returns the ratio for category and whether it was found.
func CategoryRatio(category string) (float64, bool) {
	r, ok := categoryRatios[category]
	return r, ok
}

// Categories returns the known category names in alphabetical order.
func Categories() []string {
	names := make([]string, 0, len(categoryRatios))
	for name := range categoryRatios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
