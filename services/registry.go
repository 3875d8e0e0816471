package services

import "sort"

// Calculator names, also used as the last path segment of /calc/<name>.
const (
	CalcFinancialAid = "financial_aid"
	CalcBuckets      = "buckets"
	CalcSavings      = "savings"
	CalcCompare      = "compare"
)

// CalcFunc runs one calculator against a sanitized payload.
type CalcFunc func(Payload) any

// Registry binds calculator names to their functions. It is built once at
// startup and only read afterwards, so it is safe for concurrent use.
type Registry struct {
	calcs map[string]CalcFunc
}

func NewRegistry() *Registry {
	return &Registry{
		calcs: map[string]CalcFunc{
			CalcFinancialAid: func(p Payload) any { return CalculateFinancialAid(ParseFinancialAid(p)) },
			CalcBuckets:      func(p Payload) any { return CalculateBuckets(ParseBuckets(p)) },
			CalcSavings:      func(p Payload) any { return CalculateSavings(ParseSavings(p)) },
			CalcCompare:      func(p Payload) any { return CalculateCompare(ParseCompare(p)) },
		},
	}
}

func (r *Registry) Get(name string) (CalcFunc, bool) {
	fn, ok := r.calcs[name]
	return fn, ok
}

// Names returns the registered calculator names sorted alphabetically.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.calcs))
	for name := range r.calcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
