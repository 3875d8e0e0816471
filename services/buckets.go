package services

import "github.com/LovationAdmin/calc-api/models"

func ParseBuckets(p Payload) models.BucketInput {
	return models.BucketInput{MonthlyIncome: p.Number("monthlyIncome")}
}

// CalculateBuckets splits monthly income across the fixed category table.
// Negative income allocates nothing.
func CalculateBuckets(in models.BucketInput) models.BucketResult {
	buckets := make(map[string]float64, len(categoryRatios))
	for name, ratio := range categoryRatios {
		amount := round2(in.MonthlyIncome * ratio)
		if amount < 0 {
			amount = 0
		}
		buckets[name] = amount
	}

	return models.BucketResult{
		Income:  in.MonthlyIncome,
		Buckets: buckets,
	}
}
