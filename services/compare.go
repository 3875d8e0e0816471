package services

import "github.com/LovationAdmin/calc-api/models"

// DefaultCompareCategory is used when the request names no category at all.
const DefaultCompareCategory = "Food"

func ParseCompare(p Payload) models.CompareInput {
	return models.CompareInput{
		MonthlyIncome: p.Number("monthlyIncome"),
		Category:      p.String("category", DefaultCompareCategory),
		Items:         p.Items("items"),
	}
}

// CalculateCompare checks what was spent in a category against the share of
// income the category table recommends for it.
func CalculateCompare(in models.CompareInput) models.CompareResult {
	ratio, ok := CategoryRatio(in.Category)
	if !ok {
		ratio = DefaultCategoryRatio
	}

	goal := round2(in.MonthlyIncome * ratio)
	if goal < 0 {
		goal = 0
	}

	spent := 0.0
	for _, item := range in.Items {
		spent += item.Cost
	}
	spent = round2(spent)

	// remaining always equals the returned goal minus the returned spent
	remaining := round2(goal - spent)

	status := models.StatusOK
	if remaining < 0 {
		status = models.StatusOverBudget
	}

	return models.CompareResult{
		Category:  in.Category,
		Goal:      goal,
		Spent:     spent,
		Remaining: remaining,
		Status:    status,
	}
}
