package models

// ============================================================================
// FINANCIAL AID
// ============================================================================

type FinancialAidInput struct {
	CostOfAttendance float64 `json:"costOfAttendance"`
	Grants           float64 `json:"grants"`
	Scholarships     float64 `json:"scholarships"`
	WorkStudy        float64 `json:"workStudy"`
	EFC              float64 `json:"efc"`
}

type SuggestedLoans struct {
	Subsidized   float64 `json:"subsidized"`
	Unsubsidized float64 `json:"unsubsidized"`
}

type FinancialAidResult struct {
	CostOfAttendance float64        `json:"costOfAttendance"`
	EFC              float64        `json:"efc"`
	GiftAid          float64        `json:"giftAid"`
	RemainingNeed    float64        `json:"remainingNeed"`
	SuggestedLoans   SuggestedLoans `json:"suggestedLoans"`
	WorkStudy        float64        `json:"workStudy"`
}

// ============================================================================
// BUDGET BUCKETS
// ============================================================================

type BucketInput struct {
	MonthlyIncome float64 `json:"monthlyIncome"`
}

type BucketResult struct {
	Income  float64            `json:"income"`
	Buckets map[string]float64 `json:"buckets"`
}

// ============================================================================
// SAVINGS
// ============================================================================

type SavingsInput struct {
	Goal   float64 `json:"goal"`
	Months int     `json:"months"`
	APY    float64 `json:"apy"`
}

type SavingsResult struct {
	Goal           float64 `json:"goal"`
	Months         int     `json:"months"`
	APY            float64 `json:"apy"`
	MonthlyDeposit float64 `json:"monthlyDeposit"`
	ProjectedTotal float64 `json:"projectedTotal"`
}

// ============================================================================
// SPEND VS GOAL
// ============================================================================

// SpendItem is a single purchase counted against a category goal
type SpendItem struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

type CompareInput struct {
	MonthlyIncome float64     `json:"monthlyIncome"`
	Category      string      `json:"category"`
	Items         []SpendItem `json:"items"`
}

const (
	StatusOK         = "ok"
	StatusOverBudget = "over budget"
)

type CompareResult struct {
	Category  string  `json:"category"`
	Goal      float64 `json:"goal"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Status    string  `json:"status"`
}
