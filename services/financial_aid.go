package services

import (
	"math"

	"github.com/LovationAdmin/calc-api/models"
)

// SubsidizedLoanCap is the most of the remaining need that can be covered by a
// subsidized loan; the rest is suggested as unsubsidized.
const SubsidizedLoanCap = 3500.0

func ParseFinancialAid(p Payload) models.FinancialAidInput {
	return models.FinancialAidInput{
		CostOfAttendance: p.Number("costOfAttendance"),
		Grants:           p.Number("grants"),
		Scholarships:     p.Number("scholarships"),
		WorkStudy:        p.Number("workStudy"),
		EFC:              p.Number("efc"),
	}
}

// CalculateFinancialAid estimates the remaining need after gift aid, work-study
// and EFC, and splits it into subsidized and unsubsidized loans.
func CalculateFinancialAid(in models.FinancialAidInput) models.FinancialAidResult {
	giftAid := in.Grants + in.Scholarships
	remainingNeed := math.Max(in.CostOfAttendance-giftAid-in.WorkStudy-in.EFC, 0)
	subsidized := math.Min(remainingNeed, SubsidizedLoanCap)
	unsubsidized := math.Max(remainingNeed-subsidized, 0)

	return models.FinancialAidResult{
		CostOfAttendance: in.CostOfAttendance,
		EFC:              in.EFC,
		GiftAid:          giftAid,
		RemainingNeed:    remainingNeed,
		SuggestedLoans: models.SuggestedLoans{
			Subsidized:   subsidized,
			Unsubsidized: unsubsidized,
		},
		WorkStudy: in.WorkStudy,
	}
}
