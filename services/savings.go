package services

import (
	"math"

	"github.com/LovationAdmin/calc-api/models"
)

// iterativeMonthsLimit is the longest horizon projected month by month; longer
// ones use the equivalent annuity-due closed form.
const iterativeMonthsLimit = 1200

func ParseSavings(p Payload) models.SavingsInput {
	return models.SavingsInput{
		Goal:   p.Number("goal"),
		Months: p.Months("months"),
		APY:    p.Number("apy"),
	}
}

// CalculateSavings spreads the goal evenly over the horizon and projects the
// balance of depositing that amount every month, compounding monthly at
// apy/12 after each deposit.
func CalculateSavings(in models.SavingsInput) models.SavingsResult {
	months := in.Months
	if months < 1 {
		months = 1
	}

	deposit := in.Goal / float64(months)
	rate := (in.APY / 100.0) / 12.0

	return models.SavingsResult{
		Goal:           round2(in.Goal),
		Months:         months,
		APY:            round2(in.APY),
		MonthlyDeposit: round2(deposit),
		ProjectedTotal: round2(projectBalance(deposit, rate, months)),
	}
}

func projectBalance(deposit, rate float64, months int) float64 {
	if months > iterativeMonthsLimit {
		n := float64(months)
		if rate == 0 {
			return deposit * n
		}
		growth := 1 + rate
		return deposit * growth * (math.Pow(growth, n) - 1) / rate
	}

	balance := 0.0
	for i := 0; i < months; i++ {
		balance += deposit
		balance *= 1 + rate
	}
	return balance
}
