package domain

import "github.com/shopspring/decimal"

// DefaultPlatformFeeRate is the share of the gross lesson price retained by
// the platform.
var DefaultPlatformFeeRate = decimal.NewFromFloat(0.15)

// FeeSplit divides a gross lesson price into the platform fee and the
// instructor payout. All amounts are integer minor units (centavos).
type FeeSplit struct {
	GrossAmount         int64 `json:"gross_amount"`
	PlatformFeeAmount   int64 `json:"platform_fee_amount"`
	InstructorNetAmount int64 `json:"instructor_net_amount"`
}

// ComputeSplit applies feeRate to gross with a single half-up rounding on the
// fee; the net is the remainder, so fee+net always equals gross exactly. The
// same function backs both the payout preview and the actual charge.
func ComputeSplit(grossMinorUnits int64, feeRate decimal.Decimal) (FeeSplit, error) {
	if grossMinorUnits <= 0 {
		return FeeSplit{}, ErrInvalidAmount
	}

	fee := decimal.NewFromInt(grossMinorUnits).Mul(feeRate).Round(0).IntPart()

	return FeeSplit{
		GrossAmount:         grossMinorUnits,
		PlatformFeeAmount:   fee,
		InstructorNetAmount: grossMinorUnits - fee,
	}, nil
}
