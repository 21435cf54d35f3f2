package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params holds the on-chain configuration of the swap module.
type Params struct {
	// NativeDenom is the quote-currency denom every pool trades against
	NativeDenom string `json:"native_denom"`

	// FeeNumerator and FeeDenominator define the trading fee spread.
	// The effective input is scaled by numerator/denominator, so
	// 997/1000 charges 0.3%. Setting the numerator equal to the
	// denominator disables the fee entirely.
	FeeNumerator   math.Int `json:"fee_numerator"`
	FeeDenominator math.Int `json:"fee_denominator"`

	// ExistentialDeposit is the minimum native balance a keep-alive
	// transfer must leave in the sending account
	ExistentialDeposit math.Int `json:"existential_deposit"`
}

// DefaultParams returns the production parameter set: 0.3% fee against
// the native AD3 denom.
func DefaultParams() Params {
	return Params{
		NativeDenom:        "uad3",
		FeeNumerator:       math.NewInt(997),
		FeeDenominator:     math.NewInt(1000),
		ExistentialDeposit: math.NewInt(1),
	}
}

// Validate checks parameter sanity
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.NativeDenom); err != nil {
		return ErrInvalidTokenId.Wrapf("invalid native denom: %v", err)
	}
	if p.FeeDenominator.IsNil() || !p.FeeDenominator.IsPositive() {
		return ErrInvalidAmount.Wrap("fee denominator must be positive")
	}
	if p.FeeNumerator.IsNil() || !p.FeeNumerator.IsPositive() {
		return ErrInvalidAmount.Wrap("fee numerator must be positive")
	}
	if p.FeeNumerator.GT(p.FeeDenominator) {
		return ErrInvalidAmount.Wrapf(
			"fee numerator %s exceeds denominator %s",
			p.FeeNumerator, p.FeeDenominator,
		)
	}
	if p.ExistentialDeposit.IsNil() || p.ExistentialDeposit.IsNegative() {
		return ErrInvalidAmount.Wrap("existential deposit cannot be negative")
	}
	return nil
}
