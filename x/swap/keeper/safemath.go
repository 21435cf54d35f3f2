package keeper

import (
	"math/big"

	sdkmath "cosmossdk.io/math"

	"github.com/parami-network/chain/x/swap/types"
)

// Overflow-safe arithmetic helpers for the swap engine. Every
// multiply-before-divide sequence runs on big.Int intermediates, so the
// product may exceed the 256-bit balance range as long as the final
// quotient fits back into it.

// maxIntValue is the exclusive upper bound of a representable balance
var maxIntValue = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// toInt converts a big.Int result back to a balance, failing with
// ErrOverflow when the value does not fit
func toInt(v *big.Int) (sdkmath.Int, error) {
	if v.Sign() < 0 || v.Cmp(maxIntValue) >= 0 {
		return sdkmath.Int{}, types.ErrOverflow.Wrapf("value %s outside balance range", v.String())
	}
	return sdkmath.NewIntFromBigInt(v), nil
}

// SafeMulDiv computes floor(a * b / c) with a wide intermediate.
// Division truncates toward zero; all operands are non-negative, so the
// truncation is a floor and rounding loss stays with the pool.
func SafeMulDiv(a, b, c sdkmath.Int) (sdkmath.Int, error) {
	if c.IsZero() {
		return sdkmath.Int{}, types.ErrOverflow.Wrap("division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := intermediate.Quo(intermediate, c.BigInt())
	return toInt(result)
}

// SafeAdd adds two balances with range checking
func SafeAdd(a, b sdkmath.Int) (sdkmath.Int, error) {
	return toInt(new(big.Int).Add(a.BigInt(), b.BigInt()))
}

// SafeSub subtracts b from a, failing on underflow
func SafeSub(a, b sdkmath.Int) (sdkmath.Int, error) {
	if a.LT(b) {
		return sdkmath.Int{}, types.ErrOverflow.Wrapf("cannot subtract %s from %s", b, a)
	}
	return sdkmath.NewIntFromBigInt(new(big.Int).Sub(a.BigInt(), b.BigInt())), nil
}
