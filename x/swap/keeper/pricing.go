package keeper

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parami-network/chain/x/swap/types"
)

// The pricing engine. Trades settle against the constant-product curve
// reserve_quote * reserve_token = k, with the fee taken out of the
// input side. Trades larger than a tenth of the moving reserve are
// priced in 10% chunks so that large orders walk the curve instead of
// settling at a single tangent price.
//
// Buy-side quotes round up, sell-side quotes floor. The rounding loss
// always lands in the pool, so k never decreases across a trade.

// calculatePriceBuy returns the input amount required to withdraw
// outputAmount from the output reserve. Caller guarantees
// outputAmount < outputReserve and positive reserves.
func calculatePriceBuy(outputAmount, inputReserve, outputReserve, feeNum, feeDen *big.Int) *big.Int {
	chunk := new(big.Int).Quo(outputReserve, big.NewInt(10))

	// A zero chunk means the reserve is below 10 units; the closed
	// form is exact enough at that size and chunking cannot make
	// progress.
	if chunk.Sign() > 0 && outputAmount.Cmp(chunk) > 0 {
		price := calculatePriceBuy(chunk, inputReserve, outputReserve, feeNum, feeDen)

		rest := calculatePriceBuy(
			new(big.Int).Sub(outputAmount, chunk),
			new(big.Int).Add(inputReserve, price),
			new(big.Int).Sub(outputReserve, chunk),
			feeNum, feeDen,
		)
		return price.Add(price, rest)
	}

	numerator := new(big.Int).Mul(inputReserve, outputAmount)
	numerator.Mul(numerator, feeDen)
	denominator := new(big.Int).Sub(outputReserve, outputAmount)
	denominator.Mul(denominator, feeNum)

	result := numerator.Quo(numerator, denominator)
	return result.Add(result, big.NewInt(1))
}

// calculatePriceSell returns the output amount released for depositing
// inputAmount into the input reserve.
func calculatePriceSell(inputAmount, inputReserve, outputReserve, feeNum, feeDen *big.Int) *big.Int {
	chunk := new(big.Int).Quo(inputReserve, big.NewInt(10))

	if chunk.Sign() > 0 && inputAmount.Cmp(chunk) > 0 {
		price := calculatePriceSell(chunk, inputReserve, outputReserve, feeNum, feeDen)

		rest := calculatePriceSell(
			new(big.Int).Sub(inputAmount, chunk),
			new(big.Int).Add(inputReserve, chunk),
			new(big.Int).Sub(outputReserve, price),
			feeNum, feeDen,
		)
		return price.Add(price, rest)
	}

	inputWithFee := new(big.Int).Mul(inputAmount, feeNum)
	numerator := new(big.Int).Mul(inputWithFee, outputReserve)
	denominator := new(big.Int).Mul(inputReserve, feeDen)
	denominator.Add(denominator, inputWithFee)

	return numerator.Quo(numerator, denominator)
}

// PriceBuy quotes the input needed to take outputAmount out of the
// output reserve. Fails when either reserve is empty or the pool
// cannot cover the withdrawal.
func (k Keeper) PriceBuy(ctx sdk.Context, outputAmount, inputReserve, outputReserve sdkmath.Int) (sdkmath.Int, error) {
	if !outputAmount.IsPositive() {
		return sdkmath.Int{}, types.ErrZeroTokens.Wrap("output amount must be positive")
	}
	if !inputReserve.IsPositive() || !outputReserve.IsPositive() {
		return sdkmath.Int{}, types.ErrNoLiquidity.Wrap("empty reserve")
	}
	if outputAmount.GTE(outputReserve) {
		return sdkmath.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"cannot withdraw %s of a reserve of %s", outputAmount, outputReserve)
	}

	params := k.GetParams(ctx)
	price := calculatePriceBuy(
		outputAmount.BigInt(), inputReserve.BigInt(), outputReserve.BigInt(),
		params.FeeNumerator.BigInt(), params.FeeDenominator.BigInt(),
	)
	return toInt(price)
}

// PriceSell quotes the output released by depositing inputAmount into
// the input reserve. The output quote is always strictly less than the
// output reserve.
func (k Keeper) PriceSell(ctx sdk.Context, inputAmount, inputReserve, outputReserve sdkmath.Int) (sdkmath.Int, error) {
	if !inputAmount.IsPositive() {
		return sdkmath.Int{}, types.ErrZeroTokens.Wrap("input amount must be positive")
	}
	if !inputReserve.IsPositive() || !outputReserve.IsPositive() {
		return sdkmath.Int{}, types.ErrNoLiquidity.Wrap("empty reserve")
	}

	params := k.GetParams(ctx)
	price := calculatePriceSell(
		inputAmount.BigInt(), inputReserve.BigInt(), outputReserve.BigInt(),
		params.FeeNumerator.BigInt(), params.FeeDenominator.BigInt(),
	)

	out, err := toInt(price)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if out.GTE(outputReserve) {
		return sdkmath.Int{}, types.ErrInsufficientLiquidity.Wrapf(
			"quote %s would drain a reserve of %s", out, outputReserve)
	}
	return out, nil
}

// CalculateLiquidity computes the token amount and liquidity shares
// for depositing currency into a pool. The first deposit sets the
// initial price: the depositor's maxTokens is taken at face value and
// shares are issued 1:1 against the currency leg. Later deposits must
// match the live reserve ratio, with both quotients floored.
func (k Keeper) CalculateLiquidity(ctx sdk.Context, tokenId string, currency, maxTokens sdkmath.Int) (tokens, shares sdkmath.Int, err error) {
	pool, err := k.GetPool(ctx, tokenId)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}

	if pool.Liquidity.IsZero() {
		return maxTokens, currency, nil
	}

	quote, token := k.PoolReserves(ctx, tokenId)
	if !quote.Amount.IsPositive() {
		return sdkmath.Int{}, sdkmath.Int{}, types.ErrInvalidPoolState.Wrapf(
			"pool %s has outstanding shares but no quote reserve", tokenId)
	}

	tokens, err = SafeMulDiv(currency, token.Amount, quote.Amount)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}
	shares, err = SafeMulDiv(pool.Liquidity, currency, quote.Amount)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}
	return tokens, shares, nil
}

// CalculateSolidness computes the proportional redemption value of a
// share count against the pool's live reserves
func (k Keeper) CalculateSolidness(ctx sdk.Context, tokenId string, shares sdkmath.Int) (tokens, currency sdkmath.Int, err error) {
	pool, err := k.GetPool(ctx, tokenId)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}
	if !pool.Liquidity.IsPositive() {
		return sdkmath.Int{}, sdkmath.Int{}, types.ErrNoLiquidity.Wrapf("pool %s has no outstanding shares", tokenId)
	}

	quote, token := k.PoolReserves(ctx, tokenId)

	tokens, err = SafeMulDiv(shares, token.Amount, pool.Liquidity)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}
	currency, err = SafeMulDiv(shares, quote.Amount, pool.Liquidity)
	if err != nil {
		return sdkmath.Int{}, sdkmath.Int{}, err
	}
	return tokens, currency, nil
}
