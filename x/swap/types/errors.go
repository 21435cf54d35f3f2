package types

import (
	"cosmossdk.io/errors"
)

// Swap module sentinel errors
var (
	ErrDeadline              = errors.Register(ModuleName, 2, "deadline has passed")
	ErrExists                = errors.Register(ModuleName, 3, "swap pair already exists")
	ErrNotExists             = errors.Register(ModuleName, 4, "swap pair or position not found")
	ErrNoLiquidity           = errors.Register(ModuleName, 5, "pool has no liquidity")
	ErrZeroCurrency          = errors.Register(ModuleName, 6, "currency amount cannot be zero")
	ErrZeroTokens            = errors.Register(ModuleName, 7, "token amount cannot be zero")
	ErrZeroLiquidity         = errors.Register(ModuleName, 8, "liquidity amount cannot be zero")
	ErrTooExpensiveCurrency  = errors.Register(ModuleName, 9, "required currency exceeds stated maximum")
	ErrTooExpensiveTokens    = errors.Register(ModuleName, 10, "required tokens exceed stated maximum")
	ErrTooLowCurrency        = errors.Register(ModuleName, 11, "currency output below stated minimum")
	ErrTooLowTokens          = errors.Register(ModuleName, 12, "token output below stated minimum")
	ErrTooLowLiquidity       = errors.Register(ModuleName, 13, "minted liquidity below stated minimum")
	ErrInsufficientCurrency  = errors.Register(ModuleName, 14, "insufficient currency balance")
	ErrInsufficientTokens    = errors.Register(ModuleName, 15, "insufficient token balance")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 16, "insufficient liquidity in pool")
	ErrOverflow              = errors.Register(ModuleName, 17, "arithmetic overflow")
	ErrInvalidTokenId        = errors.Register(ModuleName, 18, "invalid token id")
	ErrInvalidAddress        = errors.Register(ModuleName, 19, "invalid address")
	ErrInvalidAmount         = errors.Register(ModuleName, 20, "invalid amount")
	ErrInvalidPoolState      = errors.Register(ModuleName, 21, "invalid pool state")
	ErrUnauthorized          = errors.Register(ModuleName, 22, "unauthorized")
)
