package types

// Event types emitted by the swap module
const (
	EventTypeCreated          = "swap_created"
	EventTypeLiquidityAdded   = "liquidity_added"
	EventTypeLiquidityRemoved = "liquidity_removed"
	EventTypeTokenBought      = "token_bought"
	EventTypeTokenSold        = "token_sold"
	EventTypeRewardClaimed    = "reward_claimed"
)

// Event attribute keys
const (
	AttributeKeyTokenId   = "token_id"
	AttributeKeyLpTokenId = "lp_token_id"
	AttributeKeyAccount   = "account"
	AttributeKeyLiquidity = "liquidity"
	AttributeKeyCurrency  = "currency"
	AttributeKeyTokens    = "tokens"
	AttributeKeyReward    = "reward"
)
