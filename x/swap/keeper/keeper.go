package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/parami-network/chain/x/swap/types"
)

// Keeper of the swap store
type Keeper struct {
	storeKey     storetypes.StoreKey
	cdc          *codec.LegacyAmino
	bankKeeper   types.BankKeeper
	farmingCurve types.FarmingCurve
	metrics      *SwapMetrics
	authority    string
}

// NewKeeper creates a new swap Keeper instance
func NewKeeper(
	cdc *codec.LegacyAmino,
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	farmingCurve types.FarmingCurve,
	authority string,
) Keeper {
	if farmingCurve == nil {
		farmingCurve = types.ZeroFarmingCurve{}
	}
	return Keeper{
		storeKey:     key,
		cdc:          cdc,
		bankKeeper:   bankKeeper,
		farmingCurve: farmingCurve,
		metrics:      NewSwapMetrics(),
		authority:    authority,
	}
}

// GetAuthority returns the module's authority address
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// getStore returns the KVStore for the swap module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}
