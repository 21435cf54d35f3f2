package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/parami-network/chain/x/swap/keeper"
	"github.com/parami-network/chain/x/swap/types"
)

// SwapKeeper creates a test keeper backed by an in-memory multistore
// and the mock bank ledger, with the zero farming curve
func SwapKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	return SwapKeeperWithCurve(t, nil)
}

// SwapKeeperWithCurve creates a test keeper with a specific farming
// curve
func SwapKeeperWithCurve(t testing.TB, curve types.FarmingCurve) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey("mockbank")

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	types.RegisterLegacyAminoCodec(cdc)

	bankKeeper := NewMockBankKeeper(bankStoreKey)
	k := keeper.NewKeeper(cdc, storeKey, bankKeeper, curve, "")

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1}, false, log.NewNopLogger())
	k.InitGenesis(ctx, *types.DefaultGenesis())

	return k, bankKeeper, ctx
}
