package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

var (
	balanceKeyPrefix = []byte{0x01}
	supplyKeyPrefix  = []byte{0x02}
)

// MockBankKeeper is a minimal fungible ledger backed by its own store
// key in the test multistore. Keeping balances in a KVStore rather
// than a Go map means a branched context covers them, so the handlers'
// write-on-success behavior is exercised for bank state too.
type MockBankKeeper struct {
	storeKey storetypes.StoreKey
}

// NewMockBankKeeper creates a mock bank keeper over the given store key
func NewMockBankKeeper(storeKey storetypes.StoreKey) *MockBankKeeper {
	return &MockBankKeeper{storeKey: storeKey}
}

func balanceKey(addr sdk.AccAddress, denom string) []byte {
	key := append(balanceKeyPrefix, address.MustLengthPrefix(addr)...)
	return append(key, []byte(denom)...)
}

func supplyKey(denom string) []byte {
	return append(supplyKeyPrefix, []byte(denom)...)
}

func (m *MockBankKeeper) getAmount(ctx context.Context, key []byte) sdkmath.Int {
	store := sdk.UnwrapSDKContext(ctx).KVStore(m.storeKey)
	bz := store.Get(key)
	if bz == nil {
		return sdkmath.ZeroInt()
	}

	var amount sdkmath.Int
	if err := amount.Unmarshal(bz); err != nil {
		panic(err)
	}
	return amount
}

func (m *MockBankKeeper) setAmount(ctx context.Context, key []byte, amount sdkmath.Int) {
	store := sdk.UnwrapSDKContext(ctx).KVStore(m.storeKey)
	if amount.IsZero() {
		store.Delete(key)
		return
	}

	bz, err := amount.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

// GetBalance implements the bank keeper interface
func (m *MockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.getAmount(ctx, balanceKey(addr, denom)))
}

// SpendableCoins implements the bank keeper interface. The mock has no
// vesting or locking, so everything an account holds is spendable.
func (m *MockBankKeeper) SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	store := sdk.UnwrapSDKContext(ctx).KVStore(m.storeKey)
	prefixKey := append(balanceKeyPrefix, address.MustLengthPrefix(addr)...)

	iterator := storetypes.KVStorePrefixIterator(store, prefixKey)
	defer iterator.Close()

	coins := sdk.NewCoins()
	for ; iterator.Valid(); iterator.Next() {
		denom := string(iterator.Key()[len(prefixKey):])

		var amount sdkmath.Int
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		coins = coins.Add(sdk.NewCoin(denom, amount))
	}
	return coins
}

// SendCoins implements the bank keeper interface
func (m *MockBankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	for _, coin := range amt {
		fromKey := balanceKey(fromAddr, coin.Denom)
		balance := m.getAmount(ctx, fromKey)
		if balance.LT(coin.Amount) {
			return fmt.Errorf("insufficient funds: %s has %s%s, wants to send %s", fromAddr, balance, coin.Denom, coin)
		}

		m.setAmount(ctx, fromKey, balance.Sub(coin.Amount))

		toKey := balanceKey(toAddr, coin.Denom)
		m.setAmount(ctx, toKey, m.getAmount(ctx, toKey).Add(coin.Amount))
	}
	return nil
}

// MintCoins implements the bank keeper interface
func (m *MockBankKeeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	moduleAddr := address.Module(moduleName)
	for _, coin := range amt {
		key := balanceKey(moduleAddr, coin.Denom)
		m.setAmount(ctx, key, m.getAmount(ctx, key).Add(coin.Amount))
		m.setAmount(ctx, supplyKey(coin.Denom), m.getAmount(ctx, supplyKey(coin.Denom)).Add(coin.Amount))
	}
	return nil
}

// SendCoinsFromModuleToAccount implements the bank keeper interface
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.SendCoins(ctx, address.Module(senderModule), recipientAddr, amt)
}

// GetSupply implements the bank keeper interface
func (m *MockBankKeeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.getAmount(ctx, supplyKey(denom)))
}

// FundAccount mints coins straight into an account, tracked in the
// total supply
func (m *MockBankKeeper) FundAccount(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) {
	for _, coin := range amt {
		key := balanceKey(addr, coin.Denom)
		m.setAmount(ctx, key, m.getAmount(ctx, key).Add(coin.Amount))
		m.setAmount(ctx, supplyKey(coin.Denom), m.getAmount(ctx, supplyKey(coin.Denom)).Add(coin.Amount))
	}
}
