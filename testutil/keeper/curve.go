package keeper

import (
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"github.com/curved-dex/curved/x/curve/keeper"
	"github.com/curved-dex/curved/x/curve/types"
)

// Self is the engine's own account name in tests.
const Self = "curve.sx"

// TestClock is the fixed time every keeper operation observes in tests.
var TestClock = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// Ledger is an in-memory stand-in for the embedding chain: a set of
// known accounts, token supplies per (contract, symbol code), and a
// record of every transfer the keeper settles.
type Ledger struct {
	Accounts map[string]bool
	Supplies map[string]types.Asset
	Sent     []RecordedTransfer
}

// RecordedTransfer is one settled outbound transfer.
type RecordedTransfer struct {
	From, To string
	Quantity types.ExtendedAsset
	Memo     string
}

// NewLedger returns a ledger that already knows the engine account.
func NewLedger() *Ledger {
	return &Ledger{
		Accounts: map[string]bool{Self: true},
		Supplies: make(map[string]types.Asset),
	}
}

// AddAccount registers an account name.
func (l *Ledger) AddAccount(name string) { l.Accounts[name] = true }

// AddSupply registers a token supply under its issuing contract and
// marks the contract itself as a live account.
func (l *Ledger) AddSupply(contract string, supply types.Asset) {
	l.Accounts[contract] = true
	l.Supplies[supplyKey(contract, supply.Symbol.Code)] = supply
}

func (l *Ledger) HasAccount(name string) bool { return l.Accounts[name] }

func (l *Ledger) GetSupply(contract string, code types.SymbolCode) (types.Asset, error) {
	supply, ok := l.Supplies[supplyKey(contract, code)]
	if !ok {
		return types.Asset{}, fmt.Errorf("no supply for %s on %s", code, contract)
	}
	return supply, nil
}

func (l *Ledger) Transfer(from, to string, quantity types.ExtendedAsset, memo string) error {
	l.Sent = append(l.Sent, RecordedTransfer{From: from, To: to, Quantity: quantity, Memo: memo})
	return nil
}

func supplyKey(contract string, code types.SymbolCode) string {
	return contract + "/" + string(code)
}

// CurveKeeper creates a test keeper backed by an in-memory database,
// a fixed clock and a fresh fake ledger, with the default config set.
func CurveKeeper(t testing.TB) (*keeper.Keeper, *Ledger) {
	t.Helper()

	ledger := NewLedger()
	k := keeper.NewKeeper(
		dbm.NewMemDB(),
		log.NewNopLogger(),
		ledger,
		ledger,
		Self,
		keeper.WithClock(func() time.Time { return TestClock }),
	)
	require.NoError(t, k.SetConfig(types.DefaultConfig()))
	return k, ledger
}
