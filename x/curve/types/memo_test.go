package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/curved-dex/curved/x/curve/types"
)

func TestParseMemo_SymbolOnly(t *testing.T) {
	intent, err := types.ParseMemo("USDT")
	require.NoError(t, err)
	require.Equal(t, types.SymbolCode("USDT"), intent.MinOut.Quantity.Symbol.Code)
	require.True(t, intent.MinOut.Quantity.Amount.IsZero())
	require.Empty(t, intent.MinOut.Contract)
	require.Empty(t, intent.Receiver)
}

func TestParseMemo_MinimumAsset(t *testing.T) {
	intent, err := types.ParseMemo("1.0000 USDT")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10000), intent.MinOut.Quantity.Amount)
	require.Equal(t, uint8(4), intent.MinOut.Quantity.Symbol.Precision)
	require.Empty(t, intent.MinOut.Contract)
}

func TestParseMemo_QualifiedMinimum(t *testing.T) {
	intent, err := types.ParseMemo("1.0000 USDT@tethertether")
	require.NoError(t, err)
	require.Equal(t, "tethertether", intent.MinOut.Contract)
	require.Equal(t, math.NewInt(10000), intent.MinOut.Quantity.Amount)
}

func TestParseMemo_WithReceiver(t *testing.T) {
	intent, err := types.ParseMemo("USDT,alice")
	require.NoError(t, err)
	require.Equal(t, "alice", intent.Receiver)

	intent, err = types.ParseMemo("1.0000 USDT, bob")
	require.NoError(t, err)
	require.Equal(t, "bob", intent.Receiver)
	require.Equal(t, math.NewInt(10000), intent.MinOut.Quantity.Amount)
}

func TestParseMemo_Rejections(t *testing.T) {
	cases := []string{
		"",                  // no target
		"USDT,alice,extra",  // three fields
		"USDT,BADNAME",      // receiver shape
		"not an asset",      // garbage
		"1.0000",            // number without symbol
		"usdt",              // lowercase symbol
	}
	for _, memo := range cases {
		_, err := types.ParseMemo(memo)
		require.Error(t, err, memo)
		require.True(t, types.ErrMalformedMemo.Is(err), memo)
	}
}
