package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/curved-dex/curved/x/curve/types"
)

func TestSymbolCode_Valid(t *testing.T) {
	for _, code := range []string{"A", "USDT", "USDCUSD"} {
		_, ok := types.ParseSymbolCode(code)
		require.True(t, ok, code)
	}
	for _, code := range []string{"", "usdt", "USDT8", "TOOLONGXX", "US-DT"} {
		_, ok := types.ParseSymbolCode(code)
		require.False(t, ok, code)
	}
}

func TestParseAsset(t *testing.T) {
	a, ok := types.ParseAsset("1.0000 USDT")
	require.True(t, ok)
	require.Equal(t, math.NewInt(10000), a.Amount)
	require.Equal(t, types.SymbolCode("USDT"), a.Symbol.Code)
	require.Equal(t, uint8(4), a.Symbol.Precision)
	require.Equal(t, "1.0000 USDT", a.String())

	// precision comes from the fractional digit count
	b, ok := types.ParseAsset("5 EOS")
	require.True(t, ok)
	require.Equal(t, math.NewInt(5), b.Amount)
	require.Equal(t, uint8(0), b.Symbol.Precision)
	require.Equal(t, "5 EOS", b.String())

	c, ok := types.ParseAsset("-0.123456 USN")
	require.True(t, ok)
	require.Equal(t, math.NewInt(-123456), c.Amount)
	require.Equal(t, "-0.123456 USN", c.String())

	for _, bad := range []string{"", "USDT", "1.0000", "1.0000  USDT x", ".5 USDT", "1,0000 USDT", "1.0000 usdt"} {
		_, ok := types.ParseAsset(bad)
		require.False(t, ok, bad)
	}
}

func TestParseExtendedAsset(t *testing.T) {
	ea, ok := types.ParseExtendedAsset("1.0000 USDT@tethertether")
	require.True(t, ok)
	require.Equal(t, "tethertether", ea.Contract)
	require.Equal(t, math.NewInt(10000), ea.Quantity.Amount)
	require.Equal(t, "1.0000 USDT@tethertether", ea.String())

	_, ok = types.ParseExtendedAsset("1.0000 USDT")
	require.False(t, ok)
	_, ok = types.ParseExtendedAsset("1.0000 USDT@InvalidName")
	require.False(t, ok)
}

func TestValidAccountName(t *testing.T) {
	for _, name := range []string{"alice", "curve.sx", "eosio.token", "a1b2c3", "x"} {
		require.True(t, types.ValidAccountName(name), name)
	}
	for _, name := range []string{"", "UPPER", "toolongaccount", "dot.ending.", "has space", "zero0"} {
		require.False(t, types.ValidAccountName(name), name)
	}
}

func TestScaleAmount(t *testing.T) {
	// up: multiply
	require.Equal(t, math.NewInt(1_000_000),
		types.ScaleAmount(math.NewInt(10_000), 4, 6))
	// down: truncate toward zero
	require.Equal(t, math.NewInt(12),
		types.ScaleAmount(math.NewInt(129_999), 6, 2))
	require.Equal(t, math.NewInt(-12),
		types.ScaleAmount(math.NewInt(-129_999), 6, 2))
	// same precision is identity
	require.Equal(t, math.NewInt(42),
		types.ScaleAmount(math.NewInt(42), 4, 4))
	// up then down round-trips exactly
	up := types.ScaleAmount(math.NewInt(12345), 4, 10)
	require.Equal(t, math.NewInt(12345), types.ScaleAmount(up, 10, 4))
}
