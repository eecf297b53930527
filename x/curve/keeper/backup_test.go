package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	keepertest "github.com/curved-dex/curved/testutil/keeper"
	"github.com/curved-dex/curved/x/curve/keeper"
	"github.com/curved-dex/curved/x/curve/types"
)

func TestBackup_EmptyRegistry(t *testing.T) {
	k, _ := keepertest.CurveKeeper(t)

	_, err := k.Backup()
	require.ErrorIs(t, err, types.ErrEmptyState)
}

func TestRestore_NoSnapshot(t *testing.T) {
	k, _ := keepertest.CurveKeeper(t)

	err := k.Restore()
	require.ErrorIs(t, err, types.ErrEmptyState)
}

func TestBackupRestore_RoundTrip(t *testing.T) {
	k, ledger := keepertest.CurveKeeper(t)
	seedStableWorld(t, k, ledger)

	before, err := k.GetAllPairs()
	require.NoError(t, err)

	meta, err := k.Backup()
	require.NoError(t, err)
	require.Equal(t, 2, meta.Pairs)
	require.NotEmpty(t, meta.Checksum)
	require.Equal(t, keepertest.TestClock, meta.Timestamp)

	cfg, err := k.GetConfig()
	require.NoError(t, err)
	require.Equal(t, types.StatusBackup, cfg.Status)

	// mutate the live registry after the snapshot
	_, err = k.ApplyTrade(ext(t, "100.0000 USDT@tethertether"), keeper.TradePath{"SXA"}, true)
	require.NoError(t, err)
	require.NoError(t, k.DeletePair("SXB"))

	require.NoError(t, k.Restore())

	after, err := k.GetAllPairs()
	require.NoError(t, err)
	require.Equal(t, before, after)

	cfg, err = k.GetConfig()
	require.NoError(t, err)
	require.Equal(t, types.StatusCopy, cfg.Status)

	// the rebuilt reserve index resolves again
	id, err := k.FindPairID("USN", "DAI")
	require.NoError(t, err)
	require.Equal(t, types.SymbolCode("SXB"), id)
}

func TestBackup_ReplacesPreviousSnapshot(t *testing.T) {
	k, ledger := keepertest.CurveKeeper(t)
	seedStableWorld(t, k, ledger)

	_, err := k.Backup()
	require.NoError(t, err)

	require.NoError(t, k.DeletePair("SXB"))
	meta, err := k.Backup()
	require.NoError(t, err)
	require.Equal(t, 1, meta.Pairs)

	require.NoError(t, k.Restore())
	pairs, err := k.GetAllPairs()
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	require.Equal(t, types.SymbolCode("SXA"), pairs[0].ID)
}

func TestReset_Tables(t *testing.T) {
	k, ledger := keepertest.CurveKeeper(t)
	seedStableWorld(t, k, ledger)
	_, err := k.Backup()
	require.NoError(t, err)

	require.NoError(t, k.Reset("pairs"))
	pairs, err := k.GetAllPairs()
	require.NoError(t, err)
	require.Empty(t, pairs)

	require.NoError(t, k.Reset("backup"))
	require.ErrorIs(t, k.Restore(), types.ErrEmptyState)

	require.NoError(t, k.Reset("config"))
	_, err = k.GetConfig()
	require.ErrorIs(t, err, types.ErrConfigMissing)

	require.Error(t, k.Reset("bogus"))
}
