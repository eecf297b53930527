package keeper

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/curved-dex/curved/x/curve/types"
)

// BackupMeta describes the registry snapshot held in the backup table.
type BackupMeta struct {
	Timestamp time.Time `json:"timestamp"`
	Pairs     int       `json:"pairs"`
	Checksum  string    `json:"checksum"`
}

// Backup snapshots every registered pair into the backup table,
// replacing any previous snapshot, and stamps the config status. The
// snapshot carries a checksum so a later restore can detect corruption.
func (k Keeper) Backup() (BackupMeta, error) {
	pairs, err := k.GetAllPairs()
	if err != nil {
		return BackupMeta{}, err
	}
	if len(pairs) == 0 {
		return BackupMeta{}, types.ErrEmptyState.Wrap("pairs is empty")
	}

	if err := k.clearPrefix(types.BackupKeyPrefix); err != nil {
		return BackupMeta{}, err
	}

	sum := sha256.New()
	batch := k.db.NewBatch()
	defer batch.Close()
	for _, pair := range pairs {
		bz, err := k.marshal(pair)
		if err != nil {
			return BackupMeta{}, fmt.Errorf("Backup: marshal pair %s: %w", pair.ID, err)
		}
		sum.Write(bz)
		if err := batch.Set(types.BackupKey(pair.ID), bz); err != nil {
			return BackupMeta{}, fmt.Errorf("Backup: %w", err)
		}
	}

	meta := BackupMeta{
		Timestamp: k.now(),
		Pairs:     len(pairs),
		Checksum:  hex.EncodeToString(sum.Sum(nil)),
	}
	metaBz, err := k.marshal(meta)
	if err != nil {
		return BackupMeta{}, fmt.Errorf("Backup: marshal meta: %w", err)
	}
	if err := batch.Set(types.BackupMetaKey, metaBz); err != nil {
		return BackupMeta{}, fmt.Errorf("Backup: %w", err)
	}
	if err := batch.WriteSync(); err != nil {
		return BackupMeta{}, fmt.Errorf("Backup: commit: %w", err)
	}

	k.setStatus(types.StatusBackup)
	k.metrics.BackupsTotal.Inc()
	k.logger.Info("registry backed up",
		"event", types.EventTypeBackup,
		types.AttributeKeyPairs, meta.Pairs,
		"checksum", meta.Checksum,
	)
	return meta, nil
}

// Restore replaces the live pair registry with the snapshot in the
// backup table, verifying its checksum first, and stamps the config
// status. The reserve index is rebuilt as pairs are written back.
func (k Keeper) Restore() error {
	meta, err := k.GetBackupMeta()
	if err != nil {
		return err
	}

	var (
		pairs []types.Pair
		sum   = sha256.New()
	)
	err = k.iterate(types.BackupKeyPrefix, func(_, value []byte) bool {
		sum.Write(value)
		var pair types.Pair
		if err := k.unmarshal(value, &pair); err == nil {
			pairs = append(pairs, pair)
		}
		return false
	})
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return types.ErrEmptyState.Wrap("backup is empty")
	}
	if got := hex.EncodeToString(sum.Sum(nil)); got != meta.Checksum || len(pairs) != meta.Pairs {
		return types.ErrChecksumMismatch.Wrapf("snapshot checksum %s does not match recorded %s", got, meta.Checksum)
	}

	if err := k.clearPrefix(types.PairKeyPrefix); err != nil {
		return err
	}
	if err := k.clearPrefix(types.PairByReservesKeyPrefix); err != nil {
		return err
	}
	for i := range pairs {
		if err := k.SetPair(&pairs[i]); err != nil {
			return err
		}
	}

	k.setStatus(types.StatusCopy)
	k.metrics.RestoresTotal.Inc()
	k.metrics.PairsTotal.Set(float64(len(pairs)))
	k.logger.Info("registry restored",
		"event", types.EventTypeRestore,
		types.AttributeKeyPairs, len(pairs),
	)
	return nil
}

// GetBackupMeta returns the recorded snapshot metadata.
func (k Keeper) GetBackupMeta() (BackupMeta, error) {
	bz, err := k.db.Get(types.BackupMetaKey)
	if err != nil {
		return BackupMeta{}, fmt.Errorf("GetBackupMeta: %w", err)
	}
	if bz == nil {
		return BackupMeta{}, types.ErrEmptyState.Wrap("backup is empty")
	}
	var meta BackupMeta
	if err := k.unmarshal(bz, &meta); err != nil {
		return BackupMeta{}, fmt.Errorf("GetBackupMeta: %w", err)
	}
	return meta, nil
}
