package keeper

import (
	"fmt"

	"github.com/curved-dex/curved/x/curve/types"
)

// GetConfig returns the singleton configuration. Its absence means the
// engine is in maintenance and trading is rejected.
func (k Keeper) GetConfig() (types.Config, error) {
	bz, err := k.db.Get(types.ConfigKey)
	if err != nil {
		return types.Config{}, fmt.Errorf("GetConfig: %w", err)
	}
	if bz == nil {
		return types.Config{}, types.ErrConfigMissing
	}

	var cfg types.Config
	if err := k.unmarshal(bz, &cfg); err != nil {
		return types.Config{}, fmt.Errorf("GetConfig: unmarshal: %w", err)
	}
	return cfg, nil
}

// SetConfig stores the singleton configuration, enabling trading.
func (k Keeper) SetConfig(cfg types.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	bz, err := k.marshal(cfg)
	if err != nil {
		return fmt.Errorf("SetConfig: marshal: %w", err)
	}
	if err := k.db.Set(types.ConfigKey, bz); err != nil {
		return fmt.Errorf("SetConfig: %w", err)
	}
	k.logger.Info("config updated", "status", cfg.Status, "fee", cfg.Fee)
	return nil
}

// ClearConfig removes the configuration record, putting the engine in
// maintenance.
func (k Keeper) ClearConfig() error {
	if err := k.db.Delete(types.ConfigKey); err != nil {
		return fmt.Errorf("ClearConfig: %w", err)
	}
	k.logger.Info("config cleared, engine in maintenance")
	return nil
}

// setStatus stamps the config status, leaving the fee untouched. A
// missing config stays missing: maintenance mode is never ended as a
// side effect.
func (k Keeper) setStatus(status string) {
	cfg, err := k.GetConfig()
	if err != nil {
		return
	}
	cfg.Status = status
	if err := k.SetConfig(cfg); err != nil {
		k.logger.Error("failed to stamp config status", "status", status, "err", err)
	}
}
