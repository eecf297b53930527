package keeper

import (
	"encoding/json"
	"fmt"
	"time"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/curved-dex/curved/x/curve/types"
)

// Keeper owns the curve module state: the pair registry, its derived
// reserve-symbol index, the singleton config and the snapshot table.
// The embedding ledger guarantees one request executes at a time, so
// the keeper carries no locking of its own.
type Keeper struct {
	db       dbm.DB
	logger   log.Logger
	accounts types.AccountKeeper
	tokens   types.TokenKeeper
	self     string
	now      func() time.Time
	hooks    types.CurveHooks
	metrics  *Metrics
}

// Option configures a Keeper at construction time.
type Option func(*Keeper)

// WithClock overrides the keeper's time source. Used by deterministic
// callers (block time) and tests.
func WithClock(now func() time.Time) Option {
	return func(k *Keeper) { k.now = now }
}

// NewKeeper creates a new curve Keeper instance. self is the engine's
// own ledger account, used as the liquidity-token issuer and the
// sender of settling transfers.
func NewKeeper(db dbm.DB, logger log.Logger, accounts types.AccountKeeper, tokens types.TokenKeeper, self string, opts ...Option) *Keeper {
	k := &Keeper{
		db:       db,
		logger:   logger.With("module", "x/"+types.ModuleName),
		accounts: accounts,
		tokens:   tokens,
		self:     self,
		now:      time.Now,
		metrics:  NewMetrics(),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// SetHooks sets the module hooks. Panics if called twice.
func (k *Keeper) SetHooks(h types.CurveHooks) *Keeper {
	if k.hooks != nil {
		panic("cannot set curve hooks twice")
	}
	k.hooks = h
	return k
}

// Logger returns the module logger.
func (k Keeper) Logger() log.Logger {
	return k.logger
}

// Self returns the engine's own ledger account name.
func (k Keeper) Self() string {
	return k.self
}

func (k Keeper) marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (k Keeper) unmarshal(bz []byte, v any) error {
	return json.Unmarshal(bz, v)
}

// iterate walks every record under prefix in ascending key order,
// stopping when cb returns true. Keys passed to cb have the prefix
// stripped.
func (k Keeper) iterate(prefix []byte, cb func(key, value []byte) (stop bool)) error {
	itr, err := k.db.Iterator(prefix, prefixEnd(prefix))
	if err != nil {
		return fmt.Errorf("iterate: %w", err)
	}
	defer itr.Close()

	for ; itr.Valid(); itr.Next() {
		if cb(itr.Key()[len(prefix):], itr.Value()) {
			break
		}
	}
	return itr.Error()
}

// clearPrefix deletes every record under prefix.
func (k Keeper) clearPrefix(prefix []byte) error {
	var keys [][]byte
	err := k.iterate(prefix, func(key, _ []byte) bool {
		full := append(append([]byte{}, prefix...), key...)
		keys = append(keys, full)
		return false
	})
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := k.db.Delete(key); err != nil {
			return fmt.Errorf("clearPrefix: %w", err)
		}
	}
	return nil
}

// prefixEnd returns the exclusive upper bound for iterating all keys
// that start with prefix.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte{}, prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] != 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
