package types

// GenesisState holds the full persisted state of the module: the
// optional singleton config (absent means maintenance) and every pair.
type GenesisState struct {
	Config *Config `json:"config,omitempty"`
	Pairs  []Pair  `json:"pairs"`
}

// DefaultGenesis returns an empty registry with trading enabled at the
// default fee.
func DefaultGenesis() *GenesisState {
	cfg := DefaultConfig()
	return &GenesisState{
		Config: &cfg,
		Pairs:  []Pair{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("config: %v", err)
		}
	}
	seen := make(map[SymbolCode]struct{}, len(gs.Pairs))
	combos := make(map[string]SymbolCode, len(gs.Pairs))
	for _, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return ErrInvalidGenesis.Wrapf("pair %s: %v", pair.ID, err)
		}
		if _, ok := seen[pair.ID]; ok {
			return ErrInvalidGenesis.Wrapf("duplicate pair id %s", pair.ID)
		}
		seen[pair.ID] = struct{}{}

		combo := string(PairByReservesKey(pair.Reserve0.Quantity.Symbol.Code, pair.Reserve1.Quantity.Symbol.Code))
		if other, ok := combos[combo]; ok {
			return ErrInvalidGenesis.Wrapf("pairs %s and %s share the same reserve combination", other, pair.ID)
		}
		combos[combo] = pair.ID
	}
	return nil
}
