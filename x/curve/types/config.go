package types

// Config is the singleton engine configuration. Its mere presence in
// the store enables trading; clearing it puts the engine in
// maintenance. Fee is a basis-point rate over FeeDenominator applied to
// every hop's output.
type Config struct {
	Status string `json:"status"`
	Fee    uint64 `json:"fee"`
}

// DefaultConfig returns the standard trading configuration.
func DefaultConfig() Config {
	return Config{Status: StatusOk, Fee: 30}
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.Fee >= FeeDenominator {
		return ErrInvalidConfig.Wrapf("fee %d must be below %d", c.Fee, FeeDenominator)
	}
	return nil
}
