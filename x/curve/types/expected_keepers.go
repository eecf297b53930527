package types

// AccountKeeper is the ledger's account registry, consumed for
// recipient and issuer existence checks.
type AccountKeeper interface {
	HasAccount(name string) bool
}

// TokenKeeper is the ledger's token facility: supply lookups for
// reserve validation and the outbound transfer that settles a trade.
type TokenKeeper interface {
	GetSupply(contract string, code SymbolCode) (Asset, error)
	Transfer(from, to string, quantity ExtendedAsset, memo string) error
}
