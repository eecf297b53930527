package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/curved-dex/curved/x/curve/keeper"
	"github.com/curved-dex/curved/x/curve/types"
)

const (
	flagHome        = "home"
	flagMetricsPort = "metrics-port"

	configFileName = "config.toml"
	dataDirName    = "data"
)

// engine bundles everything a command needs once the home directory is
// loaded: the keeper, the backing database and the configured ledger.
type engine struct {
	keeper *keeper.Keeper
	db     dbm.DB
	ledger *fileLedger
	home   string
}

func (e *engine) Close() {
	if e.db != nil {
		_ = e.db.Close()
	}
}

// NewRootCmd builds the curved command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "curved",
		Short:         "StableSwap trading engine",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	defaultHome := ".curved"
	if dir, err := os.UserHomeDir(); err == nil {
		defaultHome = filepath.Join(dir, ".curved")
	}
	rootCmd.PersistentFlags().String(flagHome, defaultHome, "engine home directory")
	rootCmd.PersistentFlags().Int(flagMetricsPort, 0, "serve Prometheus metrics on this port (0 disables)")

	rootCmd.AddCommand(
		initCmd(),
		configCmd(),
		pairCmd(),
		quoteCmd(),
		tradeCmd(),
		backupCmd(),
		restoreCmd(),
		resetCmd(),
		exportCmd(),
		importCmd(),
	)
	return rootCmd
}

// loadEngine opens the database under the home directory and builds
// the keeper against the ledger declared in config.toml.
func loadEngine(cmd *cobra.Command) (*engine, error) {
	home, err := cmd.Flags().GetString(flagHome)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(filepath.Join(home, configFileName))
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w (run `curved init` first)", err)
	}

	self := v.GetString("account")
	if self == "" {
		self = "curve.sx"
	}

	ledger, err := loadLedger(v)
	if err != nil {
		return nil, err
	}

	db, err := dbm.NewDB("curve", dbm.GoLevelDBBackend, filepath.Join(home, dataDirName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr())
	k := keeper.NewKeeper(db, logger, ledger, ledger, self)

	if port := metricsPort(cmd.Flags()); port > 0 {
		startMetricsServer(port)
	}

	return &engine{keeper: k, db: db, ledger: ledger, home: home}, nil
}

func metricsPort(flags *pflag.FlagSet) int {
	f := flags.Lookup(flagMetricsPort)
	if f == nil {
		return 0
	}
	return cast.ToInt(f.Value.String())
}

// fileLedger is the ledger view an offline engine runs against: account
// names and token supplies declared in config.toml. Transfers are
// printed rather than executed.
type fileLedger struct {
	accounts map[string]bool
	supplies map[string]types.Asset
	out      func(format string, a ...any)
}

func loadLedger(v *viper.Viper) (*fileLedger, error) {
	l := &fileLedger{
		accounts: make(map[string]bool),
		supplies: make(map[string]types.Asset),
		out:      func(format string, a ...any) { fmt.Printf(format, a...) },
	}
	for _, name := range v.GetStringSlice("ledger.accounts") {
		l.accounts[name] = true
	}
	for contract, raw := range v.GetStringMapStringSlice("ledger.supplies") {
		l.accounts[contract] = true
		for _, s := range raw {
			supply, ok := types.ParseAsset(s)
			if !ok {
				return nil, fmt.Errorf("ledger.supplies.%s: cannot parse asset %q", contract, s)
			}
			l.supplies[contract+"/"+string(supply.Symbol.Code)] = supply
		}
	}
	return l, nil
}

func (l *fileLedger) HasAccount(name string) bool { return l.accounts[name] }

func (l *fileLedger) GetSupply(contract string, code types.SymbolCode) (types.Asset, error) {
	supply, ok := l.supplies[contract+"/"+string(code)]
	if !ok {
		return types.Asset{}, fmt.Errorf("no supply for %s on %s", code, contract)
	}
	return supply, nil
}

func (l *fileLedger) Transfer(from, to string, quantity types.ExtendedAsset, memo string) error {
	l.out("transfer %s -> %s: %s (%s)\n", from, to, quantity, memo)
	return nil
}
