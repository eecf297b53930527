package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultConfigTemplate = `# curved engine configuration
account = "curve.sx"

[ledger]
# Accounts the engine will accept as trade receivers.
accounts = []

# Token supplies per issuing contract, used to validate new pairs.
# [ledger.supplies]
# "tether" = ["1000000000.0000 USDT"]
`

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the engine home directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			home, err := cmd.Flags().GetString(flagHome)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Join(home, dataDirName), 0o755); err != nil {
				return err
			}

			path := filepath.Join(home, configFileName)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o644); err != nil {
				return err
			}
			cmd.Printf("initialized %s\n", home)
			return nil
		},
	}
}
