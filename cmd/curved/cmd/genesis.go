package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/curved-dex/curved/x/curve/types"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export the full engine state as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			gs, err := eng.keeper.ExportGenesis()
			if err != nil {
				return err
			}
			bz, err := json.MarshalIndent(gs, "", "  ")
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return os.WriteFile(args[0], bz, 0o644)
			}
			cmd.Println(string(bz))
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import engine state from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			bz, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var gs types.GenesisState
			if err := json.Unmarshal(bz, &gs); err != nil {
				return types.ErrInvalidGenesis.Wrap(err.Error())
			}
			if err := eng.keeper.InitGenesis(gs); err != nil {
				return err
			}
			cmd.Printf("imported %d pairs\n", len(gs.Pairs))
			return nil
		},
	}
}
