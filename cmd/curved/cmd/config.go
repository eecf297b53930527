package cmd

import (
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/curved-dex/curved/x/curve/types"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the engine configuration",
	}
	cmd.AddCommand(configSetCmd(), configShowCmd(), configClearCmd())
	return cmd
}

func configSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Enable trading with the given settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			fee, err := cast.ToUint64E(cmd.Flags().Lookup("fee").Value.String())
			if err != nil {
				return err
			}
			status, _ := cmd.Flags().GetString("status")
			cfg := types.Config{Status: status, Fee: fee}
			if err := eng.keeper.SetConfig(cfg); err != nil {
				return err
			}
			cmd.Printf("config set: status=%s fee=%d\n", cfg.Status, cfg.Fee)
			return nil
		},
	}
	cmd.Flags().Uint64("fee", types.DefaultConfig().Fee, "trade fee in basis points")
	cmd.Flags().String("status", types.StatusOk, "engine status string")
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			cfg, err := eng.keeper.GetConfig()
			if err != nil {
				return err
			}
			cmd.Printf("status: %s\nfee: %d\n", cfg.Status, cfg.Fee)
			return nil
		},
	}
}

func configClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Disable trading (maintenance mode)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			if err := eng.keeper.ClearConfig(); err != nil {
				return err
			}
			cmd.Println("config cleared, trading disabled")
			return nil
		},
	}
}
