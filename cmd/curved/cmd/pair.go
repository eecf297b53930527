package cmd

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/curved-dex/curved/x/curve/types"
)

func pairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Manage the pair registry",
	}
	cmd.AddCommand(pairSetCmd(), pairListCmd(), pairShowCmd(), pairRemoveCmd())
	return cmd
}

func pairSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <id> <reserve0@contract> <reserve1@contract>",
		Short: "Create a pair or update its amplifier",
		Long: `Create a pair or update its amplifier.

Reserves are issuer-qualified asset strings, e.g. "1000.0000 USDT@tether".
Creating a pair requires equal deposits once normalized to a common
precision; updating one keeps the reserve assets fixed.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			id, ok := types.ParseSymbolCode(args[0])
			if !ok {
				return fmt.Errorf("invalid pair id %q", args[0])
			}
			reserve0, ok := types.ParseExtendedAsset(args[1])
			if !ok {
				return fmt.Errorf("cannot parse reserve %q", args[1])
			}
			reserve1, ok := types.ParseExtendedAsset(args[2])
			if !ok {
				return fmt.Errorf("cannot parse reserve %q", args[2])
			}
			amplifier, err := cast.ToUint64E(cmd.Flags().Lookup("amplifier").Value.String())
			if err != nil {
				return err
			}

			if err := eng.keeper.CreatePair(id, reserve0, reserve1, amplifier); err != nil {
				return err
			}
			cmd.Printf("pair %s set\n", id)
			return nil
		},
	}
	cmd.Flags().Uint64("amplifier", 100, "curve amplification coefficient")
	return cmd
}

func pairListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			pairs, err := eng.keeper.GetAllPairs()
			if err != nil {
				return err
			}
			for _, p := range pairs {
				cmd.Printf("%-8s %s | %s  amp=%d trades=%d\n",
					p.ID, p.Reserve0, p.Reserve1, p.Amplifier, p.Trades)
			}
			return nil
		},
	}
}

func pairShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one pair in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			id, ok := types.ParseSymbolCode(args[0])
			if !ok {
				return fmt.Errorf("invalid pair id %q", args[0])
			}
			p, err := eng.keeper.GetPair(id)
			if err != nil {
				return err
			}
			cmd.Printf("id:         %s\n", p.ID)
			cmd.Printf("reserve0:   %s\n", p.Reserve0)
			cmd.Printf("reserve1:   %s\n", p.Reserve1)
			cmd.Printf("liquidity:  %s\n", p.Liquidity)
			cmd.Printf("amplifier:  %d\n", p.Amplifier)
			cmd.Printf("price0:     %g\n", p.Price0Last)
			cmd.Printf("price1:     %g\n", p.Price1Last)
			cmd.Printf("volume0:    %s\n", p.Volume0)
			cmd.Printf("volume1:    %s\n", p.Volume1)
			cmd.Printf("trades:     %d\n", p.Trades)
			cmd.Printf("updated:    %s\n", p.LastUpdated)
			return nil
		},
	}
}

func pairRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			id, ok := types.ParseSymbolCode(args[0])
			if !ok {
				return fmt.Errorf("invalid pair id %q", args[0])
			}
			if err := eng.keeper.RemovePair(id); err != nil {
				return err
			}
			cmd.Printf("pair %s removed\n", id)
			return nil
		},
	}
}
