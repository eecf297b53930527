package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/curved-dex/curved/x/curve/types"
)

func quoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <quantity@contract> <target>",
		Short: "Price a trade without committing it",
		Long: `Price a trade without committing it.

Routes the input against the registry, dry-runs every candidate path
and prints the best one, e.g.:

  curved quote "100.0000 USDT@tether" USN`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			in, ok := types.ParseExtendedAsset(args[0])
			if !ok {
				return fmt.Errorf("cannot parse quantity %q", args[0])
			}
			target, ok := types.ParseSymbolCode(args[1])
			if !ok {
				return fmt.Errorf("invalid target symbol %q", args[1])
			}

			paths, err := eng.keeper.FindTradePaths(in.Quantity.Symbol.Code, target)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return types.ErrNoRouteFound.Wrapf("no path from %s to %s", in.Quantity.Symbol.Code, target)
			}
			best, out, err := eng.keeper.BestTradePath(in, paths)
			if err != nil {
				return err
			}

			cmd.Printf("in:   %s\n", in)
			cmd.Printf("out:  %s\n", out)
			cmd.Printf("path:")
			for _, id := range best {
				cmd.Printf(" %s", id)
			}
			cmd.Println()
			return nil
		},
	}
}

func tradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trade <sender> <quantity@contract> <memo>",
		Short: "Execute an inbound transfer against the engine",
		Long: `Execute an inbound transfer against the engine, exactly as the
ledger hook would deliver it:

  curved trade alice "100.0000 USDT@tether" "USN,bob"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			in, ok := types.ParseExtendedAsset(args[1])
			if !ok {
				return fmt.Errorf("cannot parse quantity %q", args[1])
			}
			return eng.keeper.OnIncomingTransfer(args[0], in.Contract, in.Quantity, args[2])
		},
	}
}
