package cmd

import (
	"github.com/spf13/cobra"
)

func backupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Snapshot the pair registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			meta, err := eng.keeper.Backup()
			if err != nil {
				return err
			}
			cmd.Printf("backed up %d pairs at %s\nchecksum: %s\n", meta.Pairs, meta.Timestamp, meta.Checksum)
			return nil
		},
	}
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Restore the pair registry from the snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			if err := eng.keeper.Restore(); err != nil {
				return err
			}
			cmd.Println("registry restored")
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "reset <table>",
		Short:     "Clear one state table: config, pairs or backup",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"config", "pairs", "backup"},
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := loadEngine(cmd)
			if err != nil {
				return err
			}
			defer eng.Close()

			if err := eng.keeper.Reset(args[0]); err != nil {
				return err
			}
			cmd.Printf("table %s cleared\n", args[0])
			return nil
		},
	}
}
