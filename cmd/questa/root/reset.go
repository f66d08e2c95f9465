package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"questa/internal/state"
)

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all progress and the persisted snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			state.NewController(store).ResetAll()
			fmt.Fprintln(cmd.OutOrStdout(), "reset complete")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
