package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"questa/internal/state"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print score, rank, and weekly progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, closeStore, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			st := state.NewController(store).Status()
			out := cmd.OutOrStdout()
			if !st.HasPlan {
				fmt.Fprintln(out, "no plan yet — run `questa` and pick your categories")
				return nil
			}
			fmt.Fprintf(out, "score: %d\n", st.Score)
			fmt.Fprintf(out, "rank:  %s\n", st.Rank)
			if st.TopRank {
				fmt.Fprintln(out, "top rank reached")
			} else {
				fmt.Fprintf(out, "next rank in %d points\n", st.ToNextRank)
			}
			for _, d := range st.Days {
				marker := ""
				if d.IsToday {
					marker = "  <- today"
				}
				fmt.Fprintf(out, "day %d: %d/%d done%s\n", d.Day, d.Completed, d.Enabled, marker)
			}
			fmt.Fprintf(out, "week total: %d completed\n", st.WeekCompleted)
			return nil
		},
	}
}
