package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	showID := false
	cmd := &cobra.Command{
		Use:   "history",
		Short: "list recorded picks",
		Example: `
datepick history
datepick history --id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			picks := p.List(context.Background())

			pp := printers.PrettyPrint{ShowID: showID}
			pp.TitleWithCount("History", len(picks))
			pp.History(picks...)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showID, "id", false, "Show pick ids.")

	topLevel.AddCommand(cmd)
}
