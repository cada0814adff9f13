package commands

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/store"
	teaui "tableflip.dev/datepick/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the date picker demo interface",
		Example: `
datepick ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("ui requires a terminal")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			return teaui.Run(context.Background(), p)
		},
	}

	topLevel.AddCommand(cmd)
}
