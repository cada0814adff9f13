package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/store"
)

func addClear(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "delete all recorded picks",
		Example: `
datepick clear
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			if err := p.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Println("history cleared")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
