package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todocal/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the calendar key bindings",
		Example: `
todocal key
`,
		ValidArgs: []string{},
		Args:      cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Out: cmd.OutOrStdout()}
			return k.Do(contextOrBackground(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
