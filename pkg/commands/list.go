package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/todocal/pkg/commands/options"
	"tableflip.dev/todocal/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	do := &options.DayOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the stored tasks.",
		Example: `
todocal list
todocal list --day 15
todocal list --json
`,
		ValidArgs: []string{},
		Args:      cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := persistence()
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Persistence: p,
				Day:         do.Day,
				JSON:        oo.JSON,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(contextOrBackground(cmd.Context())))
		},
	}

	options.AddDayArg(cmd, do, "Lists every day when unset.")
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
