package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/todocal/pkg/commands/options"
	"tableflip.dev/todocal/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DayOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a day.",
		Example: `
todocal add buy milk
todocal add --day 15 pay rent
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := persistence()
			if err != nil {
				return err
			}
			a := add.Add{
				Day:         do.Day,
				Message:     strings.Join(args, " "),
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			return a.Do(contextOrBackground(cmd.Context()))
		},
	}

	options.AddDayArg(cmd, do, "Defaults to today.")

	topLevel.AddCommand(cmd)
}
