package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/todocal/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the calendar (the default command)",
		Example: `
todocal ui
`,
		ValidArgs: []string{},
		Args:      cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(ctx context.Context) error {
	p, cfg, err := persistence()
	if err != nil {
		return err
	}
	i := ui.UI{
		Persistence: p,
		RollYear:    cfg.RollYear(),
		LogFile:     cfg.LogFile(),
	}
	return i.Do(contextOrBackground(ctx))
}
