package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/todocal/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "todocal",
		Short: base.Wrap80("A terminal calendar with a todo list for every day."),
		Long: base.Wrap80("Browse the month with h/l (day), j/k (week) and n/p (month). " +
			"Press enter to add tasks to the selected day and q to quit. " +
			"Tasks are kept in todolist.txt in the working directory."),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd.Context())
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addList(topLevel)
	addAdd(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
}

// persistence opens the configured task file.
func persistence() (store.Persistence, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	return store.Open(cfg.TaskFile()), cfg, nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
