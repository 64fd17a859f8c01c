package options

import (
	"github.com/spf13/cobra"
)

// DayOptions picks a day of the month.
type DayOptions struct {
	Day int
}

// AddDayArg registers --day. fallback describes what the command does when
// the flag is not set.
func AddDayArg(cmd *cobra.Command, o *DayOptions, fallback string) {
	cmd.Flags().IntVarP(&o.Day, "day", "d", 0,
		"Day of the month (1-31), example: --day=15. "+fallback)
}
