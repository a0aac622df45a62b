package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Start a level straight away",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id < 1 {
			return fmt.Errorf("invalid level %q: want a positive number", args[0])
		}
		return runApp(cmd, id)
	},
}
