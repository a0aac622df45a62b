package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errResetNotConfirmed = errors.New("refusing to delete progress without --yes")

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all recorded sessions and answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errResetNotConfirmed
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.EventRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All progress deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion of all progress")
}
