package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a contact card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		if err := app.RemoveContact(cmd.Context(), id); err != nil {
			return err
		}

		color.Green("Deleted contact %d.", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
