package cmd

import (
	"fmt"
	"strconv"

	"cardbox/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	editName    string
	editCompany string
	editDesc    string
	editImg     string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a contact card (full replace)",
	Long: `Overwrites all content fields of the card. The server applies
full-replace semantics: a flag you omit clears the stored value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[0])
		}

		err = app.EditContact(cmd.Context(), client.Contact{
			ID:      id,
			Name:    editName,
			Company: editCompany,
			Desc:    editDesc,
			Img:     editImg,
		})
		if err != nil {
			return err
		}

		color.Green("Updated contact %d.", id)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "display name")
	editCmd.Flags().StringVar(&editCompany, "company", "", "affiliation")
	editCmd.Flags().StringVar(&editDesc, "desc", "", "free-text notes")
	editCmd.Flags().StringVar(&editImg, "img", "", "image reference")
	rootCmd.AddCommand(editCmd)
}
