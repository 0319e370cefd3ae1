package cmd

import (
	"cardbox/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	addName    string
	addCompany string
	addDesc    string
	addImg     string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new contact card",
	Long: `Creates an empty card and, when content flags are given, populates it
with a follow-up update. Without flags the card stays empty until edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := app.AddContact(cmd.Context(), client.Contact{
			Name:    addName,
			Company: addCompany,
			Desc:    addDesc,
			Img:     addImg,
		})
		if err != nil {
			return err
		}

		color.Green("Created contact %d.", id)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "display name")
	addCmd.Flags().StringVar(&addCompany, "company", "", "affiliation")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "free-text notes")
	addCmd.Flags().StringVar(&addImg, "img", "", "image reference")
	rootCmd.AddCommand(addCmd)
}
