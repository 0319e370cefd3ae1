package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCached bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your contact cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		contacts, err := app.ListContacts(cmd.Context(), listCached)
		if err != nil {
			return err
		}

		if len(contacts) == 0 {
			color.Yellow("No contacts yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCOMPANY\tDESCRIPTION\tIMAGE")
		for _, c := range contacts {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Company, c.Desc, c.Img)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().BoolVar(&listCached, "cached", false, "serve the last cached snapshot without contacting the server")
	rootCmd.AddCommand(listCmd)
}
