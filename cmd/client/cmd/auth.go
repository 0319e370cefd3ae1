package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a bearer token from the identity provider",
	Long: `Reads a bearer token without echoing it, verifies the server is
reachable and stores the token for later commands. Tokens are issued by the
external identity provider, not by this tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("Token: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("read token: %w", err)
		}

		token := strings.TrimSpace(string(raw))
		if token == "" {
			return fmt.Errorf("token must not be empty")
		}

		if err := app.Login(cmd.Context(), token); err != nil {
			return err
		}

		color.Green("Token saved.")
		return nil
	},
}

func init() {
	authCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(authCmd)
}
