package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Flags for auth github.
var (
	authToken    string
	authUsername string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage connector credentials",
	Long: `Store credentials for the data connectors.

The GitHub connector needs a personal access token (a classic token with
public_repo scope is enough) and the account username. Credentials are
written to the config file with owner-only permissions.

Examples:
  # Interactive (token read without echo)
  portfolio auth github --username alyyan

  # Non-interactive
  portfolio auth github --username alyyan --token ghp_xxx`,
}

var authGitHubCmd = &cobra.Command{
	Use:   "github",
	Short: "Store the GitHub personal access token",
	RunE:  runAuthGitHub,
}

func init() {
	authGitHubCmd.Flags().StringVar(
		&authToken, "token", "", "personal access token (omit to enter interactively)")
	authGitHubCmd.Flags().StringVar(
		&authUsername, "username", "", "GitHub account username")

	authCmd.AddCommand(authGitHubCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthGitHub(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	token := authToken
	if token == "" {
		// Read without echo so the token never lands in terminal
		// scrollback.
		cmd.Print("GitHub personal access token: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		token = strings.TrimSpace(string(raw))
	}
	if token == "" {
		return errors.New("token is required")
	}

	if err := configStore.Set("github.token", token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	if authUsername != "" {
		if err := configStore.Set("github.username", authUsername); err != nil {
			return fmt.Errorf("saving username: %w", err)
		}
	}

	cmd.Printf("GitHub credentials saved to %s\n", configStore.Path())
	return nil
}
