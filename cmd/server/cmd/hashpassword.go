package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/howdythrift/server/internal/auth"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Hash a password for ADMIN_PASSWORD_HASH",
	Long: `Prints the digest of the given password in the format expected by the
ADMIN_PASSWORD_HASH environment variable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "" {
			return fmt.Errorf("password must not be empty")
		}
		fmt.Fprintln(cmd.OutOrStdout(), auth.HashPassword(args[0]))
		return nil
	},
}
