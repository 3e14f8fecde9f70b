package main

import (
	"github.com/spf13/cobra"
	"github.com/terraincognita07/florette/internal/cli"
)

var resetEmail string

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Replace a user's password with a temporary one",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunResetPasswordCommand(resolveDBPath(nil), resetEmail, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(resetPasswordCmd)
	resetPasswordCmd.Flags().StringVar(&resetEmail, "email", "", "Email of the account to reset")
	_ = resetPasswordCmd.MarkFlagRequired("email")
}
