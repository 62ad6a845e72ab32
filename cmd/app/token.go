package main

import (
	"fmt"
	"time"

	"marketplace/cmd"
	"marketplace/internal/adapters/in/auth"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.Flags().String("user", "", "User id (a new one is generated when empty)")
	tokenCmd.Flags().String("role", string(kernel.RoleCustomer), "customer, worker, agency_partner or admin")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token signed with JWT_SECRET",
	Long: `Issue a bearer token signed with JWT_SECRET. Users are managed by the
identity service; this command exists for local testing of the API and relay.`,
	RunE: runToken,
}

func runToken(command *cobra.Command, _ []string) error {
	userFlag, _ := command.Flags().GetString("user")
	roleFlag, _ := command.Flags().GetString("role")
	ttl, _ := command.Flags().GetDuration("ttl")

	userID := kernel.NewUUID()
	if userFlag != "" {
		parsed, err := kernel.UUIDFromString(userFlag)
		if err != nil {
			return err
		}
		userID = parsed
	}
	caller, err := kernel.NewCaller(userID, kernel.Role(roleFlag))
	if err != nil {
		return err
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	verifier, err := auth.NewTokenVerifier(config.JWTSecret)
	if err != nil {
		return err
	}
	token, err := verifier.Issue(caller, ttl)
	if err != nil {
		return err
	}

	fmt.Fprintf(command.ErrOrStderr(), "user %s, role %s\n", caller.ID(), caller.Role())
	fmt.Fprintln(command.OutOrStdout(), token)
	return nil
}
