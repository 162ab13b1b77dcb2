package cli

import (
	"context"
	"fmt"

	"phish_trainer/pkg/api"
	"phish_trainer/pkg/client"
	"phish_trainer/pkg/i18n"

	"github.com/spf13/cobra"
)

func newLoginCmd(opts *options) *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to a trainer server",
		Long: `Sign in with your username and password. The session is stored in
~/.phishtrainer/token with 0600 permissions.

Example:
  phishctl login --server http://localhost:8080 --username alice`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := opts.server
			if server == "" {
				server = "http://localhost:8080"
			}
			server, err := normalizeServer(server)
			if err != nil {
				return err
			}

			password, err := readPassword(opts, cmd.ErrOrStderr(), "Password: ")
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			if password == "" {
				return fmt.Errorf("password cannot be empty")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			c := client.NewClient(server, client.WithTimeout(opts.timeout))
			resp, err := c.Login(ctx, api.LoginRequest{Username: username, Password: password})
			if err != nil {
				return fmt.Errorf("%s: %w", opts.catalog().T(i18n.ConnectionError), err)
			}
			if !resp.Success {
				return fmt.Errorf("login failed: %s", resp.Message)
			}

			if err := SaveSession(Session{Server: server, Username: username, Token: resp.Token}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account username")
	cmd.MarkFlagRequired("username")
	return cmd
}

func newLogoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the saved session",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, c, err := sessionClient(opts)
			if err == errNotLoggedIn {
				return nil
			}
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			// the server only clears a cookie, so a failed call is not fatal
			if resp, err := c.Logout(ctx); err == nil && resp.Message != "" {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			}
			return DeleteSession()
		},
	}
}
