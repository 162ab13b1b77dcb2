package cli

import (
	"context"
	"errors"
	"fmt"

	"phish_trainer/pkg/api"
	"phish_trainer/pkg/dashboard"
	"phish_trainer/pkg/dashboard/termview"
	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/logger"

	"github.com/spf13/cobra"
)

// openDashboard prints the statistics panel and binds the forms already added
// to page.
func openDashboard(ctx context.Context, opts *options, page *termview.Page) error {
	_, c, err := sessionClient(opts)
	if err != nil {
		return err
	}
	dash := dashboard.New(c, page.Elements(),
		dashboard.WithLogger(logger.Log),
		dashboard.WithCatalog(opts.catalog()),
	)
	dash.Init(ctx)
	return nil
}

func messageError(m *termview.Message) error {
	text, kind := m.Last()
	if kind == dashboard.MessageError {
		return errors.New(text)
	}
	return nil
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your training statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			page := termview.NewPage(cmd.OutOrStdout())
			if err := openDashboard(ctx, opts, page); err != nil {
				return err
			}
			if page.Progress.Text() == "" {
				return errors.New(opts.catalog().T(i18n.StatsUnavailable))
			}
			return nil
		},
	}
}

func newProfileCmd(opts *options) *cobra.Command {
	var values dashboard.ProfileValues

	cmd := &cobra.Command{
		Use:     "profile",
		Short:   "Update your name, e-mail and security level",
		Example: `  phishctl profile --full-name "Alice Liddell" --email alice@example.com --level advanced`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !api.SecurityLevel(values.SecurityLevel).Valid() {
				return fmt.Errorf("--level must be one of %v", api.SecurityLevels)
			}
			s, err := LoadSession()
			if err != nil {
				return err
			}
			values.Username = s.Username

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			page := termview.NewPage(cmd.OutOrStdout())
			form := page.AddProfileForm(values)
			if err := openDashboard(ctx, opts, page); err != nil {
				return err
			}
			form.Submit(ctx)
			return messageError(page.ProfileMessage)
		},
	}

	cmd.Flags().StringVar(&values.FullName, "full-name", "", "full name shown in the greeting")
	cmd.Flags().StringVar(&values.Email, "email", "", "e-mail address")
	cmd.Flags().StringVar(&values.SecurityLevel, "level", string(api.LevelBeginner), "security level: beginner, intermediate, advanced or expert")
	cmd.MarkFlagRequired("email")
	return cmd
}

func newPasswordCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "Change your password",
		Long: `Prompts for the current password, the new one and its confirmation.
The confirmation is checked before anything is sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var values dashboard.PasswordValues
			var err error
			prompts := []struct {
				label string
				dst   *string
			}{
				{"Current password: ", &values.CurrentPassword},
				{"New password: ", &values.NewPassword},
				{"Confirm new password: ", &values.ConfirmPassword},
			}
			for _, p := range prompts {
				if *p.dst, err = readPassword(opts, cmd.ErrOrStderr(), p.label); err != nil {
					return fmt.Errorf("failed to read password: %w", err)
				}
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			page := termview.NewPage(cmd.OutOrStdout())
			form := page.AddPasswordForm(values)
			if err := openDashboard(ctx, opts, page); err != nil {
				return err
			}
			form.Submit(ctx)
			return messageError(page.PasswordMessage)
		},
	}
}
