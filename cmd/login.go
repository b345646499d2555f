package cmd

import (
	"context"
	"errors"

	receiptadapter "github.com/bnema/bibbox-fbs/internal/adapters/render/receipt"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/spf13/cobra"
)

const pinEnv = "BIBBOX_PATRON_PIN"

var errPatronRequired = errors.New("patron and pin are required")

type patronFlags struct {
	patron string
	pin    string
}

func (f *patronFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.patron, "patron", "", "Patron identifier (card number or CPR)")
	cmd.Flags().StringVar(&f.pin, "pin", "", "Patron pin (default $"+pinEnv+")")
}

func (f *patronFlags) credentials() (domain.Credentials, error) {
	pin := f.pin
	if pin == "" {
		pin = envOrDefault(pinEnv, "")
	}
	if f.patron == "" || pin == "" {
		return domain.Credentials{}, errPatronRequired
	}
	return domain.Credentials{Username: f.patron, Password: pin}, nil
}

// login authenticates the patron on app's service behind a spinner.
func login(cmd *cobra.Command, app *app, opts *rootOptions, flags *patronFlags) (domain.LoginResult, error) {
	creds, err := flags.credentials()
	if err != nil {
		return domain.LoginResult{}, err
	}

	var result domain.LoginResult
	err = callFBS(cmd, opts, "Logging in...", func(ctx context.Context) error {
		var err error
		result, err = app.service.Login(ctx, creds)
		return err
	})
	return result, err
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	flags := &patronFlags{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Validate a patron against FBS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *app) error {
				result, err := login(cmd, app, opts, flags)
				if err != nil {
					return err
				}
				return writeResult(cmd, app, opts, result, receiptadapter.FromLogin(result))
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func newPatronCmd(opts *rootOptions) *cobra.Command {
	flags := &patronFlags{}

	cmd := &cobra.Command{
		Use:   "patron",
		Short: "Show patron information: loans, reservations and fees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *app) error {
				if _, err := login(cmd, app, opts, flags); err != nil {
					return err
				}

				var patron domain.Patron
				err := callFBS(cmd, opts, "Fetching patron...", func(ctx context.Context) error {
					var err error
					patron, err = app.service.Patron(ctx)
					return err
				})
				if err != nil {
					return err
				}

				return writeResult(cmd, app, opts, patron, receiptadapter.FromPatron(patron))
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func newBlockCmd(opts *rootOptions) *cobra.Command {
	var (
		patron string
		reason string
	)

	cmd := &cobra.Command{
		Use:   "block",
		Short: "Block a patron card in FBS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *app) error {
				var status domain.PatronStatus
				err := callFBS(cmd, opts, "Blocking patron...", func(ctx context.Context) error {
					var err error
					status, err = app.service.Block(ctx, domain.BlockRequest{Username: patron, Reason: reason})
					return err
				})
				if err != nil {
					return err
				}

				return writeResult(cmd, app, opts, status, receiptadapter.FromBlock(status))
			})
		},
	}

	cmd.Flags().StringVar(&patron, "patron", "", "Patron identifier")
	cmd.Flags().StringVar(&reason, "reason", "", "Block reason (default login.block_reason)")
	_ = cmd.MarkFlagRequired("patron")

	return cmd
}
