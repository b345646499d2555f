package cmd

import (
	"context"
	"fmt"

	receiptadapter "github.com/bnema/bibbox-fbs/internal/adapters/render/receipt"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/spf13/cobra"
)

type itemCall func(ctx context.Context, itemIdentifier string) (domain.CirculationResult, error)

// runItems calls fn for each item. Failed items stay on the receipt with the
// error as message; the command then fails. An interrupted run prints the
// items handled so far.
func runItems(cmd *cobra.Command, app *app, opts *rootOptions, title string, items []string, fn itemCall) error {
	results := make([]domain.CirculationResult, 0, len(items))
	failed := 0

	err := trackFBS(cmd, opts, title, len(items), func(ctx context.Context, progress fbsProgress) error {
		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return err
			}

			progress.Started(item)
			result, err := fn(ctx, item)
			if err != nil {
				failed++
				result = domain.CirculationResult{ItemIdentifier: item, ScreenMessage: err.Error()}
			}
			progress.Finished(result)
			results = append(results, result)
		}
		return nil
	})
	if err != nil {
		if len(results) > 0 {
			_ = writeResult(cmd, app, opts, results, receiptadapter.FromCirculation(title, results))
		}
		return fmt.Errorf("%s interrupted after %d of %d items: %w", title, len(results), len(items), err)
	}

	if err := writeResult(cmd, app, opts, results, receiptadapter.FromCirculation(title, results)); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%s: %d of %d items failed", title, failed, len(items))
	}
	return nil
}

func newCheckoutCmd(opts *rootOptions) *cobra.Command {
	flags := &patronFlags{}

	cmd := &cobra.Command{
		Use:   "checkout ITEM...",
		Short: "Check items out to a patron",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(app *app) error {
				if _, err := login(cmd, app, opts, flags); err != nil {
					return err
				}
				return runItems(cmd, app, opts, "Checkout", args, app.service.Checkout)
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func newCheckinCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "checkin ITEM...",
		Short: "Check items in",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(app *app) error {
				return runItems(cmd, app, opts, "Checkin", args, app.service.Checkin)
			})
		},
	}
}

func newRenewCmd(opts *rootOptions) *cobra.Command {
	flags := &patronFlags{}

	cmd := &cobra.Command{
		Use:   "renew ITEM...",
		Short: "Renew a patron's loans",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(app *app) error {
				if _, err := login(cmd, app, opts, flags); err != nil {
					return err
				}
				return runItems(cmd, app, opts, "Renew", args, app.service.Renew)
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func newRenewAllCmd(opts *rootOptions) *cobra.Command {
	flags := &patronFlags{}

	cmd := &cobra.Command{
		Use:   "renew-all",
		Short: "Renew every loan of a patron",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *app) error {
				if _, err := login(cmd, app, opts, flags); err != nil {
					return err
				}

				var result domain.RenewAllResult
				err := callFBS(cmd, opts, "Renewing loans...", func(ctx context.Context) error {
					var err error
					result, err = app.service.RenewAll(ctx)
					return err
				})
				if err != nil {
					return err
				}

				return writeResult(cmd, app, opts, result, receiptadapter.FromRenewAll(result))
			})
		},
	}
	flags.register(cmd)

	return cmd
}
