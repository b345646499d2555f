package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	receiptadapter "github.com/bnema/bibbox-fbs/internal/adapters/render/receipt"
	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/spf13/cobra"
)

// writeResult prints value as JSON, or its receipt.
func writeResult(cmd *cobra.Command, app *app, opts *rootOptions, value any, receipt receiptadapter.Receipt) error {
	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}

	rendered := receiptadapter.Render(receipt, receiptadapter.RenderOptions{Location: app.now().Location()})
	_, err := fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// callFBS runs a single FBS call behind a spinner unless JSON output was
// requested.
func callFBS(cmd *cobra.Command, opts *rootOptions, label string, call func(context.Context) error) error {
	return trackFBS(cmd, opts, label, 0, func(ctx context.Context, _ fbsProgress) error {
		return call(ctx)
	})
}

// trackFBS runs call behind a progress view of total items.
func trackFBS(cmd *cobra.Command, opts *rootOptions, label string, total int, call func(context.Context, fbsProgress) error) error {
	if opts.asJSON {
		return call(cmd.Context(), nopProgress{})
	}
	return runFBSProgress(cmd.Context(), cmd.ErrOrStderr(), label, total, call)
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Send an SC status request to FBS",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(app *app) error {
				var status domain.LibraryStatus
				err := callFBS(cmd, opts, "Contacting FBS...", func(ctx context.Context) error {
					var err error
					status, err = app.service.LibraryStatus(ctx)
					return err
				})
				if err != nil {
					return err
				}

				return writeResult(cmd, app, opts, status, receiptadapter.FromLibraryStatus(status))
			})
		},
	}
}
