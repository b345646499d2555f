package cmd

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	asJSON     bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "bibbox",
		Short:         "bibbox: self-service kiosk bridge to FBS",
		Long:          "bibbox logs patrons in and checks library items out, in and renews them against FBS over SIP2, and serves the kiosk UI's event bus.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.bibbox/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(opts),
		newStatusCmd(opts),
		newLoginCmd(opts),
		newPatronCmd(opts),
		newCheckoutCmd(opts),
		newCheckinCmd(opts),
		newRenewCmd(opts),
		newRenewAllCmd(opts),
		newBlockCmd(opts),
		newServeCmd(opts),
	)

	return rootCmd
}

// withApp wires the app for one command run.
func withApp(cmd *cobra.Command, opts *rootOptions, run func(*app) error) error {
	app, err := wireApp(cmd.Context(), opts.configPath, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	return run(app)
}
