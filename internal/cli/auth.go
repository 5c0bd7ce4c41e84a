package cli

import (
	"fmt"

	"github.com/kofuk/bungie/internal/authflow"
	"github.com/spf13/cobra"
)

func newAuthCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Obtain OAuth2 tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "url",
		Short: "Print an authorization URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Client.AuthorizationURL("")
			if err != nil {
				return err
			}
			fmt.Fprintln(app.Out, u.URL)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "login",
		Short: "Authorize in a browser and print the tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow := authflow.New(app.Client, []byte(app.Config.StateKey))
			token, err := flow.Run(cmd.Context(), app.Config.OAuthCallbackAddress, func(url string) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Open this URL to sign in:\n\n  %s\n\n", url)
			})
			if err != nil {
				return err
			}
			return app.print(token)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "refresh <refresh token>",
		Short: "Refresh an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.Client.RefreshAccessToken(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.print(token)
		},
	})

	return cmd
}
