package cli

import (
	"github.com/spf13/cobra"
)

// NewLoginCommand creates the login command.
//
// A session lasts exactly one process, so login here is a credential
// check (and, on a fresh store, the first-run password setup) rather
// than a durable session grant.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify the master password, or set it on first run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			if rootOpts.Password == "" {
				return WrapExitError(ExitFailure, "pass --password or set PRIMAL_PASSWORD", nil)
			}
			firstRun := s.handler.Store().FirstRun()
			if err := s.handler.Login(cmd.Context(), rootOpts.Password); err != nil {
				return out.Fail(err)
			}
			if firstRun {
				return out.SuccessText("store password set", map[string]bool{"firstRun": true})
			}
			return out.SuccessText("login ok", map[string]bool{"firstRun": false})
		},
	}
}
