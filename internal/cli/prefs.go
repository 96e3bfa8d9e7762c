package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primalhq/primal/internal/model"
)

// NewPrefsCommand creates the prefs command group for persisted UI
// preferences (theme, sidebar).
func NewPrefsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Persisted UI preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "theme <light|dark>",
		Short: "Set the theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.handler.SetTheme(cmd.Context(), model.Theme(args[0])); err != nil {
				return out.Fail(err)
			}
			return out.SuccessText("theme set to "+args[0], map[string]string{"theme": args[0]})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sidebar <collapsed|expanded>",
		Short: "Set the sidebar state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			var collapsed bool
			switch args[0] {
			case "collapsed":
				collapsed = true
			case "expanded":
				collapsed = false
			default:
				return WrapExitError(ExitCommandError, fmt.Sprintf("unknown sidebar state %q", args[0]), nil)
			}

			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.handler.SetSidebarCollapsed(cmd.Context(), collapsed); err != nil {
				return out.Fail(err)
			}
			return out.SuccessText("sidebar "+args[0], map[string]bool{"collapsed": collapsed})
		},
	})

	return cmd
}
