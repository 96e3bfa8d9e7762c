package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primalhq/primal/internal/label"
)

// NewPrintCommand creates the print command.
//
// Printing composes a label layout and hands each card to the barcode
// renderer; the CLI ships a text renderer, so the "print surface" is
// stdout.
func NewPrintCommand(rootOpts *RootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "print [id]...",
		Short: "Compose and print barcode labels",
		Long: `Print barcode labels.

With one id, a single full-size label is composed. With several ids (or
--all), the ids are selected for bulk printing and a compact label grid
is composed in selection order.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return WrapExitError(ExitCommandError, "--all cannot be combined with explicit ids", nil)
			}
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			renderer := label.TextRenderer{W: cmd.OutOrStdout()}

			if len(args) == 1 && !all {
				sheet, err := s.handler.PrintSingle(args[0], renderer)
				if err != nil {
					return out.Fail(err)
				}
				if rootOpts.Format == "json" {
					return out.Success(sheet)
				}
				return nil
			}

			if all {
				state := s.handler.Store().Snapshot()
				ids := make([]string, 0, len(state.Products))
				for _, p := range state.Products {
					ids = append(ids, p.ID)
				}
				if err := s.handler.SelectAll(ids); err != nil {
					return out.Fail(err)
				}
			} else {
				if err := s.handler.SelectAll(args); err != nil {
					return out.Fail(err)
				}
			}

			sheet, err := s.handler.PrintSelected(renderer)
			if err != nil {
				return out.Fail(err)
			}
			if rootOpts.Format == "json" {
				return out.Success(sheet)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d label(s) composed\n", len(sheet.Cards))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "print labels for every product")
	return cmd
}
