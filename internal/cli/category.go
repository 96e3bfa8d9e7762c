package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/primalhq/primal/internal/view"
)

// NewCategoryCommand creates the category command group.
func NewCategoryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	cmd.AddCommand(newCategoryAddCommand(rootOpts))
	cmd.AddCommand(newCategoryDeleteCommand(rootOpts))
	cmd.AddCommand(newCategoryListCommand(rootOpts))
	return cmd
}

func newCategoryAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openAuthedSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.handler.AddCategory(cmd.Context(), args[0]); err != nil {
				return out.Fail(err)
			}
			return out.SuccessText("added category "+args[0], map[string]string{"name": args[0]})
		},
	}
}

func newCategoryDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an unused category",
		Long: `Delete a category by name.

Deletion is refused while any product still references the category;
reassign or delete those products first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openAuthedSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.handler.RemoveCategory(cmd.Context(), args[0]); err != nil {
				return out.Fail(err)
			}
			return out.SuccessText("deleted category "+args[0], map[string]string{"name": args[0]})
		},
	}
}

func newCategoryListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories with product counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			usage := view.CategoryUsage(s.handler.Store().Snapshot())

			var b strings.Builder
			w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tPRODUCTS")
			for _, u := range usage {
				fmt.Fprintf(w, "%s\t%d\n", u.Category, u.Count)
			}
			w.Flush()
			return out.SuccessText(strings.TrimRight(b.String(), "\n"), usage)
		},
	}
}
