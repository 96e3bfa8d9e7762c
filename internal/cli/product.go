package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/primalhq/primal/internal/model"
	"github.com/primalhq/primal/internal/store"
	"github.com/primalhq/primal/internal/view"
)

// productFlags mirrors the product form fields. Stock and price stay raw
// strings; the store parses and validates them at its boundary.
type productFlags struct {
	Name     string
	Brand    string
	Category string
	Barcode  string
	Stock    string
	Price    string
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Name, "name", "", "product name")
	cmd.Flags().StringVar(&f.Brand, "brand", "", "brand (optional)")
	cmd.Flags().StringVar(&f.Category, "category", "", "category name (must exist)")
	cmd.Flags().StringVar(&f.Barcode, "barcode", "", "barcode payload (generated when omitted on add)")
	cmd.Flags().StringVar(&f.Stock, "stock", "0", "stock units")
	cmd.Flags().StringVar(&f.Price, "price", "0", "unit price")
}

func (f *productFlags) input() store.ProductInput {
	return store.ProductInput{
		Name:     f.Name,
		Brand:    f.Brand,
		Category: f.Category,
		Barcode:  f.Barcode,
		Stock:    f.Stock,
		Price:    f.Price,
	}
}

// NewProductCommand creates the product command group.
func NewProductCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "product",
		Short: "Manage the product catalog",
	}
	cmd.AddCommand(newProductAddCommand(rootOpts))
	cmd.AddCommand(newProductUpdateCommand(rootOpts))
	cmd.AddCommand(newProductDeleteCommand(rootOpts))
	cmd.AddCommand(newProductListCommand(rootOpts))
	return cmd
}

func newProductAddCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &productFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Long: `Add a product to the catalog.

The category must already exist. When --barcode is omitted a SKU is
generated, matching the pre-filled barcode of the product form.

Example:
  primal product add --name "Gel Pen" --category Stationery --stock 40 --price 12.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openAuthedSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			if flags.Barcode == "" {
				flags.Barcode = store.SuggestBarcode()
			}
			p, err := s.handler.AddProduct(cmd.Context(), flags.input())
			if err != nil {
				return out.Fail(err)
			}
			return out.SuccessText(fmt.Sprintf("added product %s (%s)", p.Name, p.ID), p)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newProductUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &productFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a product in place, preserving its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openAuthedSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			p, err := s.handler.UpdateProduct(cmd.Context(), args[0], flags.input())
			if err != nil {
				return out.Fail(err)
			}
			return out.SuccessText(fmt.Sprintf("updated product %s", p.Name), p)
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("barcode")
	return cmd
}

func newProductDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openAuthedSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.handler.RemoveProduct(cmd.Context(), args[0]); err != nil {
				return out.Fail(err)
			}
			return out.SuccessText("deleted product "+args[0], map[string]string{"id": args[0]})
		},
	}
	return cmd
}

func newProductListCommand(rootOpts *RootOptions) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered by a search query",
		Long: `List products in catalog order.

With --search, only products whose name, barcode, or brand contains the
query (case-insensitive) are shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			state := s.handler.Store().Snapshot()
			products := view.FilteredProducts(state, search)
			return out.SuccessText(formatProductTable(products, state.Settings), products)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name, barcode, or brand")
	return cmd
}

// formatProductTable renders the product listing as an aligned table.
func formatProductTable(products []model.Product, settings model.Settings) string {
	if len(products) == 0 {
		return "No products found"
	}
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBRAND\tCATEGORY\tBARCODE\tSTOCK\tPRICE")
	for _, p := range products {
		brand := p.Brand
		if brand == "" {
			brand = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s%s\n",
			p.ID, p.Name, brand, p.Category, p.Barcode, p.Stock,
			settings.Currency, p.Price.StringFixed(2))
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}
