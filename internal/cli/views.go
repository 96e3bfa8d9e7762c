package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/primalhq/primal/internal/view"
)

// Read-side commands: dashboard, stock forecast, activity feed. Each one
// takes a snapshot and runs a pure projection; nothing here mutates.

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show headline stats and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			stats := view.DashboardStats(s.handler.Store().Snapshot())

			var b strings.Builder
			fmt.Fprintf(&b, "Total Categories:  %d\n", stats.CategoryCount)
			fmt.Fprintf(&b, "Total Products:    %d\n", stats.ProductCount)
			fmt.Fprintf(&b, "Total Stock Items: %d\n", stats.TotalStockUnits)
			b.WriteString("\nRecent Activity\n")
			if len(stats.RecentLogs) == 0 {
				b.WriteString("  No recent activity\n")
			}
			for _, e := range stats.RecentLogs {
				fmt.Fprintf(&b, "  %s: %s (%s)\n", e.Action, e.Details, e.Timestamp)
			}
			return out.SuccessText(strings.TrimRight(b.String(), "\n"), stats)
		},
	}
}

// NewStockCommand creates the stock forecast command.
func NewStockCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stock",
		Short: "Show the low-stock forecast and inventory value",
		Long: `Show the stock forecast.

A product is low when its stock is at or below the configured threshold
(inclusive boundary). Inventory value totals price times stock over the
whole catalog.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			state := s.handler.Store().Snapshot()
			report := view.LowStockReport(state)

			var b strings.Builder
			fmt.Fprintf(&b, "Low Stock (At or Below %d): %d\n", report.Threshold, report.LowStockCount)
			fmt.Fprintf(&b, "Inventory Value: %s%s\n\n", state.Settings.Currency, report.InventoryValue.StringFixed(2))
			w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRODUCT\tBARCODE\tSTOCK\tSTATUS")
			for _, row := range report.Rows {
				status := "In Stock"
				if row.Low {
					status = "Low Stock"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", row.Product.Name, row.Product.Barcode, row.Product.Stock, status)
			}
			w.Flush()
			return out.SuccessText(strings.TrimRight(b.String(), "\n"), report)
		},
	}
}

// NewActivityCommand creates the activity feed command.
func NewActivityCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show the activity feed (newest first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newFormatter(rootOpts, cmd.OutOrStdout())
			s, err := openSession(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer s.close()

			logs := s.handler.Store().Snapshot().Logs
			if len(logs) == 0 {
				return out.SuccessText("No activity yet", logs)
			}
			var b strings.Builder
			for _, e := range logs {
				fmt.Fprintf(&b, "%s  [%s] %s: %s\n", e.Timestamp, e.Type, e.Action, e.Details)
			}
			return out.SuccessText(strings.TrimRight(b.String(), "\n"), logs)
		},
	}
}
