package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carelinkhq/carectl/internal/model"
)

func newDashboardCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the marketplace overview metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runDashboard(jsonOutput bool) error {
	store, err := openSessionStore()
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	if _, err := requireSession(ctx, store); err != nil {
		return err
	}

	client := newAPIClient(store)
	env, err := client.Dashboard(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(env.Data)
	}

	m := env.Data
	fmt.Printf("%-20s %12s %10s %-6s\n", "METRIC", "VALUE", "CHANGE", "TREND")
	fmt.Printf("%-20s %12s %10s %-6s\n", "------", "-----", "------", "-----")
	printMetric("Caregivers", m.TotalCaregivers)
	printMetric("Care seekers", m.TotalCareSeekers)
	printMetric("Bookings", m.TotalBookings)
	printMetric("Revenue", m.TotalRevenue)
	printMetric("Pending KYC", m.PendingKYC)
	printMetric("Open reports", m.OpenReports)

	return nil
}

func printMetric(label string, m model.Metric) {
	fmt.Printf("%-20s %12.0f %9.1f%% %-6s\n", label, m.Value, m.ChangePct, m.Trend())
}
