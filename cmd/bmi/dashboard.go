package main

import (
	"encoding/json"
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/yusufkecer/body-metrics-calculator/internal/service"
	"github.com/yusufkecer/body-metrics-calculator/internal/ui/render"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render the synthetic sales dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetUint64("seed")
		days, _ := cmd.Flags().GetInt("days")
		asJSON, _ := cmd.Flags().GetBool("json")
		if days <= 0 {
			return fmt.Errorf("--days must be positive, got %d", days)
		}

		d := service.NewDashboardService(seed, days).Generate(time.Now())

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d)
		}
		_, err := lipgloss.Fprintln(cmd.OutOrStdout(), render.Dashboard(d))
		return err
	},
}

func init() {
	dashboardCmd.Flags().Uint64("seed", service.DefaultDashboardSeed, "Random seed for the generated data")
	dashboardCmd.Flags().Int("days", service.DefaultDashboardDays, "Number of days in the time series")
	dashboardCmd.Flags().Bool("json", false, "Print the dashboard data as JSON")
}
