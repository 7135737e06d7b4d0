package main

import (
	"encoding/json"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/yusufkecer/body-metrics-calculator/internal/domain"
	"github.com/yusufkecer/body-metrics-calculator/internal/service"
	"github.com/yusufkecer/body-metrics-calculator/internal/ui/render"
)

var calcCmd = &cobra.Command{
	Use:     "calc",
	Short:   "Compute and classify a body-mass index",
	Example: "  bmi calc --weight 70 --height 1.75",
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, _ := cmd.Flags().GetFloat64("weight")
		height, _ := cmd.Flags().GetFloat64("height")
		asJSON, _ := cmd.Flags().GetBool("json")

		report := service.NewBMIService().Evaluate(domain.Measurement{Weight: weight, Height: height})

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}
		_, err := lipgloss.Fprintln(cmd.OutOrStdout(), render.Report(report))
		return err
	},
}

func init() {
	calcCmd.Flags().Float64P("weight", "w", 0, "Weight in kilograms")
	calcCmd.Flags().Float64P("height", "H", 0, "Height in meters")
	calcCmd.Flags().Bool("json", false, "Print the report as JSON")
}
