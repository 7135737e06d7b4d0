package main

import (
	"github.com/spf13/cobra"

	"github.com/yusufkecer/body-metrics-calculator/internal/service"
	"github.com/yusufkecer/body-metrics-calculator/internal/ui/form"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Interactive calculator that updates as you type",
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, _ := cmd.Flags().GetString("weight")
		height, _ := cmd.Flags().GetString("height")
		return form.Run(service.NewBMIService(), weight, height)
	},
}

func init() {
	formCmd.Flags().StringP("weight", "w", "", "Prefill weight in kilograms")
	formCmd.Flags().StringP("height", "H", "", "Prefill height in meters")
}
