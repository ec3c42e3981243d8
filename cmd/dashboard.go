package main

import (
	"github.com/spf13/cobra"

	"github.com/retainops/churnview/internal/page"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render the KPI tiles and priority customer view",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := newController()
		if err != nil {
			return err
		}
		return ctrl.Load(cmd.Context(), page.RouteDashboard)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
