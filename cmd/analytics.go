package main

import (
	"github.com/spf13/cobra"

	"github.com/retainops/churnview/internal/page"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Render risk distribution, segments and business KPIs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := newController()
		if err != nil {
			return err
		}
		return ctrl.Load(cmd.Context(), page.RouteAnalytics)
	},
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
}
