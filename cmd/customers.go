package main

import (
	"github.com/spf13/cobra"

	"github.com/retainops/churnview/internal/page"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Render the customer list",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := newController()
		if err != nil {
			return err
		}
		return ctrl.Load(cmd.Context(), page.RouteCustomers)
	},
}

func init() {
	rootCmd.AddCommand(customersCmd)
}
