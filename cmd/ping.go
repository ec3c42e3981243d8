package main

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/retainops/churnview/internal/fetch"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test the backend connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := fetch.NewClient(cfg.API.BaseURL(),
			fetch.WithTimeout(time.Duration(cfg.API.TimeoutSecs)*time.Second),
		)
		if err := client.Health(cmd.Context()); err != nil {
			return eris.Wrap(err, "backend not responding")
		}
		fmt.Printf("connection ok: %s\n", cfg.API.BaseURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
