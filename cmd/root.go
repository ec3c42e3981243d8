package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/retainops/churnview/internal/chart"
	"github.com/retainops/churnview/internal/config"
	"github.com/retainops/churnview/internal/fetch"
	"github.com/retainops/churnview/internal/format"
	"github.com/retainops/churnview/internal/page"
	"github.com/retainops/churnview/internal/render"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "churnview",
	Short: "Churn analytics dashboard client",
	Long:  "Fetches churn metrics from the analytics backend and renders KPI tiles, customer tables and charts; submits single-customer scoring requests.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newController assembles the fetch client, formatter and terminal surface
// for one page load.
func newController() (*page.Controller, error) {
	fm, err := format.New(cfg.Render.Locale)
	if err != nil {
		return nil, err
	}

	client := fetch.NewClient(cfg.API.BaseURL(),
		fetch.WithTimeout(time.Duration(cfg.API.TimeoutSecs)*time.Second),
	)
	surface := render.NewTerm(os.Stdout)
	charts := chart.NewRegistry(chart.NewTermSink(os.Stdout))

	return page.New(client, surface, charts, fm), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
