// Package page wires routes to their fetch and render pipelines. Each
// route's pipelines run concurrently and independently: there is no join
// barrier beyond waiting for the pass to finish, and one source's failure
// never blocks or corrupts another's widgets.
package page

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/retainops/churnview/internal/aggregate"
	"github.com/retainops/churnview/internal/chart"
	"github.com/retainops/churnview/internal/fetch"
	"github.com/retainops/churnview/internal/format"
	"github.com/retainops/churnview/internal/render"
	"github.com/retainops/churnview/internal/risk"
)

// Route selects which pipelines a load pass runs.
type Route string

const (
	RouteDashboard Route = "dashboard"
	RouteCustomers Route = "customers"
	RouteAnalytics Route = "analytics"
)

// Controller orchestrates one render pass per Load call.
type Controller struct {
	client  fetch.Client
	surface render.Surface
	charts  *chart.Registry
	fm      *format.Formatter
}

// New creates a controller rendering into the given surface and chart
// registry.
func New(client fetch.Client, surface render.Surface, charts *chart.Registry, fm *format.Formatter) *Controller {
	return &Controller{client: client, surface: surface, charts: charts, fm: fm}
}

type pipeline struct {
	name string
	run  func(ctx context.Context) error
}

func (c *Controller) pipelinesFor(route Route) []pipeline {
	switch route {
	case RouteDashboard:
		return []pipeline{
			{name: "summary", run: c.loadSummary},
			{name: "priority_customers", run: c.loadPriorityCustomers},
		}
	case RouteCustomers:
		return []pipeline{
			{name: "customers", run: c.loadCustomers},
		}
	case RouteAnalytics:
		return []pipeline{
			{name: "risk_distribution", run: c.loadRiskDistribution},
			{name: "segments", run: c.loadSegments},
			{name: "kpis", run: c.loadKPIReport},
		}
	default:
		return nil
	}
}

// Load runs every pipeline of the route. Pipelines that fail render their
// neutral zero-value widgets and trip the error banner; the banner is
// hidden again only by a fully successful load of the same route. Load
// returns an error only for an unknown route; a degraded pass is still a
// rendered pass.
func (c *Controller) Load(ctx context.Context, route Route) error {
	pipelines := c.pipelinesFor(route)
	if pipelines == nil {
		return eris.Errorf("page: unknown route %q", route)
	}

	log := zap.L().With(
		zap.String("route", string(route)),
		zap.String("run_id", uuid.NewString()),
	)

	g, gctx := errgroup.WithContext(ctx)
	var failed atomic.Int64

	for _, p := range pipelines {
		g.Go(func() error {
			if err := p.run(gctx); err != nil {
				failed.Add(1)
				log.Warn("pipeline failed, rendered neutral defaults",
					zap.String("pipeline", p.name),
					zap.Error(err),
				)
				return nil // an individual source never aborts the pass
			}
			log.Info("pipeline rendered", zap.String("pipeline", p.name))
			return nil
		})
	}
	_ = g.Wait()

	if failed.Load() > 0 {
		c.surface.ShowBanner(render.BannerMessage)
	} else {
		c.surface.HideBanner()
	}
	return nil
}

func (c *Controller) loadSummary(ctx context.Context) error {
	// Zero-value summary still renders so the tiles show neutral defaults.
	summary, err := c.client.Summary(ctx)
	c.surface.SetText(render.TargetTotalPredictions, c.fm.Count(summary.TotalPredictions))
	c.surface.SetText(render.TargetAvgChurn, c.fm.Percent(summary.AvgChurnProbability, 2))
	c.surface.SetText(render.TargetHighRisk, c.fm.Count(summary.HighRiskCustomers))
	c.surface.SetText(render.TargetRevenueRisk, c.fm.Currency(summary.TotalRevenueAtRisk))
	return err
}

func (c *Controller) loadPriorityCustomers(ctx context.Context) error {
	records, err := c.client.PriorityCustomers(ctx)
	summary := aggregate.Aggregate(records)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		badge := risk.Classify(rec)
		rows = append(rows, []string{
			rec.CustomerID,
			badge.Label,
			c.fm.PercentFromFraction(rec.ChurnProbability, 1),
			c.fm.Currency(rec.ExpectedRevenueLoss),
			c.fm.Score(rec.PriorityScore),
		})
	}
	c.surface.SetTable(render.TargetCustomerTable,
		[]string{"Customer", "Risk", "Churn", "Expected Loss", "Priority"}, rows)

	if cerr := c.charts.Render(render.TargetRiskChart, chart.RiskDoughnut(summary.Tally)); cerr != nil && err == nil {
		err = cerr
	}
	if cerr := c.charts.Render(render.TargetPriorityChart, chart.PriorityBar(summary.Names, summary.PriorityScores)); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (c *Controller) loadCustomers(ctx context.Context) error {
	records, err := c.client.Customers(ctx)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		badge := risk.Classify(rec)
		rows = append(rows, []string{
			rec.CustomerID,
			badge.Label,
			c.fm.PercentFromFraction(rec.ChurnProbability, 1),
			c.fm.Currency(rec.ExpectedRevenueLoss),
		})
	}
	c.surface.SetTable(render.TargetCustomerTable,
		[]string{"Customer", "Risk", "Churn", "Expected Loss"}, rows)
	return err
}

func (c *Controller) loadRiskDistribution(ctx context.Context) error {
	entries, err := c.client.RiskDistribution(ctx)
	if cerr := c.charts.Render(render.TargetRiskChart, chart.DistributionDoughnut(entries)); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (c *Controller) loadSegments(ctx context.Context) error {
	entries, err := c.client.Segments(ctx)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.SegmentValue,
			c.fm.PercentFromFraction(e.ChurnRate, 1),
		})
	}
	c.surface.SetTable(render.TargetSegmentTable, []string{"Segment", "Churn Rate"}, rows)

	if cerr := c.charts.Render(render.TargetSegmentChart, chart.SegmentBar(entries)); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func (c *Controller) loadKPIReport(ctx context.Context) error {
	report, err := c.client.KPIReport(ctx)
	c.surface.SetText(render.TargetTotalRevenue, c.fm.Currency(report.TotalRevenue))
	c.surface.SetText(render.TargetRevenueRisk, c.fm.Currency(report.RevenueAtRisk))
	c.surface.SetText(render.TargetHighRiskPct, c.fm.Percent(report.HighRiskPct, 1))

	if cerr := c.charts.Render(render.TargetGaugeChart, chart.GaugeChart(aggregate.Gauge(report.ChurnRatePct))); cerr != nil && err == nil {
		err = cerr
	}
	return err
}
