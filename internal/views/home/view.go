// Package home is the dashboard surface: KPI cards, the recent incidents
// and routes tables, and the embedded recent-assignments widget. Refresh
// fans the four fetches out concurrently; a failed section renders empty
// while the rest of the page stays live.
package home

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"panel/internal/entities"
	"panel/pkg/logger"
)

const recentLimit = 3

type View struct {
	mu        sync.Mutex
	kpis      KPISource
	incidents IncidentLister
	routes    RouteLister
	mini      MiniWidget
	log       viewLogger

	kpi             entities.KPIReport
	recentIncidents []entities.Incident
	recentRoutes    []entities.RouteRecord
}

func New(kpis KPISource, incidents IncidentLister, routes RouteLister, mini MiniWidget, log viewLogger) *View {
	return &View{
		kpis:      kpis,
		incidents: incidents,
		routes:    routes,
		mini:      mini,
		log:       log,
		kpi:       entities.KPIReport{SLACompliance: "N/A"},
	}
}

// Refresh reloads every section concurrently. Section failures are logged
// and leave that section empty; Refresh itself only fails on context
// cancellation.
func (v *View) Refresh(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		report, err := v.kpis.KPIs(groupCtx)
		if err != nil {
			v.log.Warn("refresh kpis", logger.NewField("error", err))
			return nil
		}
		v.mu.Lock()
		v.kpi = *report
		v.mu.Unlock()
		return nil
	})

	group.Go(func() error {
		items, err := v.incidents.List(groupCtx, recentLimit)
		if err != nil {
			v.log.Warn("refresh recent incidents", logger.NewField("error", err))
			items = nil
		}
		v.mu.Lock()
		v.recentIncidents = items
		v.mu.Unlock()
		return nil
	})

	group.Go(func() error {
		items, err := v.routes.Recent(groupCtx, recentLimit)
		if err != nil {
			v.log.Warn("refresh recent routes", logger.NewField("error", err))
			items = nil
		}
		v.mu.Lock()
		v.recentRoutes = items
		v.mu.Unlock()
		return nil
	})

	group.Go(func() error {
		if err := v.mini.Reload(groupCtx); err != nil {
			v.log.Warn("refresh recent assignments", logger.NewField("error", err))
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// RefreshKPIs reloads only the KPI cards. The embedded assignments widget
// calls this after a mutation, since assignment state feeds the numbers.
func (v *View) RefreshKPIs(ctx context.Context) {
	report, err := v.kpis.KPIs(ctx)
	if err != nil {
		v.log.Warn("refresh kpis", logger.NewField("error", err))
		return
	}
	v.mu.Lock()
	v.kpi = *report
	v.mu.Unlock()
}

func (v *View) KPI() entities.KPIReport {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.kpi
}

func (v *View) RecentIncidents() []entities.Incident {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := make([]entities.Incident, len(v.recentIncidents))
	copy(items, v.recentIncidents)
	return items
}

func (v *View) RecentRoutes() []entities.RouteRecord {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := make([]entities.RouteRecord, len(v.recentRoutes))
	copy(items, v.recentRoutes)
	return items
}
