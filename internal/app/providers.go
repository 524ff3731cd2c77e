package app

import (
	"context"
	"time"

	assignmentGateway "panel/internal/gateway/assignment"
	authGateway "panel/internal/gateway/auth"
	dashboardGateway "panel/internal/gateway/dashboard"
	incidentGateway "panel/internal/gateway/incident"
	"panel/internal/gateway/rest"
	routeGateway "panel/internal/gateway/route"
	stockGateway "panel/internal/gateway/stock"

	"panel/internal/credstore"
	"panel/internal/handlers/tasks/dashboard_refresh"
	"panel/internal/pkg/apiprobe"
	"panel/internal/pkg/config"
	"panel/internal/pkg/manifest"
	"panel/internal/pkg/term"
	"panel/internal/session"

	assignmentService "panel/internal/service/assignment"
	incidentService "panel/internal/service/incident"
	routeService "panel/internal/service/route"
	stockService "panel/internal/service/stock"

	assignmentsView "panel/internal/views/assignments"
	homeView "panel/internal/views/home"
	incidentsView "panel/internal/views/incidents"
	miniView "panel/internal/views/miniassignments"
	routesView "panel/internal/views/routes"
	stockView "panel/internal/views/stock"

	"panel/pkg/background"
	"panel/pkg/logger"
)

const kpiCallbackTimeout = 10 * time.Second

// Application bundles everything the interactive loop needs.
type Application struct {
	Sessions          *session.Controller
	AssignmentService *assignmentService.Assignment
	Home              *homeView.View
	Assignments       *assignmentsView.View
	Mini              *miniView.View
	Incidents         *incidentsView.View
	Routes            *routesView.View
	Stock             *stockView.View
	Probe             *apiprobe.Probe
	BackgroundWorkers *background.Worker
}

func provideAuthGateway(client *rest.Client) *authGateway.AuthGateway {
	return authGateway.New(client)
}

func provideAssignmentGateway(client *rest.Client) *assignmentGateway.AssignmentGateway {
	return assignmentGateway.New(client)
}

func provideIncidentGateway(client *rest.Client) *incidentGateway.IncidentGateway {
	return incidentGateway.New(client)
}

func provideRouteGateway(client *rest.Client) *routeGateway.RouteGateway {
	return routeGateway.New(client)
}

func provideStockGateway(client *rest.Client) *stockGateway.StockGateway {
	return stockGateway.New(client)
}

func provideDashboardGateway(client *rest.Client) *dashboardGateway.DashboardGateway {
	return dashboardGateway.New(client)
}

func provideSessionController(
	gateway *authGateway.AuthGateway,
	store *credstore.Store,
	bus *session.InvalidationBus,
	log logger.Logger,
) *session.Controller {
	return session.New(gateway, store, bus, log)
}

func provideManifestWriter(cfg *config.Config) *manifest.Writer {
	return manifest.New(cfg.Manifest.Dir)
}

func provideAssignmentService(
	gateway *assignmentGateway.AssignmentGateway,
	sessions *session.Controller,
	terminal *term.Terminal,
	writer *manifest.Writer,
	log logger.Logger,
) *assignmentService.Assignment {
	return assignmentService.New(gateway, sessions, terminal, writer, log)
}

func provideIncidentService(
	gateway *incidentGateway.IncidentGateway,
	geocoder *routeGateway.RouteGateway,
	sessions *session.Controller,
	terminal *term.Terminal,
	log logger.Logger,
) *incidentService.Incident {
	return incidentService.New(gateway, geocoder, sessions, terminal, log)
}

func provideRouteService(
	gateway *routeGateway.RouteGateway,
	sessions *session.Controller,
	terminal *term.Terminal,
	log logger.Logger,
) *routeService.Route {
	return routeService.New(gateway, sessions, terminal, log)
}

func provideStockService(
	gateway *stockGateway.StockGateway,
	sessions *session.Controller,
) *stockService.Stock {
	return stockService.New(gateway, sessions)
}

func provideAssignmentsView(svc *assignmentService.Assignment, log logger.Logger) *assignmentsView.View {
	return assignmentsView.New(svc, log)
}

func provideMiniView(svc *assignmentService.Assignment, cfg *config.Config) *miniView.View {
	return miniView.New(svc, cfg.Dashboard.RecentLimit, nil)
}

// provideHomeView composes the dashboard around the assignments widget and
// wires the widget's change callback back to the KPI cards.
func provideHomeView(
	kpis *dashboardGateway.DashboardGateway,
	incidents *incidentService.Incident,
	routes *routeService.Route,
	mini *miniView.View,
	log logger.Logger,
) *homeView.View {
	view := homeView.New(kpis, incidents, routes, mini, log)
	mini.SetOnChanged(func() {
		ctx, cancel := context.WithTimeout(context.Background(), kpiCallbackTimeout)
		defer cancel()
		view.RefreshKPIs(ctx)
	})
	return view
}

func provideIncidentsView(svc *incidentService.Incident) *incidentsView.View {
	return incidentsView.New(svc)
}

func provideRoutesView(svc *routeService.Route) *routesView.View {
	return routesView.New(svc)
}

func provideStockView(svc *stockService.Stock) *stockView.View {
	return stockView.New(svc)
}

func provideProbe(client *rest.Client) *apiprobe.Probe {
	return apiprobe.New(client)
}

func provideTaskList(home *homeView.View, cfg *config.Config) []background.Task {
	if cfg.Dashboard.WarmupInterval <= 0 {
		return nil
	}
	return []background.Task{
		dashboard_refresh.NewDashboardRefresh(home, cfg.Dashboard.WarmupInterval),
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
