//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"panel/internal/credstore"
	"panel/internal/gateway/rest"
	"panel/internal/pkg/config"
	"panel/internal/pkg/term"
	"panel/internal/session"
	"panel/pkg/logger"
)

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	client *rest.Client,
	bus *session.InvalidationBus,
	store *credstore.Store,
	terminal *term.Terminal,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideAuthGateway,
		provideAssignmentGateway,
		provideIncidentGateway,
		provideRouteGateway,
		provideStockGateway,
		provideDashboardGateway,

		provideSessionController,
		provideManifestWriter,

		provideAssignmentService,
		provideIncidentService,
		provideRouteService,
		provideStockService,

		provideAssignmentsView,
		provideMiniView,
		provideHomeView,
		provideIncidentsView,
		provideRoutesView,
		provideStockView,

		provideProbe,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
