//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=home_test
package home

import (
	"context"

	"panel/internal/entities"
	"panel/pkg/logger"
)

type KPISource interface {
	KPIs(ctx context.Context) (*entities.KPIReport, error)
}

type IncidentLister interface {
	List(ctx context.Context, limit int) ([]entities.Incident, error)
}

type RouteLister interface {
	Recent(ctx context.Context, limit int) ([]entities.RouteRecord, error)
}

type MiniWidget interface {
	Reload(ctx context.Context) error
}

type viewLogger interface {
	Warn(msg string, fields ...logger.Field)
}
