//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_test
package route

import (
	"context"

	"panel/internal/entities"
	"panel/pkg/logger"
)

type Gateway interface {
	Geocode(ctx context.Context, address string) (entities.Location, error)
	Optimize(ctx context.Context, originText, destinationText string, origin, destination entities.Location) (*entities.RoutePlan, error)
	Recent(ctx context.Context, limit int) ([]entities.RouteRecord, error)
	DeleteRecent(ctx context.Context, id int64) error
}

type Sessions interface {
	Current() (entities.Session, bool)
}

type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
}
