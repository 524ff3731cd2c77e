//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routes_test
package routes

import (
	"context"

	"panel/internal/entities"
)

type Service interface {
	Plan(ctx context.Context, originAddr, destinationAddr string) (*entities.RoutePlan, error)
	Recent(ctx context.Context, limit int) ([]entities.RouteRecord, error)
	DeleteRecent(ctx context.Context, id int64) error
}
