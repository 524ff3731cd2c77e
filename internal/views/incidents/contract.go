//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=incidents_test
package incidents

import (
	"context"

	"panel/internal/entities"
)

type Service interface {
	List(ctx context.Context, limit int) ([]entities.Incident, error)
	Register(ctx context.Context, draft entities.IncidentDraft) (*entities.Incident, error)
	Delete(ctx context.Context, id int64) error
}
