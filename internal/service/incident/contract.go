//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=incident_test
package incident

import (
	"context"

	"panel/internal/entities"
	"panel/pkg/logger"
)

type Gateway interface {
	List(ctx context.Context, limit int) ([]entities.Incident, error)
	Register(ctx context.Context, draft entities.IncidentDraft, loc entities.Location) (*entities.Incident, error)
	Delete(ctx context.Context, id int64) error
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (entities.Location, error)
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
