//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=miniassignments_test
package miniassignments

import (
	"context"

	"panel/internal/entities"
)

type Service interface {
	Recent(ctx context.Context, limit int) ([]entities.Assignment, error)
	Edit(ctx context.Context, id int64, modify entities.AssignmentModify) error
	Delete(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64) error
}
