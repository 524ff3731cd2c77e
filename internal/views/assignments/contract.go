//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignments_test
package assignments

import (
	"context"

	"panel/internal/entities"
	"panel/pkg/logger"
)

type Service interface {
	List(ctx context.Context) ([]entities.Assignment, error)
	Create(ctx context.Context, draft entities.AssignmentDraft) (*entities.Assignment, error)
	Delete(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64) error
}

type viewLogger interface {
	Warn(msg string, fields ...logger.Field)
}
