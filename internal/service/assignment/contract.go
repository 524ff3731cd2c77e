//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"panel/internal/entities"
	"panel/pkg/logger"
)

type Gateway interface {
	List(ctx context.Context) ([]entities.Assignment, error)
	Recent(ctx context.Context, limit int) ([]entities.Assignment, error)
	Create(ctx context.Context, draft entities.AssignmentDraft) (*entities.Assignment, error)
	Update(ctx context.Context, id int64, modify entities.AssignmentModify) error
	Delete(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64) error
}

type Sessions interface {
	Current() (entities.Session, bool)
}

// Confirmer answers destructive-action prompts. The terminal front-end backs
// it with a y/N question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ManifestWriter renders delivery manifests to local documents.
type ManifestWriter interface {
	WriteAssignments(items []entities.Assignment) (string, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
