//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"

	"panel/internal/entities"
	"panel/pkg/logger"
)

type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*entities.Session, error)
}

type CredentialStore interface {
	Save(session *entities.Session) error
	Load() (*entities.Session, error)
	Clear() error
}

type controllerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
