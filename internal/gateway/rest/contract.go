//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rest_test
package rest

import "panel/pkg/logger"

type clientLogger interface {
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// credentialSource yields the bearer credential attached to outbound calls
// and clears it when the server reports it invalid.
type credentialSource interface {
	Token() (string, bool)
	Clear() error
}

// invalidationSink receives the session-invalidation signal. The session
// lifecycle controller binds itself to it exactly once per process.
type invalidationSink interface {
	Publish(reason string)
}
