//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import "context"

type doer interface {
	Do(ctx context.Context, method, path string, body, out any) error
}
