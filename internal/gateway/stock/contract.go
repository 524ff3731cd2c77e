//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stock_test
package stock

import "context"

type doer interface {
	Do(ctx context.Context, method, path string, body, out any) error
}
