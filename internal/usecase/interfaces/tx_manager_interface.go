package interfaces

import "context"

// ITxManager runs fn inside a single database transaction. Repositories
// called with the derived context join that transaction; any error returned
// by fn rolls the whole transaction back.
//
// Every mutation with a side-effect creation (quote-accept → order,
// order-complete → bill) must go through WithinTx so a failed downstream
// insert can never leave the primary entity silently updated.

type ITxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
