package repository

import "context"

// Repositories bundles the per-entity repositories bound to one database
// handle, either the shared pool or a single transaction.
type Repositories struct {
	Articles ArticleRepository
	Authors  AuthorRepository
	Keywords KeywordRepository
}

// TxManager runs a function inside one database transaction. The repositories
// passed to fn are bound to that transaction; every write they perform commits
// or rolls back as a unit. Returning an error from fn rolls the transaction
// back and the error is passed through unchanged.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
