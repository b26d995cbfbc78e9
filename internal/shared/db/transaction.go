// Package db carries shared database plumbing, most notably the
// transaction-in-context helpers used by the use case layer.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey keys the active *gorm.DB transaction inside a context.
type txKey struct{}

// TransactionManager wraps a gorm handle and runs callbacks inside a
// single transaction propagated through the context.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction opens a transaction, stores it in the context handed
// to fn, and commits when fn returns nil. Any error from fn rolls the
// whole transaction back.
func (m *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// GetTx returns the transaction carried by ctx, falling back to the
// manager's base handle when no transaction is in flight.
func (m *TransactionManager) GetTx(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return m.db.WithContext(ctx)
}

// GetTxFromContext is the repository-side counterpart of GetTx: it lets
// a repository join an ambient transaction without holding a manager.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
