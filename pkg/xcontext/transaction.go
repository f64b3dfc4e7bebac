package xcontext

import (
	"context"

	"gorm.io/gorm"
)

type txHolder struct {
	tx *gorm.DB
}

// WithDBTransaction begins a database transaction. Until it is committed or
// rolled back, DB returns the transaction instead of the shared handle.
func WithDBTransaction(ctx context.Context) context.Context {
	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		return ctx
	}

	return context.WithValue(ctx, txKey{}, &txHolder{tx: db.Begin()})
}

func WithCommitDBTransaction(ctx context.Context) context.Context {
	if holder, ok := ctx.Value(txKey{}).(*txHolder); ok && holder.tx != nil {
		holder.tx.Commit()
		holder.tx = nil
	}

	return ctx
}

// WithRollbackDBTransaction is a no-op if the transaction was already
// committed, so it is safe to defer right after WithDBTransaction.
func WithRollbackDBTransaction(ctx context.Context) context.Context {
	if holder, ok := ctx.Value(txKey{}).(*txHolder); ok && holder.tx != nil {
		holder.tx.Rollback()
		holder.tx = nil
	}

	return ctx
}
