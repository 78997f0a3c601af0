package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/arcsportszone/ARC-BookingService/pkg/dbmetrics"
	"github.com/arcsportszone/ARC-BookingService/pkg/txmanager"
)

// sqlBeginner адаптирует *sql.DB к txmanager.TxBeginner
// (используется, когда метрики выключены и обёртка dbmetrics.DB не нужна)
type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}

// NewTransactionManager создает менеджер транзакций над голым *sql.DB
func NewTransactionManager(db *sql.DB, opts ...txmanager.Option) *txmanager.TransactionManager {
	return txmanager.NewTransactionManager(sqlBeginner{db: db}, opts...)
}
