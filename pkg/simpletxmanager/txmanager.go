// Package simpletxmanager менеджер транзакций поверх чистого *sql.DB,
// для сборки без метрик. Семантика совпадает с pkg/txmanager.
package simpletxmanager

import (
	"context"
	"database/sql"

	"github.com/GCN-Platform/GCN-BookingService/pkg/dbmetrics"
	"github.com/GCN-Platform/GCN-BookingService/pkg/txmanager"
)

// TransactionManager менеджер транзакций без метрик
type TransactionManager struct {
	*txmanager.TransactionManager
}

// NewTransactionManager создает менеджер транзакций поверх *sql.DB
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{
		TransactionManager: txmanager.NewTransactionManager(&plainBeginner{db: db}),
	}
}

// plainBeginner адаптирует *sql.DB под txmanager.TxBeginner
type plainBeginner struct {
	db *sql.DB
}

func (b *plainBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := b.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &dbmetrics.SqlTxWrapper{Tx: tx}, nil
}
