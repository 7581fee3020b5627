package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/stock"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/visit"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// Pastikan TxRunner memenuhi stock.TxRunner dan visit.TxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ visit.TxRunner = (*TxRunner)(nil)

// TxRunner menjalankan callback di dalam satu transaksi PostgreSQL dengan
// repositori yang terikat ke transaksi itu. Lock baris (SELECT FOR UPDATE)
// yang diambil repositori dilepas saat Commit atau Rollback.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner membangun runner di atas pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run transaksi untuk operasi ledger stok (penyesuaian gudang).
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	warehouseStockRepo repository.ProductStockRepository,
	salesStockRepo repository.SalesStockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewStockMovementRepository(tx),
		NewProductStockRepository(tx),
		NewSalesStockRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVisit transaksi untuk pembuatan kunjungan beserta efek stoknya.
func (r *TxRunner) RunVisit(ctx context.Context, fn func(
	visitRepo repository.SalesVisitRepository,
	customerRepo repository.CustomerRepository,
	movRepo repository.StockMovementRepository,
	salesStockRepo repository.SalesStockRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewSalesVisitRepository(tx),
		NewCustomerRepository(tx),
		NewStockMovementRepository(tx),
		NewSalesStockRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
