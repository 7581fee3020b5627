package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementasi StockMovementRepository di PostgreSQL.
// Tabelnya append-only: tidak ada UPDATE atau DELETE di sini.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository membangun adapter mutasi stok. Berikan pool atau tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, product_id, warehouse_id, sales_visit_id, user_id, type, quantity, reference, note, created_by, created_at`

// Create menulis satu baris mutasi.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, m.WarehouseID, m.SalesVisitID, m.UserID,
		m.Type, m.Quantity, m.Reference, m.Note, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByProduct daftar mutasi sebuah produk dalam rentang tanggal.
func (r *StockMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE product_id = $1`
	return r.list(query, productID, from, to, limit, offset)
}

// ListByWarehouse daftar mutasi sebuah gudang dalam rentang tanggal.
func (r *StockMovementRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE warehouse_id = $1`
	return r.list(query, warehouseID, from, to, limit, offset)
}

// ListByVisit daftar mutasi yang dipicu sebuah kunjungan.
func (r *StockMovementRepo) ListByVisit(salesVisitID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE sales_visit_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, salesVisitID)
	if err != nil {
		return nil, fmt.Errorf("list movements by visit: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func (r *StockMovementRepo) list(base string, key string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := base
	args := []any{key}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.WarehouseID, &m.SalesVisitID, &m.UserID,
			&m.Type, &m.Quantity, &m.Reference, &m.Note, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
