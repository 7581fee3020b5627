package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

var _ repository.ProductStockRepository = (*ProductStockRepo)(nil)

// ProductStockRepo implementasi ProductStockRepository di PostgreSQL
// (bisa dipakai dengan pool atau tx).
type ProductStockRepo struct {
	q Querier
}

// NewProductStockRepository membangun adapter stok gudang. Berikan pool atau tx (Querier).
func NewProductStockRepository(q Querier) *ProductStockRepo {
	return &ProductStockRepo{q: q}
}

// Get membaca stok sebuah produk di sebuah gudang; nil jika barisnya belum ada.
func (r *ProductStockRepo) Get(productID, warehouseID string) (*entity.ProductStock, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM product_stocks WHERE product_id = $1 AND warehouse_id = $2`
	var s entity.ProductStock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ID, &s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product stock: %w", err)
	}
	return &s, nil
}

// GetOrCreateForUpdate membuat baris kuantitas 0 jika belum ada, lalu membaca
// ulang dengan SELECT FOR UPDATE supaya baris terkunci sampai transaksi
// selesai. Wajib dipanggil dari dalam transaksi.
func (r *ProductStockRepo) GetOrCreateForUpdate(productID, warehouseID string) (*entity.ProductStock, error) {
	insert := `
		INSERT INTO product_stocks (id, product_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, 0, now())
		ON CONFLICT (product_id, warehouse_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, uuid.New().String(), productID, warehouseID); err != nil {
		return nil, fmt.Errorf("ensure product stock row: %w", err)
	}

	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM product_stocks WHERE product_id = $1 AND warehouse_id = $2
		FOR UPDATE`
	var s entity.ProductStock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID).Scan(
		&s.ID, &s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("lock product stock: %w", err)
	}
	return &s, nil
}

// SetQuantity menulis kuantitas baris yang sedang terkunci.
func (r *ProductStockRepo) SetQuantity(id string, quantity int64, at time.Time) error {
	query := `UPDATE product_stocks SET quantity = $2, updated_at = $3 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity, at)
	if err != nil {
		return fmt.Errorf("set product stock quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("set product stock quantity: baris %s tidak ada", id)
	}
	return nil
}

// ListByWarehouse daftar stok per produk di sebuah gudang.
func (r *ProductStockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.ProductStock, error) {
	query := `
		SELECT id, product_id, warehouse_id, quantity, updated_at
		FROM product_stocks WHERE warehouse_id = $1
		ORDER BY product_id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list product stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductStock
	for rows.Next() {
		var s entity.ProductStock
		if err := rows.Scan(&s.ID, &s.ProductID, &s.WarehouseID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
