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

var _ repository.SalesStockRepository = (*SalesStockRepo)(nil)

// SalesStockRepo implementasi SalesStockRepository di PostgreSQL
// (bisa dipakai dengan pool atau tx).
type SalesStockRepo struct {
	q Querier
}

// NewSalesStockRepository membangun adapter stok bawaan sales. Berikan pool atau tx (Querier).
func NewSalesStockRepository(q Querier) *SalesStockRepo {
	return &SalesStockRepo{q: q}
}

// Get membaca stok bawaan seorang sales untuk sebuah produk; nil jika belum ada.
func (r *SalesStockRepo) Get(userID, productID string) (*entity.SalesProductStock, error) {
	query := `
		SELECT id, user_id, product_id, quantity, updated_at
		FROM sales_product_stocks WHERE user_id = $1 AND product_id = $2`
	var s entity.SalesProductStock
	err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(
		&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales stock: %w", err)
	}
	return &s, nil
}

// GetOrCreateForUpdate membuat baris kuantitas 0 jika belum ada, lalu membaca
// ulang dengan SELECT FOR UPDATE. Wajib dipanggil dari dalam transaksi.
func (r *SalesStockRepo) GetOrCreateForUpdate(userID, productID string) (*entity.SalesProductStock, error) {
	insert := `
		INSERT INTO sales_product_stocks (id, user_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, 0, now())
		ON CONFLICT (user_id, product_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, uuid.New().String(), userID, productID); err != nil {
		return nil, fmt.Errorf("ensure sales stock row: %w", err)
	}

	query := `
		SELECT id, user_id, product_id, quantity, updated_at
		FROM sales_product_stocks WHERE user_id = $1 AND product_id = $2
		FOR UPDATE`
	var s entity.SalesProductStock
	err := r.q.QueryRow(context.Background(), query, userID, productID).Scan(
		&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("lock sales stock: %w", err)
	}
	return &s, nil
}

// SetQuantity menulis kuantitas baris yang sedang terkunci.
func (r *SalesStockRepo) SetQuantity(id string, quantity int64, at time.Time) error {
	query := `UPDATE sales_product_stocks SET quantity = $2, updated_at = $3 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, quantity, at)
	if err != nil {
		return fmt.Errorf("set sales stock quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("set sales stock quantity: baris %s tidak ada", id)
	}
	return nil
}

// ListByUser daftar seluruh stok yang sedang dibawa seorang sales.
func (r *SalesStockRepo) ListByUser(userID string) ([]*entity.SalesProductStock, error) {
	query := `
		SELECT id, user_id, product_id, quantity, updated_at
		FROM sales_product_stocks WHERE user_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list sales stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesProductStock
	for rows.Next() {
		var s entity.SalesProductStock
		if err := rows.Scan(&s.ID, &s.UserID, &s.ProductID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sales stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
