package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

var _ repository.SalesVisitRepository = (*SalesVisitRepo)(nil)

// SalesVisitRepo implementasi SalesVisitRepository di PostgreSQL.
type SalesVisitRepo struct {
	q Querier
}

func NewSalesVisitRepository(q Querier) *SalesVisitRepo {
	return &SalesVisitRepo{q: q}
}

const visitColumns = `id, user_id, customer_id, activity_type, latitude, longitude, file_path, note, visited_at, created_at`

// Create menyimpan kunjungan baru.
func (r *SalesVisitRepo) Create(v *entity.SalesVisit) error {
	query := `
		INSERT INTO sales_visits (` + visitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.UserID, v.CustomerID, v.ActivityType, v.Latitude, v.Longitude,
		v.PhotoPath, v.Note, v.VisitedAt, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales visit: %w", err)
	}
	return nil
}

// AttachProduct menempelkan satu baris produk ke kunjungan.
func (r *SalesVisitRepo) AttachProduct(line *entity.VisitProduct) error {
	query := `
		INSERT INTO sales_visit_products (id, sales_visit_id, product_id, quantity, unit_price, value, action, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SalesVisitID, line.ProductID, line.Quantity, line.UnitPrice,
		line.Value, line.Action, line.Note,
	)
	if err != nil {
		return fmt.Errorf("insert visit product: %w", err)
	}
	return nil
}

// GetByID mengambil satu kunjungan; nil jika tidak ada.
func (r *SalesVisitRepo) GetByID(id string) (*entity.SalesVisit, error) {
	query := `SELECT ` + visitColumns + ` FROM sales_visits WHERE id = $1`
	var v entity.SalesVisit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.UserID, &v.CustomerID, &v.ActivityType, &v.Latitude, &v.Longitude,
		&v.PhotoPath, &v.Note, &v.VisitedAt, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales visit: %w", err)
	}
	return &v, nil
}

// ListProducts baris produk milik satu kunjungan.
func (r *SalesVisitRepo) ListProducts(salesVisitID string) ([]*entity.VisitProduct, error) {
	query := `
		SELECT id, sales_visit_id, product_id, quantity, unit_price, value, action, note
		FROM sales_visit_products WHERE sales_visit_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, salesVisitID)
	if err != nil {
		return nil, fmt.Errorf("list visit products: %w", err)
	}
	defer rows.Close()
	var list []*entity.VisitProduct
	for rows.Next() {
		var p entity.VisitProduct
		if err := rows.Scan(&p.ID, &p.SalesVisitID, &p.ProductID, &p.Quantity, &p.UnitPrice,
			&p.Value, &p.Action, &p.Note); err != nil {
			return nil, fmt.Errorf("scan visit product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListByUser riwayat kunjungan seorang sales, terbaru lebih dulu.
func (r *SalesVisitRepo) ListByUser(userID string, from, to *time.Time, limit, offset int) ([]*entity.SalesVisit, error) {
	query := `SELECT ` + visitColumns + ` FROM sales_visits WHERE user_id = $1`
	args := []any{userID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(` AND visited_at >= $%d`, len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(` AND visited_at < $%d`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY visited_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales visits: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesVisit
	for rows.Next() {
		var v entity.SalesVisit
		if err := rows.Scan(&v.ID, &v.UserID, &v.CustomerID, &v.ActivityType, &v.Latitude,
			&v.Longitude, &v.PhotoPath, &v.Note, &v.VisitedAt, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sales visit: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
