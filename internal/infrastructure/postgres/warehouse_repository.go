package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementasi WarehouseRepository di PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `id, name, code, file_path, latitude, longitude, is_active, created_at, updated_at`

// Create menyimpan gudang baru; kode gudang harus unik.
func (r *WarehouseRepo) Create(w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (` + warehouseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Name, w.Code, w.FilePath, w.Latitude, w.Longitude, w.IsActive, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID mengambil satu gudang; nil jika tidak ada.
func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.getBy("id", id)
}

// GetByCode mengambil satu gudang berdasarkan kode; nil jika tidak ada.
func (r *WarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	return r.getBy("code", code)
}

func (r *WarehouseRepo) getBy(column, value string) (*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses WHERE ` + column + ` = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&w.ID, &w.Name, &w.Code, &w.FilePath, &w.Latitude, &w.Longitude, &w.IsActive, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// Update menulis ulang atribut gudang.
func (r *WarehouseRepo) Update(w *entity.Warehouse) error {
	query := `
		UPDATE warehouses
		SET name = $2, file_path = $3, latitude = $4, longitude = $5, is_active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.Name, w.FilePath, w.Latitude, w.Longitude, w.IsActive, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

// List daftar gudang dengan paginasi.
func (r *WarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	query := `SELECT ` + warehouseColumns + ` FROM warehouses ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Code, &w.FilePath, &w.Latitude, &w.Longitude,
			&w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// SetActive mengubah flag aktif gudang.
func (r *WarehouseRepo) SetActive(id string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE warehouses SET is_active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set warehouse active: %w", err)
	}
	return nil
}

// HasRelations true jika gudang masih punya stok, mutasi, atau user terkait.
func (r *WarehouseRepo) HasRelations(id string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM product_stocks WHERE warehouse_id = $1)
		    OR EXISTS (SELECT 1 FROM stock_movements WHERE warehouse_id = $1)
		    OR EXISTS (SELECT 1 FROM users WHERE warehouse_id = $1)`
	var related bool
	if err := r.q.QueryRow(context.Background(), query, id).Scan(&related); err != nil {
		return false, fmt.Errorf("check warehouse relations: %w", err)
	}
	return related, nil
}

// Delete menghapus gudang. Pemanggil wajib memastikan HasRelations false.
func (r *WarehouseRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
