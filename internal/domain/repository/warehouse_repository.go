package repository

import "github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"

// WarehouseRepository port persistensi untuk gudang.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByCode(code string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
	SetActive(id string, active bool) error
	// HasRelations true jika gudang masih punya baris stok, mutasi, atau user
	// yang ditugaskan; gudang seperti itu tidak boleh dihapus.
	HasRelations(id string) (bool, error)
	Delete(id string) error
}
