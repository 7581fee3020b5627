package repository

import "github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"

// ProductRepository port persistensi untuk produk.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(activeOnly bool, limit, offset int) ([]*entity.Product, error)
	SetActive(id string, active bool) error
}
