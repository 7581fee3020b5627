package repository

import "github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"

// CustomerRepository port persistensi untuk pelanggan.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(search string, limit, offset int) ([]*entity.Customer, error)
}
