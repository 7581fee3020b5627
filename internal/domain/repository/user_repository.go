package repository

import "github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"

// UserRepository port persistensi untuk user.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(role string, limit, offset int) ([]*entity.User, error)
	SetActive(id string, active bool) error
}
