package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/auth"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// UserUseCase manajemen user oleh admin: pembuatan akun, penugasan gudang,
// dan penetapan supervisor dengan validasi jenjang role.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase membangun use case user.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create membuat user baru. Supervisor yang ditunjuk harus punya jenjang role
// lebih tinggi dari user yang dibuat.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email, dan password wajib", domain.ErrInvalidInput)
	}
	if entity.RoleRank(in.Role) == 0 {
		return nil, fmt.Errorf("%w: role %q tidak dikenal", domain.ErrInvalidInput, in.Role)
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s sudah terdaftar", domain.ErrDuplicate, in.Email)
	}
	if err := uc.validateSupervisor(in.SupervisorID, in.Role); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		SupervisorID: in.SupervisorID,
		WarehouseID:  in.WarehouseID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// GetByID mengambil satu user.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// Update mengubah user; field nil dibiarkan. Perubahan role atau supervisor
// divalidasi ulang terhadap jenjang.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil {
		if entity.RoleRank(*in.Role) == 0 {
			return nil, fmt.Errorf("%w: role %q tidak dikenal", domain.ErrInvalidInput, *in.Role)
		}
		user.Role = *in.Role
	}
	if in.SupervisorID != nil {
		user.SupervisorID = in.SupervisorID
	}
	if in.WarehouseID != nil {
		user.WarehouseID = in.WarehouseID
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if err := uc.validateSupervisor(user.SupervisorID, user.Role); err != nil {
		return nil, err
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List daftar user, opsional difilter role.
func (uc *UserUseCase) List(role string, limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(role, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Deactivate mematikan akun user.
func (uc *UserUseCase) Deactivate(id string) error {
	return uc.repo.SetActive(id, false)
}

// validateSupervisor menolak supervisor dengan jenjang role sama atau lebih
// rendah dari bawahannya.
func (uc *UserUseCase) validateSupervisor(supervisorID *string, subordinateRole string) error {
	if supervisorID == nil {
		return nil
	}
	supervisor, err := uc.repo.GetByID(*supervisorID)
	if err != nil {
		return err
	}
	if supervisor == nil {
		return domain.ErrUserNotFound
	}
	if entity.RoleRank(supervisor.Role) <= entity.RoleRank(subordinateRole) {
		return domain.ErrInvalidSupervisor
	}
	return nil
}
