package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// WarehouseUseCase CRUD gudang. Gudang yang masih punya stok, mutasi, atau
// sales terkait tidak boleh dihapus; nonaktifkan saja.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase membangun use case gudang.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create membuat gudang baru; kode harus unik.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" || in.Code == "" {
		return nil, fmt.Errorf("%w: name dan code wajib", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: kode %s sudah dipakai", domain.ErrDuplicate, in.Code)
	}
	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Code:      in.Code,
		FilePath:  in.FilePath,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID mengambil satu gudang.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// Update mengubah gudang; field nil dibiarkan. Kode tidak bisa diubah.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	if in.Name != nil {
		warehouse.Name = *in.Name
	}
	if in.FilePath != nil {
		warehouse.FilePath = *in.FilePath
	}
	if in.Latitude != nil {
		warehouse.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		warehouse.Longitude = *in.Longitude
	}
	if in.IsActive != nil {
		warehouse.IsActive = *in.IsActive
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// List daftar gudang dengan paginasi.
func (uc *WarehouseUseCase) List(limit, offset int) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete menghapus gudang. Ditolak dengan ErrWarehouseInUse selama masih ada
// baris stok, mutasi, atau user yang ditugaskan; cek dilakukan di sini supaya
// user mendapat pesan yang jelas, bukan pelanggaran constraint mentah dari DB.
func (uc *WarehouseUseCase) Delete(id string) error {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	inUse, err := uc.repo.HasRelations(id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrWarehouseInUse
	}
	return uc.repo.Delete(id)
}

// Deactivate mematikan flag aktif gudang; jalur yang benar untuk gudang yang
// sudah dipakai.
func (uc *WarehouseUseCase) Deactivate(id string) error {
	return uc.repo.SetActive(id, false)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Code:      w.Code,
		FilePath:  w.FilePath,
		Latitude:  w.Latitude,
		Longitude: w.Longitude,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}
