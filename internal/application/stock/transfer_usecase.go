package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/visit"
)

// TransferUseCase memindahkan kuantitas antar baris stok secara atomik dan
// menulis tepat satu baris mutasi per perubahan. Semua cek kecukupan stok
// dilakukan SETELAH baris dikunci (SELECT FOR UPDATE), sehingga dua operasi
// "out" yang bersamaan pada pasangan (produk, lokasi) yang sama tidak bisa
// sama-sama lolos dengan pembacaan basi.
type TransferUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	userRepo      repository.UserRepository
	notifier      Notifier // opsional, boleh nil
}

// NewTransferUseCase membangun use case transfer stok.
func NewTransferUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		userRepo:      userRepo,
		notifier:      notifier,
	}
}

// AdjustInput masukan penyesuaian stok gudang oleh admin.
// Identitas pelaku dan waktu diberikan eksplisit; use case ini tidak membaca
// session atau jam global.
type AdjustInput struct {
	ProductID    string
	WarehouseID  string
	Type         string // in | out
	TargetUserID string // wajib saat Type = out; sales penerima
	Quantity     int64
	Reference    string
	Note         string
	ActorID      string
	Now          time.Time
}

// Adjust menjalankan penyesuaian stok gudang manual.
//
// Type "in": kuantitas gudang bertambah. Type "out": kuantitas gudang
// berkurang dan stok bawaan sales penerima bertambah dengan jumlah yang sama
// (transfer dua sisi dalam satu transaksi). Kedua jalur menulis tepat satu
// baris mutasi. Kegagalan apa pun membatalkan seluruh transaksi.
func (uc *TransferUseCase) Adjust(ctx context.Context, in AdjustInput) error {
	// Validasi sebelum transaksi dibuka
	if in.Quantity < 1 {
		return fmt.Errorf("%w: jumlah minimal 1", domain.ErrInvalidInput)
	}
	if in.Type != entity.MovementIn && in.Type != entity.MovementOut {
		return fmt.Errorf("%w: jenis mutasi harus in atau out", domain.ErrInvalidInput)
	}
	if in.Type == entity.MovementOut && in.TargetUserID == "" {
		return domain.ErrMissingTargetUser
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	if in.Type == entity.MovementOut {
		target, err := uc.userRepo.GetByID(in.TargetUserID)
		if err != nil {
			return err
		}
		if target == nil {
			return domain.ErrUserNotFound
		}
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		warehouseStockRepo repository.ProductStockRepository,
		salesStockRepo repository.SalesStockRepository,
	) error {
		// Kunci (atau buat lalu kunci) baris stok gudang
		ws, err := warehouseStockRepo.GetOrCreateForUpdate(in.ProductID, in.WarehouseID)
		if err != nil {
			return err
		}

		switch in.Type {
		case entity.MovementOut:
			if ws.Quantity < in.Quantity {
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Requested:   in.Quantity,
					Available:   ws.Quantity,
				}
			}
			if err := warehouseStockRepo.SetQuantity(ws.ID, ws.Quantity-in.Quantity, in.Now); err != nil {
				return err
			}
			ss, err := salesStockRepo.GetOrCreateForUpdate(in.TargetUserID, in.ProductID)
			if err != nil {
				return err
			}
			if err := salesStockRepo.SetQuantity(ss.ID, ss.Quantity+in.Quantity, in.Now); err != nil {
				return err
			}
		case entity.MovementIn:
			if err := warehouseStockRepo.SetQuantity(ws.ID, ws.Quantity+in.Quantity, in.Now); err != nil {
				return err
			}
		}

		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   in.ProductID,
			WarehouseID: in.WarehouseID,
			Type:        in.Type,
			Quantity:    in.Quantity,
			Reference:   in.Reference,
			Note:        in.Note,
			CreatedBy:   strPtr(in.ActorID),
			CreatedAt:   in.Now,
		}
		if in.Type == entity.MovementOut {
			mov.UserID = strPtr(in.TargetUserID)
		}
		return movRepo.Create(mov)
	})
	if err != nil {
		return err
	}

	// Setelah commit: kabari sales penerima. Best effort saja.
	if in.Type == entity.MovementOut && uc.notifier != nil {
		uc.notifier.StockAssigned(ctx, in.TargetUserID, product.Name, in.Quantity)
	}
	return nil
}

// VisitLine baris produk kunjungan yang sudah dinormalisasi, siap diterapkan
// ke ledger.
type VisitLine struct {
	ProductID   string
	ProductName string
	Quantity    int64
	Action      visit.Action
}

// ApplyVisitEffect menerapkan efek stok sebuah kunjungan pengiriman pada stok
// bawaan sales, memakai repositori milik transaksi pemanggil (satu transaksi
// dengan pembuatan kunjungan itu sendiri). Baris terjual menurunkan stok
// setelah cek kecukupan; baris retur menaikkan stok tanpa batas atas.
// Setiap baris menghasilkan tepat satu mutasi dengan referensi VISIT-{id}.
func (uc *TransferUseCase) ApplyVisitEffect(
	movRepo repository.StockMovementRepository,
	salesStockRepo repository.SalesStockRepository,
	visitID, salespersonID, warehouseID string,
	lines []VisitLine,
	now time.Time,
) error {
	reference := fmt.Sprintf("VISIT-%s", visitID)
	for _, line := range lines {
		ss, err := salesStockRepo.GetOrCreateForUpdate(salespersonID, line.ProductID)
		if err != nil {
			return err
		}

		var movType string
		switch line.Action {
		case visit.ActionTerjual:
			if ss.Quantity < line.Quantity {
				return &domain.InsufficientStockError{
					ProductID:   line.ProductID,
					ProductName: line.ProductName,
					Requested:   line.Quantity,
					Available:   ss.Quantity,
				}
			}
			if err := salesStockRepo.SetQuantity(ss.ID, ss.Quantity-line.Quantity, now); err != nil {
				return err
			}
			movType = entity.MovementOut
		case visit.ActionRetur:
			// Retur selalu diterima; tidak ada batas atas terhadap jumlah
			// yang pernah dikirim
			if err := salesStockRepo.SetQuantity(ss.ID, ss.Quantity+line.Quantity, now); err != nil {
				return err
			}
			movType = entity.MovementIn
		default:
			return domain.ErrInvalidInput
		}

		mov := &entity.StockMovement{
			ID:           uuid.New().String(),
			ProductID:    line.ProductID,
			WarehouseID:  warehouseID,
			SalesVisitID: strPtr(visitID),
			UserID:       strPtr(salespersonID),
			Type:         movType,
			Quantity:     line.Quantity,
			Reference:    reference,
			CreatedAt:    now,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
	}
	return nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
