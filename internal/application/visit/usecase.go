package visit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/dto"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/stock"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
	domvisit "github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/visit"
)

// SubmitUseCase orkestrasi pelaporan kunjungan: validasi payload, cek absensi
// terbuka, entri pelanggan manual, persist kunjungan + baris produk, dan
// (khusus pengiriman) efek ledger stok per baris. Seluruh urutan berjalan
// dalam satu transaksi.
type SubmitUseCase struct {
	txRunner       TxRunner
	applier        StockEffectApplier
	userRepo       repository.UserRepository
	productRepo    repository.ProductRepository
	customerRepo   repository.CustomerRepository
	attendanceRepo repository.AttendanceRepository
}

// NewSubmitUseCase membangun use case pelaporan kunjungan.
func NewSubmitUseCase(
	txRunner TxRunner,
	applier StockEffectApplier,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	attendanceRepo repository.AttendanceRepository,
) *SubmitUseCase {
	return &SubmitUseCase{
		txRunner:       txRunner,
		applier:        applier,
		userRepo:       userRepo,
		productRepo:    productRepo,
		customerRepo:   customerRepo,
		attendanceRepo: attendanceRepo,
	}
}

// preparedLine baris produk yang sudah tervalidasi dan dinormalisasi.
type preparedLine struct {
	pivot  entity.VisitProduct
	ledger stock.VisitLine
}

// Submit memproses laporan kunjungan seorang sales.
func (uc *SubmitUseCase) Submit(ctx context.Context, userID string, in dto.SubmitVisitRequest, now time.Time) (*dto.VisitResponse, error) {
	switch in.ActivityType {
	case entity.ActivityPengiriman, entity.ActivityKanvasing, entity.ActivityPenagihan, entity.ActivityLainnya:
	default:
		return nil, fmt.Errorf("%w: jenis aktivitas tidak dikenal", domain.ErrInvalidInput)
	}
	if in.Latitude == 0 && in.Longitude == 0 {
		return nil, fmt.Errorf("%w: koordinat kunjungan wajib", domain.ErrInvalidInput)
	}
	if in.CustomerID == "" && in.NewCustomer == nil {
		return nil, fmt.Errorf("%w: pilih pelanggan atau isi pelanggan baru", domain.ErrInvalidInput)
	}
	if in.NewCustomer != nil && in.NewCustomer.Name == "" {
		return nil, fmt.Errorf("%w: nama pelanggan baru wajib", domain.ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUserNotFound
	}
	if in.ActivityType == entity.ActivityPengiriman && user.WarehouseID == nil {
		return nil, fmt.Errorf("%w: sales belum punya gudang asal", domain.ErrInvalidInput)
	}

	// Kunjungan hanya boleh dilaporkan selama absensi hari ini masih terbuka
	att, err := uc.attendanceRepo.GetByUserAndDate(userID, dateOnly(now))
	if err != nil {
		return nil, err
	}
	if att == nil || !att.Open() {
		return nil, domain.ErrNoOpenAttendance
	}

	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, fmt.Errorf("%w: pelanggan tidak ditemukan", domain.ErrNotFound)
		}
	}

	lines, err := uc.prepareLines(in.Products)
	if err != nil {
		return nil, err
	}

	visitID := uuid.New().String()
	customerID := in.CustomerID

	err = uc.txRunner.RunVisit(ctx, func(
		visitRepo repository.SalesVisitRepository,
		customerRepo repository.CustomerRepository,
		movRepo repository.StockMovementRepository,
		salesStockRepo repository.SalesStockRepository,
	) error {
		if customerID == "" {
			customer := &entity.Customer{
				ID:        uuid.New().String(),
				Name:      in.NewCustomer.Name,
				Address:   in.NewCustomer.Address,
				Phone:     in.NewCustomer.Phone,
				Latitude:  in.Latitude,
				Longitude: in.Longitude,
				CreatedBy: userID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := customerRepo.Create(customer); err != nil {
				return err
			}
			customerID = customer.ID
		}

		v := &entity.SalesVisit{
			ID:           visitID,
			UserID:       userID,
			CustomerID:   customerID,
			ActivityType: in.ActivityType,
			Latitude:     in.Latitude,
			Longitude:    in.Longitude,
			PhotoPath:    in.PhotoPath,
			Note:         in.Note,
			VisitedAt:    now,
			CreatedAt:    now,
		}
		if err := visitRepo.Create(v); err != nil {
			return err
		}

		ledgerLines := make([]stock.VisitLine, 0, len(lines))
		for i := range lines {
			lines[i].pivot.ID = uuid.New().String()
			lines[i].pivot.SalesVisitID = visitID
			if err := visitRepo.AttachProduct(&lines[i].pivot); err != nil {
				return err
			}
			ledgerLines = append(ledgerLines, lines[i].ledger)
		}

		// Hanya kunjungan pengiriman yang menyentuh ledger
		if in.ActivityType == entity.ActivityPengiriman && len(ledgerLines) > 0 {
			return uc.applier.ApplyVisitEffect(movRepo, salesStockRepo,
				visitID, userID, *user.WarehouseID, ledgerLines, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.VisitResponse{
		ID:           visitID,
		UserID:       userID,
		CustomerID:   customerID,
		ActivityType: in.ActivityType,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		PhotoPath:    in.PhotoPath,
		Note:         in.Note,
		VisitedAt:    now,
	}
	for _, l := range lines {
		resp.Products = append(resp.Products, dto.VisitProductResponse{
			ID:        l.pivot.ID,
			ProductID: l.pivot.ProductID,
			Quantity:  l.pivot.Quantity,
			UnitPrice: l.pivot.UnitPrice,
			Value:     l.pivot.Value,
			Action:    l.pivot.Action,
			Note:      l.pivot.Note,
		})
	}
	return resp, nil
}

// prepareLines memvalidasi dan menormalisasi baris produk di luar transaksi.
func (uc *SubmitUseCase) prepareLines(inputs []dto.VisitProductInput) ([]preparedLine, error) {
	lines := make([]preparedLine, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: jumlah produk minimal 1", domain.ErrInvalidInput)
		}
		action, err := domvisit.NormalizeAction(in.Action)
		if err != nil {
			return nil, fmt.Errorf("%w: aksi %q tidak dikenal", domain.ErrInvalidInput, in.Action)
		}
		product, err := uc.productRepo.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			return nil, fmt.Errorf("%w: produk tidak ditemukan atau nonaktif", domain.ErrNotFound)
		}
		unitPrice := product.Price
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}
		value := domvisit.SignedValue(action, unitPrice, in.Quantity, in.Value)

		lines = append(lines, preparedLine{
			pivot: entity.VisitProduct{
				ProductID: in.ProductID,
				Quantity:  in.Quantity,
				UnitPrice: unitPrice,
				Value:     value,
				Action:    string(action),
				Note:      in.Note,
			},
			ledger: stock.VisitLine{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    in.Quantity,
				Action:      action,
			},
		})
	}
	return lines, nil
}

// dateOnly menolkan komponen jam dari waktu lokal.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
