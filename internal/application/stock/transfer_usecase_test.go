package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/stock"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/visit"
)

const (
	prodID  = "prod-1"
	whID    = "wh-1"
	salesID = "sales-1"
	adminID = "admin-1"
)

func newTransferFixture() (*stock.TransferUseCase, *fakeTxRunner, *fakeNotifier) {
	tx := newFakeTxRunner()
	products := &fakeProductRepo{products: map[string]*entity.Product{
		prodID: {ID: prodID, Name: "Beras Premium 5kg", SKU: "BRS-5", Price: decimal.NewFromInt(78000), IsActive: true},
	}}
	warehouses := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{
		whID: {ID: whID, Name: "Gudang Karanganyar", Code: "KRA-01", IsActive: true},
	}}
	users := &fakeUserRepo{users: map[string]*entity.User{
		salesID: {ID: salesID, Name: "Sales Lapangan", Role: entity.RoleSales, IsActive: true},
	}}
	notifier := &fakeNotifier{}
	uc := stock.NewTransferUseCase(tx, products, warehouses, users, notifier)
	return uc, tx, notifier
}

func seedWarehouseStock(t *testing.T, tx *fakeTxRunner, qty int64) {
	t.Helper()
	s, err := tx.ws.GetOrCreateForUpdate(prodID, whID)
	require.NoError(t, err)
	require.NoError(t, tx.ws.SetQuantity(s.ID, qty, time.Now()))
}

// Transfer out: stok gudang pindah ke stok bawaan sales, total kuantitas
// kekal, dan tercatat tepat satu mutasi.
func TestAdjust_OutMemindahkanStokKeSales(t *testing.T) {
	uc, tx, notifier := newTransferFixture()
	seedWarehouseStock(t, tx, 10)
	now := time.Now()

	err := uc.Adjust(context.Background(), stock.AdjustInput{
		ProductID:    prodID,
		WarehouseID:  whID,
		Type:         entity.MovementOut,
		TargetUserID: salesID,
		Quantity:     4,
		Reference:    "DO-001",
		ActorID:      adminID,
		Now:          now,
	})
	require.NoError(t, err)

	ws := tx.ws.find(prodID, whID)
	ss := tx.ss.find(salesID, prodID)
	require.NotNil(t, ws)
	require.NotNil(t, ss)
	assert.Equal(t, int64(6), ws.Quantity, "stok gudang harus berkurang 4")
	assert.Equal(t, int64(4), ss.Quantity, "stok bawaan sales harus bertambah 4")

	require.Len(t, tx.mov.movements, 1, "tepat satu mutasi per penyesuaian")
	mov := tx.mov.movements[0]
	assert.Equal(t, entity.MovementOut, mov.Type)
	assert.Equal(t, int64(4), mov.Quantity)
	assert.Equal(t, "DO-001", mov.Reference)
	require.NotNil(t, mov.UserID)
	assert.Equal(t, salesID, *mov.UserID, "mutasi out harus mencatat sales penerima")
	require.NotNil(t, mov.CreatedBy)
	assert.Equal(t, adminID, *mov.CreatedBy)

	require.Len(t, notifier.calls, 1, "sales penerima harus dikabari setelah commit")
	assert.Equal(t, salesID, notifier.calls[0].userID)
	assert.Equal(t, int64(4), notifier.calls[0].quantity)
}

// Transfer in: stok gudang bertambah, baris dibuat lazy dari nol.
func TestAdjust_InMenambahStokGudang(t *testing.T) {
	uc, tx, _ := newTransferFixture()

	err := uc.Adjust(context.Background(), stock.AdjustInput{
		ProductID:   prodID,
		WarehouseID: whID,
		Type:        entity.MovementIn,
		Quantity:    7,
		ActorID:     adminID,
		Now:         time.Now(),
	})
	require.NoError(t, err)

	ws := tx.ws.find(prodID, whID)
	require.NotNil(t, ws, "baris stok harus dibuat lazy saat mutasi pertama")
	assert.Equal(t, int64(7), ws.Quantity)
	require.Len(t, tx.mov.movements, 1)
	assert.Equal(t, entity.MovementIn, tx.mov.movements[0].Type)
	assert.Nil(t, tx.mov.movements[0].UserID, "mutasi in tidak punya sales penerima")
}

// Stok kurang: transfer ditolak dengan detail kekurangan dan state tidak
// berubah sama sekali.
func TestAdjust_StokKurangDitolakTanpaMutasi(t *testing.T) {
	uc, tx, notifier := newTransferFixture()
	seedWarehouseStock(t, tx, 3)

	err := uc.Adjust(context.Background(), stock.AdjustInput{
		ProductID:    prodID,
		WarehouseID:  whID,
		Type:         entity.MovementOut,
		TargetUserID: salesID,
		Quantity:     5,
		ActorID:      adminID,
		Now:          time.Now(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var detail *domain.InsufficientStockError
	require.True(t, errors.As(err, &detail), "error harus membawa detail kekurangan")
	assert.Equal(t, int64(5), detail.Requested)
	assert.Equal(t, int64(3), detail.Available)
	assert.Equal(t, "Beras Premium 5kg", detail.ProductName)

	assert.Equal(t, int64(3), tx.ws.find(prodID, whID).Quantity, "stok gudang tidak boleh berubah")
	assert.Nil(t, tx.ss.find(salesID, prodID), "stok sales tidak boleh tercipta")
	assert.Empty(t, tx.mov.movements, "tidak boleh ada mutasi saat transfer gagal")
	assert.Empty(t, notifier.calls, "tidak boleh ada notifikasi saat transfer gagal")
}

// Dua transfer out berurutan pada pasangan yang sama: yang kedua membaca
// kuantitas hasil yang pertama, bukan pembacaan basi.
func TestAdjust_DuaOutBerurutanTidakDobelLolos(t *testing.T) {
	uc, tx, _ := newTransferFixture()
	seedWarehouseStock(t, tx, 5)

	in := stock.AdjustInput{
		ProductID:    prodID,
		WarehouseID:  whID,
		Type:         entity.MovementOut,
		TargetUserID: salesID,
		Quantity:     3,
		ActorID:      adminID,
		Now:          time.Now(),
	}
	require.NoError(t, uc.Adjust(context.Background(), in))

	err := uc.Adjust(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"transfer kedua harus ditolak karena sisa stok tinggal 2")

	assert.Equal(t, int64(2), tx.ws.find(prodID, whID).Quantity)
	assert.Equal(t, int64(3), tx.ss.find(salesID, prodID).Quantity)
	assert.Len(t, tx.mov.movements, 1)
}

// Out tanpa sales penerima ditolak sebelum transaksi dibuka.
func TestAdjust_OutTanpaTargetDitolak(t *testing.T) {
	uc, tx, _ := newTransferFixture()
	seedWarehouseStock(t, tx, 10)

	err := uc.Adjust(context.Background(), stock.AdjustInput{
		ProductID:   prodID,
		WarehouseID: whID,
		Type:        entity.MovementOut,
		Quantity:    2,
		ActorID:     adminID,
		Now:         time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrMissingTargetUser)
	assert.Empty(t, tx.mov.movements)
}

func TestAdjust_ValidasiInput(t *testing.T) {
	uc, _, _ := newTransferFixture()
	ctx := context.Background()

	err := uc.Adjust(ctx, stock.AdjustInput{ProductID: prodID, WarehouseID: whID, Type: entity.MovementIn, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "jumlah nol harus ditolak")

	err = uc.Adjust(ctx, stock.AdjustInput{ProductID: prodID, WarehouseID: whID, Type: "pindah", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "jenis mutasi asing harus ditolak")

	err = uc.Adjust(ctx, stock.AdjustInput{ProductID: "tidak-ada", WarehouseID: whID, Type: entity.MovementIn, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound, "produk tidak dikenal harus ditolak")
}

// Efek kunjungan pengiriman: terjual menurunkan stok bawaan, retur menaikkan,
// masing-masing baris menulis satu mutasi dengan referensi VISIT-{id}.
func TestApplyVisitEffect_TerjualDanRetur(t *testing.T) {
	uc, tx, _ := newTransferFixture()
	now := time.Now()

	// Sales membawa 10 unit produk
	ss, err := tx.ss.GetOrCreateForUpdate(salesID, prodID)
	require.NoError(t, err)
	require.NoError(t, tx.ss.SetQuantity(ss.ID, 10, now))

	lines := []stock.VisitLine{
		{ProductID: prodID, ProductName: "Beras Premium 5kg", Quantity: 4, Action: visit.ActionTerjual},
		{ProductID: "prod-2", ProductName: "Minyak Goreng 2L", Quantity: 2, Action: visit.ActionRetur},
	}
	err = uc.ApplyVisitEffect(tx.mov, tx.ss, "visit-9", salesID, whID, lines, now)
	require.NoError(t, err)

	assert.Equal(t, int64(6), tx.ss.find(salesID, prodID).Quantity, "terjual 4 dari 10")
	assert.Equal(t, int64(2), tx.ss.find(salesID, "prod-2").Quantity, "retur diterima tanpa batas atas")

	require.Len(t, tx.mov.movements, 2, "satu mutasi per baris")
	for _, mov := range tx.mov.movements {
		assert.Equal(t, "VISIT-visit-9", mov.Reference)
		require.NotNil(t, mov.SalesVisitID)
		assert.Equal(t, "visit-9", *mov.SalesVisitID)
		require.NotNil(t, mov.UserID)
		assert.Equal(t, salesID, *mov.UserID)
	}
	assert.Equal(t, entity.MovementOut, tx.mov.movements[0].Type)
	assert.Equal(t, entity.MovementIn, tx.mov.movements[1].Type)
}

// Terjual melebihi stok bawaan: baris ditolak dengan detail kekurangan.
func TestApplyVisitEffect_TerjualMelebihiStokBawaan(t *testing.T) {
	uc, tx, _ := newTransferFixture()
	now := time.Now()

	ss, err := tx.ss.GetOrCreateForUpdate(salesID, prodID)
	require.NoError(t, err)
	require.NoError(t, tx.ss.SetQuantity(ss.ID, 1, now))

	lines := []stock.VisitLine{
		{ProductID: prodID, ProductName: "Beras Premium 5kg", Quantity: 3, Action: visit.ActionTerjual},
	}
	err = uc.ApplyVisitEffect(tx.mov, tx.ss, "visit-9", salesID, whID, lines, now)
	require.Error(t, err)

	var detail *domain.InsufficientStockError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, int64(3), detail.Requested)
	assert.Equal(t, int64(1), detail.Available)
	assert.Empty(t, tx.mov.movements)
}
