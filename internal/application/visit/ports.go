package visit

import (
	"context"
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/application/stock"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// TxRunner menjalankan fn dalam satu transaksi DB dengan repositori yang
// dibutuhkan pembuatan kunjungan: kunjungan, pelanggan, mutasi stok, dan stok
// bawaan sales. Gagal di baris mana pun membatalkan semuanya, termasuk
// pelanggan dan foto yang dibuat lebih awal di transaksi yang sama.
type TxRunner interface {
	RunVisit(ctx context.Context, fn func(
		visitRepo repository.SalesVisitRepository,
		customerRepo repository.CustomerRepository,
		movRepo repository.StockMovementRepository,
		salesStockRepo repository.SalesStockRepository,
	) error) error
}

// StockEffectApplier menerapkan efek stok kunjungan pengiriman memakai
// repositori milik transaksi pemanggil. Diimplementasikan oleh
// stock.TransferUseCase.
type StockEffectApplier interface {
	ApplyVisitEffect(
		movRepo repository.StockMovementRepository,
		salesStockRepo repository.SalesStockRepository,
		visitID, salespersonID, warehouseID string,
		lines []stock.VisitLine,
		now time.Time,
	) error
}
