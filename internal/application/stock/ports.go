package stock

import (
	"context"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// TxRunner menjalankan fn di dalam satu transaksi DB dan memberikan
// repositori yang terikat ke transaksi itu. Commit jika fn sukses, rollback
// jika gagal. Inilah jaminan atomisitas ledger stok.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		warehouseStockRepo repository.ProductStockRepository,
		salesStockRepo repository.SalesStockRepository,
	) error) error
}

// Notifier memberi tahu sales bahwa stok baru saja dialihkan kepadanya.
// Dipanggil setelah transaksi commit; kegagalan notifikasi tidak membatalkan
// transfer.
type Notifier interface {
	StockAssigned(ctx context.Context, userID, productName string, quantity int64)
}
