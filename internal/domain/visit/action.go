// Package visit berisi logika domain murni untuk baris produk kunjungan:
// normalisasi jenis aksi dan perhitungan nilai bertanda.
package visit

import (
	"github.com/shopspring/decimal"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain"
)

// Action jenis aksi baris produk setelah dinormalisasi.
type Action string

const (
	ActionTerjual Action = "terjual"
	ActionRetur   Action = "retur"
)

// NormalizeAction memetakan sinonim dari klien ke nilai kanonik:
// sold→terjual, returned→retur; nilai kanonik lewat apa adanya.
// Nilai lain ditolak di sini, sebelum menyentuh ledger.
func NormalizeAction(raw string) (Action, error) {
	switch raw {
	case "terjual", "sold":
		return ActionTerjual, nil
	case "retur", "returned":
		return ActionRetur, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// SignedValue menghitung nilai transaksi baris: price × quantity, negatif
// untuk retur. Jika klien mengirim value eksplisit, nilai itu yang dipakai
// apa adanya (tanpa validasi silang terhadap price × quantity).
func SignedValue(action Action, unitPrice decimal.Decimal, quantity int64, explicit *decimal.Decimal) decimal.Decimal {
	if explicit != nil {
		return *explicit
	}
	value := unitPrice.Mul(decimal.NewFromInt(quantity))
	if action == ActionRetur {
		return value.Neg()
	}
	return value
}
