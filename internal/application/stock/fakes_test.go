package stock_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake repositori in-memory. TxRunner fake meniru semantik rollback dengan
// snapshot state sebelum fn dan restore saat fn gagal.
// ──────────────────────────────────────────────────────────────────────────────

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.WarehouseID == warehouseID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByVisit(salesVisitID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.SalesVisitID != nil && *m.SalesVisitID == salesVisitID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeWarehouseStockRepo struct {
	rows map[string]*entity.ProductStock // key: id
	seq  int
}

func newFakeWarehouseStockRepo() *fakeWarehouseStockRepo {
	return &fakeWarehouseStockRepo{rows: map[string]*entity.ProductStock{}}
}

func (r *fakeWarehouseStockRepo) find(productID, warehouseID string) *entity.ProductStock {
	for _, s := range r.rows {
		if s.ProductID == productID && s.WarehouseID == warehouseID {
			return s
		}
	}
	return nil
}

func (r *fakeWarehouseStockRepo) Get(productID, warehouseID string) (*entity.ProductStock, error) {
	return r.find(productID, warehouseID), nil
}

func (r *fakeWarehouseStockRepo) GetOrCreateForUpdate(productID, warehouseID string) (*entity.ProductStock, error) {
	if s := r.find(productID, warehouseID); s != nil {
		return s, nil
	}
	r.seq++
	s := &entity.ProductStock{
		ID:          fmt.Sprintf("ws-%d", r.seq),
		ProductID:   productID,
		WarehouseID: warehouseID,
	}
	r.rows[s.ID] = s
	return s, nil
}

func (r *fakeWarehouseStockRepo) SetQuantity(id string, quantity int64, at time.Time) error {
	s, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("baris stok gudang %s tidak ada", id)
	}
	s.Quantity = quantity
	s.UpdatedAt = at
	return nil
}

func (r *fakeWarehouseStockRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.ProductStock, error) {
	var out []*entity.ProductStock
	for _, s := range r.rows {
		if s.WarehouseID == warehouseID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeSalesStockRepo struct {
	rows map[string]*entity.SalesProductStock // key: id
	seq  int
}

func newFakeSalesStockRepo() *fakeSalesStockRepo {
	return &fakeSalesStockRepo{rows: map[string]*entity.SalesProductStock{}}
}

func (r *fakeSalesStockRepo) find(userID, productID string) *entity.SalesProductStock {
	for _, s := range r.rows {
		if s.UserID == userID && s.ProductID == productID {
			return s
		}
	}
	return nil
}

func (r *fakeSalesStockRepo) Get(userID, productID string) (*entity.SalesProductStock, error) {
	return r.find(userID, productID), nil
}

func (r *fakeSalesStockRepo) GetOrCreateForUpdate(userID, productID string) (*entity.SalesProductStock, error) {
	if s := r.find(userID, productID); s != nil {
		return s, nil
	}
	r.seq++
	s := &entity.SalesProductStock{
		ID:        fmt.Sprintf("ss-%d", r.seq),
		UserID:    userID,
		ProductID: productID,
	}
	r.rows[s.ID] = s
	return s, nil
}

func (r *fakeSalesStockRepo) SetQuantity(id string, quantity int64, at time.Time) error {
	s, ok := r.rows[id]
	if !ok {
		return fmt.Errorf("baris stok sales %s tidak ada", id)
	}
	s.Quantity = quantity
	s.UpdatedAt = at
	return nil
}

func (r *fakeSalesStockRepo) ListByUser(userID string) ([]*entity.SalesProductStock, error) {
	var out []*entity.SalesProductStock
	for _, s := range r.rows {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeTxRunner menjalankan fn langsung di atas fake in-memory, dengan snapshot
// untuk meniru rollback transaksi saat fn gagal.
type fakeTxRunner struct {
	mov *fakeMovementRepo
	ws  *fakeWarehouseStockRepo
	ss  *fakeSalesStockRepo
}

func newFakeTxRunner() *fakeTxRunner {
	return &fakeTxRunner{
		mov: &fakeMovementRepo{},
		ws:  newFakeWarehouseStockRepo(),
		ss:  newFakeSalesStockRepo(),
	}
}

func (t *fakeTxRunner) snapshot() (movs []*entity.StockMovement, ws map[string]*entity.ProductStock, ss map[string]*entity.SalesProductStock) {
	movs = append([]*entity.StockMovement(nil), t.mov.movements...)
	ws = make(map[string]*entity.ProductStock, len(t.ws.rows))
	for k, v := range t.ws.rows {
		cp := *v
		ws[k] = &cp
	}
	ss = make(map[string]*entity.SalesProductStock, len(t.ss.rows))
	for k, v := range t.ss.rows {
		cp := *v
		ss[k] = &cp
	}
	return movs, ws, ss
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	warehouseStockRepo repository.ProductStockRepository,
	salesStockRepo repository.SalesStockRepository,
) error) error {
	movs, ws, ss := t.snapshot()
	if err := fn(t.mov, t.ws, t.ss); err != nil {
		t.mov.movements = movs
		t.ws.rows = ws
		t.ss.rows = ss
		return err
	}
	return nil
}

// Fake master data: hanya metode yang disentuh use case yang berisi.

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error  { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) List(activeOnly bool, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) SetActive(id string, active bool) error { return nil }

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error                 { return nil }
func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (r *fakeWarehouseRepo) SetActive(id string, active bool) error { return nil }
func (r *fakeWarehouseRepo) HasRelations(id string) (bool, error)   { return false, nil }
func (r *fakeWarehouseRepo) Delete(id string) error                 { return nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) List(role string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) SetActive(id string, active bool) error { return nil }

// fakeNotifier merekam panggilan notifikasi setelah commit.
type fakeNotifier struct {
	mu    sync.Mutex
	calls []notifyCall
}

type notifyCall struct {
	userID      string
	productName string
	quantity    int64
}

func (n *fakeNotifier) StockAssigned(ctx context.Context, userID, productName string, quantity int64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, notifyCall{userID: userID, productName: productName, quantity: quantity})
}
