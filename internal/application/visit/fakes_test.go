package visit_test

import (
	"context"
	"fmt"
	"time"

	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/entity"
	"github.com/ade99setia/project-bdn-karanganyar-sub001/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake repositori in-memory untuk test orkestrasi kunjungan. TxRunner fake
// meniru rollback dengan snapshot seluruh state sebelum fn.
// ──────────────────────────────────────────────────────────────────────────────

type fakeVisitRepo struct {
	visits   []*entity.SalesVisit
	products []*entity.VisitProduct
}

func (r *fakeVisitRepo) Create(v *entity.SalesVisit) error {
	cp := *v
	r.visits = append(r.visits, &cp)
	return nil
}

func (r *fakeVisitRepo) AttachProduct(line *entity.VisitProduct) error {
	cp := *line
	r.products = append(r.products, &cp)
	return nil
}

func (r *fakeVisitRepo) GetByID(id string) (*entity.SalesVisit, error) {
	for _, v := range r.visits {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (r *fakeVisitRepo) ListProducts(salesVisitID string) ([]*entity.VisitProduct, error) {
	var out []*entity.VisitProduct
	for _, p := range r.products {
		if p.SalesVisitID == salesVisitID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeVisitRepo) ListByUser(userID string, from, to *time.Time, limit, offset int) ([]*entity.SalesVisit, error) {
	var out []*entity.SalesVisit
	for _, v := range r.visits {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) List(search string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
	failNow   bool // paksa gagal untuk menguji rollback
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	if r.failNow {
		return fmt.Errorf("insert movement: koneksi putus")
	}
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}

func (r *fakeMovementRepo) ListByWarehouse(warehouseID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
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

type fakeSalesStockRepo struct {
	rows map[string]*entity.SalesProductStock
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
	return nil, nil
}

// fakeVisitTxRunner menjalankan fn di atas fake dengan snapshot/restore untuk
// meniru atomisitas: gagal di baris mana pun membatalkan kunjungan, pelanggan,
// mutasi, dan stok sekaligus.
type fakeVisitTxRunner struct {
	visits    *fakeVisitRepo
	customers *fakeCustomerRepo
	movements *fakeMovementRepo
	stocks    *fakeSalesStockRepo
}

func newFakeVisitTxRunner() *fakeVisitTxRunner {
	return &fakeVisitTxRunner{
		visits:    &fakeVisitRepo{},
		customers: &fakeCustomerRepo{customers: map[string]*entity.Customer{}},
		movements: &fakeMovementRepo{},
		stocks:    newFakeSalesStockRepo(),
	}
}

func (t *fakeVisitTxRunner) RunVisit(ctx context.Context, fn func(
	visitRepo repository.SalesVisitRepository,
	customerRepo repository.CustomerRepository,
	movRepo repository.StockMovementRepository,
	salesStockRepo repository.SalesStockRepository,
) error) error {
	visitsSnap := append([]*entity.SalesVisit(nil), t.visits.visits...)
	productsSnap := append([]*entity.VisitProduct(nil), t.visits.products...)
	movSnap := append([]*entity.StockMovement(nil), t.movements.movements...)
	custSnap := make(map[string]*entity.Customer, len(t.customers.customers))
	for k, v := range t.customers.customers {
		cp := *v
		custSnap[k] = &cp
	}
	stockSnap := make(map[string]*entity.SalesProductStock, len(t.stocks.rows))
	for k, v := range t.stocks.rows {
		cp := *v
		stockSnap[k] = &cp
	}

	if err := fn(t.visits, t.customers, t.movements, t.stocks); err != nil {
		t.visits.visits = visitsSnap
		t.visits.products = productsSnap
		t.movements.movements = movSnap
		t.customers.customers = custSnap
		t.stocks.rows = stockSnap
		return err
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error             { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { return nil }
func (r *fakeUserRepo) List(role string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) SetActive(id string, active bool) error { return nil }

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error             { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { return nil }
func (r *fakeProductRepo) List(activeOnly bool, limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) SetActive(id string, active bool) error { return nil }

type fakeAttendanceRepo struct {
	rows []*entity.Attendance
}

func (r *fakeAttendanceRepo) Create(a *entity.Attendance) error {
	cp := *a
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *fakeAttendanceRepo) GetByUserAndDate(userID string, date time.Time) (*entity.Attendance, error) {
	for _, a := range r.rows {
		if a.UserID == userID && a.Date.Equal(date) {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Update(a *entity.Attendance) error {
	for i, row := range r.rows {
		if row.ID == a.ID {
			cp := *a
			r.rows[i] = &cp
			return nil
		}
	}
	return fmt.Errorf("absensi %s tidak ada", a.ID)
}

func (r *fakeAttendanceRepo) ListByUser(userID string, from, to *time.Time, limit, offset int) ([]*entity.Attendance, error) {
	return nil, nil
}
