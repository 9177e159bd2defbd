package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Norwyx/supermarket-price-scraper/internal/model"
	"github.com/Norwyx/supermarket-price-scraper/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory repositories ───────────────────────────────────────────────────

type memProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uint]*model.Product), nextID: 1}
}

func (r *memProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	p.CreatedAt = time.Now()
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *memProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU != nil && *p.SKU == sku {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memProductRepo) List(_ context.Context, _, _ int) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProductRepo) ListByCategory(_ context.Context, categoryID uint, _, _ int) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

type memSupermarketRepo struct {
	supermarkets map[uint]*model.Supermarket
	nextID       uint
}

func newMemSupermarketRepo() *memSupermarketRepo {
	return &memSupermarketRepo{supermarkets: make(map[uint]*model.Supermarket), nextID: 1}
}

func (r *memSupermarketRepo) Create(_ context.Context, s *model.Supermarket) error {
	if s.ID == 0 {
		s.ID = r.nextID
		r.nextID++
	}
	s.CreatedAt = time.Now()
	r.supermarkets[s.ID] = s
	return nil
}

func (r *memSupermarketRepo) FindByID(_ context.Context, id uint) (*model.Supermarket, error) {
	s, ok := r.supermarkets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *memSupermarketRepo) FindByName(_ context.Context, name string) (*model.Supermarket, error) {
	for _, s := range r.supermarkets {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSupermarketRepo) List(_ context.Context, _, _ int) ([]model.Supermarket, error) {
	var out []model.Supermarket
	for _, s := range r.supermarkets {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memSupermarketRepo) Update(_ context.Context, s *model.Supermarket) error {
	r.supermarkets[s.ID] = s
	return nil
}

func (r *memSupermarketRepo) Delete(_ context.Context, id uint) error {
	delete(r.supermarkets, id)
	return nil
}

type memPriceRepo struct {
	prices []model.Price
	nextID uint
}

func newMemPriceRepo() *memPriceRepo {
	return &memPriceRepo{nextID: 1}
}

func (r *memPriceRepo) Create(_ context.Context, p *model.Price) error {
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	p.CreatedAt = time.Now()
	r.prices = append(r.prices, *p)
	return nil
}

func (r *memPriceRepo) FindByID(_ context.Context, id uint) (*model.Price, error) {
	for i := range r.prices {
		if r.prices[i].ID == id {
			return &r.prices[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memPriceRepo) ListByProductSince(_ context.Context, productID uint, since time.Time) ([]model.Price, error) {
	var out []model.Price
	for _, p := range r.prices {
		if p.ProductID == productID && !p.ScrapedAt.Before(since) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memPriceRepo) ListRecent(_ context.Context, since time.Time, skip, limit int) ([]model.Price, error) {
	var out []model.Price
	for _, p := range r.prices {
		if !p.ScrapedAt.Before(since) {
			out = append(out, p)
		}
	}
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// ── Fixtures ─────────────────────────────────────────────────────────────────

type comparisonFixture struct {
	products     *memProductRepo
	supermarkets *memSupermarketRepo
	prices       *memPriceRepo
	svc          service.ComparisonService
}

func newComparisonFixture(t *testing.T) *comparisonFixture {
	t.Helper()
	f := &comparisonFixture{
		products:     newMemProductRepo(),
		supermarkets: newMemSupermarketRepo(),
		prices:       newMemPriceRepo(),
	}
	f.svc = service.NewComparisonService(f.products, f.supermarkets, f.prices)
	return f
}

func (f *comparisonFixture) addProduct(t *testing.T, name string) *model.Product {
	t.Helper()
	p := &model.Product{Name: name, CategoryID: 1}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *comparisonFixture) addSupermarket(t *testing.T, name string) *model.Supermarket {
	t.Helper()
	s := &model.Supermarket{Name: name, WebsiteURL: "https://" + name + ".example.com"}
	require.NoError(t, f.supermarkets.Create(context.Background(), s))
	return s
}

func (f *comparisonFixture) addPrice(t *testing.T, productID, supermarketID uint, price float64, age time.Duration) {
	t.Helper()
	require.NoError(t, f.prices.Create(context.Background(), &model.Price{
		ProductID:     productID,
		SupermarketID: supermarketID,
		Price:         price,
		ScrapedAt:     time.Now().Add(-age),
	}))
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCompare_LatestPerSupermarket(t *testing.T) {
	f := newComparisonFixture(t)
	milk := f.addProduct(t, "Whole Milk 1L")
	exito := f.addSupermarket(t, "exito")
	carulla := f.addSupermarket(t, "carulla")
	jumbo := f.addSupermarket(t, "jumbo")

	// Each supermarket has a stale observation that must be shadowed by
	// its newer one.
	f.addPrice(t, milk.ID, exito.ID, 4.50, 10*time.Hour)
	f.addPrice(t, milk.ID, exito.ID, 3.90, 1*time.Hour)
	f.addPrice(t, milk.ID, carulla.ID, 4.10, 2*time.Hour)
	f.addPrice(t, milk.ID, jumbo.ID, 3.80, 8*time.Hour)
	f.addPrice(t, milk.ID, jumbo.ID, 4.00, 3*time.Hour)

	cmp, err := f.svc.Compare(context.Background(), milk.ID, 24*time.Hour)
	require.NoError(t, err)

	assert.Equal(t, milk.ID, cmp.ProductID)
	assert.Equal(t, "Whole Milk 1L", cmp.ProductName)
	require.Len(t, cmp.Prices, 3)

	// Sorted ascending by price; one entry per supermarket using the
	// newest observation.
	assert.Equal(t, exito.ID, cmp.Prices[0].SupermarketID)
	assert.Equal(t, 3.90, cmp.Prices[0].Price)
	assert.True(t, cmp.Prices[0].IsCheapest)
	assert.Equal(t, jumbo.ID, cmp.Prices[1].SupermarketID)
	assert.Equal(t, 4.00, cmp.Prices[1].Price)
	assert.False(t, cmp.Prices[1].IsCheapest)
	assert.Equal(t, carulla.ID, cmp.Prices[2].SupermarketID)
	assert.Equal(t, 4.10, cmp.Prices[2].Price)
	assert.False(t, cmp.Prices[2].IsCheapest)

	assert.Equal(t, 3.90, cmp.CheapestPrice)
	assert.Equal(t, 4.10, cmp.MostExpensivePrice)
	assert.InDelta(t, 0.20, cmp.PriceDifference, 1e-9)
	assert.Equal(t, 4.88, cmp.SavingsPercentage)
}

func TestCompare_ProductNotFound(t *testing.T) {
	f := newComparisonFixture(t)

	_, err := f.svc.Compare(context.Background(), 999, 24*time.Hour)
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestCompare_NoObservationsInWindow(t *testing.T) {
	f := newComparisonFixture(t)
	milk := f.addProduct(t, "Whole Milk 1L")
	exito := f.addSupermarket(t, "exito")

	// Observation exists but is older than the lookback window.
	f.addPrice(t, milk.ID, exito.ID, 3.90, 48*time.Hour)

	_, err := f.svc.Compare(context.Background(), milk.ID, 24*time.Hour)
	assert.ErrorIs(t, err, service.ErrNoRecentPrices)
}

func TestCompare_TiedCheapest(t *testing.T) {
	f := newComparisonFixture(t)
	rice := f.addProduct(t, "White Rice 500g")
	a := f.addSupermarket(t, "a")
	b := f.addSupermarket(t, "b")
	c := f.addSupermarket(t, "c")

	f.addPrice(t, rice.ID, a.ID, 5.00, time.Hour)
	f.addPrice(t, rice.ID, b.ID, 5.00, time.Hour)
	f.addPrice(t, rice.ID, c.ID, 6.00, time.Hour)

	cmp, err := f.svc.Compare(context.Background(), rice.ID, 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, cmp.Prices, 3)

	assert.True(t, cmp.Prices[0].IsCheapest)
	assert.True(t, cmp.Prices[1].IsCheapest)
	assert.False(t, cmp.Prices[2].IsCheapest)
	assert.Equal(t, 16.67, cmp.SavingsPercentage)
}

func TestCompare_SingleSupermarket(t *testing.T) {
	f := newComparisonFixture(t)
	juice := f.addProduct(t, "Orange Juice 1.5L")
	exito := f.addSupermarket(t, "exito")

	f.addPrice(t, juice.ID, exito.ID, 6.50, time.Hour)

	cmp, err := f.svc.Compare(context.Background(), juice.ID, 24*time.Hour)
	require.NoError(t, err)

	require.Len(t, cmp.Prices, 1)
	assert.True(t, cmp.Prices[0].IsCheapest)
	assert.Equal(t, 6.50, cmp.CheapestPrice)
	assert.Equal(t, 6.50, cmp.MostExpensivePrice)
	assert.Equal(t, 0.0, cmp.PriceDifference)
	assert.Equal(t, 0.0, cmp.SavingsPercentage)
}

func TestCompare_ZeroPrice(t *testing.T) {
	f := newComparisonFixture(t)
	freebie := f.addProduct(t, "Promo Sample")
	exito := f.addSupermarket(t, "exito")

	f.addPrice(t, freebie.ID, exito.ID, 0, time.Hour)

	cmp, err := f.svc.Compare(context.Background(), freebie.ID, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cmp.SavingsPercentage)
}

func TestCompare_UnknownSupermarketName(t *testing.T) {
	f := newComparisonFixture(t)
	milk := f.addProduct(t, "Whole Milk 1L")

	// Observation referencing a supermarket row that no longer exists.
	f.addPrice(t, milk.ID, 42, 3.90, time.Hour)

	cmp, err := f.svc.Compare(context.Background(), milk.ID, 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, cmp.Prices, 1)
	assert.Equal(t, "Unknown", cmp.Prices[0].SupermarketName)
}

func TestCompare_DefaultLookbackWhenZero(t *testing.T) {
	f := newComparisonFixture(t)
	milk := f.addProduct(t, "Whole Milk 1L")
	exito := f.addSupermarket(t, "exito")

	f.addPrice(t, milk.ID, exito.ID, 3.90, 12*time.Hour)

	cmp, err := f.svc.Compare(context.Background(), milk.ID, 0)
	require.NoError(t, err)
	require.Len(t, cmp.Prices, 1)
}

func TestCompareBulk_SkipsMissingAndEmpty(t *testing.T) {
	f := newComparisonFixture(t)
	milk := f.addProduct(t, "Whole Milk 1L")
	rice := f.addProduct(t, "White Rice 500g")
	stale := f.addProduct(t, "Stale Product")
	exito := f.addSupermarket(t, "exito")

	f.addPrice(t, milk.ID, exito.ID, 4.10, time.Hour)
	f.addPrice(t, rice.ID, exito.ID, 2.30, time.Hour)
	f.addPrice(t, stale.ID, exito.ID, 1.00, 72*time.Hour)

	// 999 does not exist, stale has no observation in the window; both
	// are skipped without failing the batch. Order follows the input.
	results, err := f.svc.CompareBulk(context.Background(), []uint{999, rice.ID, stale.ID, milk.ID}, 24*time.Hour)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, rice.ID, results[0].ProductID)
	assert.Equal(t, milk.ID, results[1].ProductID)
}

func TestCompareBulk_AllSkipped(t *testing.T) {
	f := newComparisonFixture(t)

	results, err := f.svc.CompareBulk(context.Background(), []uint{1, 2, 3}, 24*time.Hour)
	require.NoError(t, err)
	assert.Empty(t, results)
}
