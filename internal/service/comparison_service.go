package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Norwyx/supermarket-price-scraper/internal/dto"
	"github.com/Norwyx/supermarket-price-scraper/internal/model"
	"github.com/Norwyx/supermarket-price-scraper/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultLookback is the observation window used when the caller does
// not supply one.
const DefaultLookback = 24 * time.Hour

// ComparisonService compares the latest price of a product across
// supermarkets. It only reads and computes; safe for concurrent use.
type ComparisonService interface {
	// Compare reduces the product's observations within the lookback
	// window to the most recent one per supermarket and computes the
	// comparison statistics. Returns ErrProductNotFound or
	// ErrNoRecentPrices.
	Compare(ctx context.Context, productID uint, lookback time.Duration) (*dto.PriceComparison, error)

	// CompareBulk runs Compare for each id, silently skipping products
	// that are missing or have no recent prices. Results follow input
	// order. Batch size limits are enforced at the request layer.
	CompareBulk(ctx context.Context, productIDs []uint, lookback time.Duration) ([]dto.PriceComparison, error)
}

type comparisonService struct {
	products     repository.ProductRepository
	supermarkets repository.SupermarketRepository
	prices       repository.PriceRepository
}

func NewComparisonService(
	products repository.ProductRepository,
	supermarkets repository.SupermarketRepository,
	prices repository.PriceRepository,
) ComparisonService {
	return &comparisonService{products: products, supermarkets: supermarkets, prices: prices}
}

func (s *comparisonService) Compare(ctx context.Context, productID uint, lookback time.Duration) (*dto.PriceComparison, error) {
	if lookback <= 0 {
		lookback = DefaultLookback
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	since := time.Now().Add(-lookback)
	observations, err := s.prices.ListByProductSince(ctx, productID, since)
	if err != nil {
		return nil, err
	}

	latest := latestPerSupermarket(observations)
	if len(latest) == 0 {
		return nil, ErrNoRecentPrices
	}

	cheapest := latest[0].Price
	mostExpensive := latest[0].Price
	for _, p := range latest[1:] {
		if p.Price < cheapest {
			cheapest = p.Price
		}
		if p.Price > mostExpensive {
			mostExpensive = p.Price
		}
	}

	items := make([]dto.PriceComparisonItem, 0, len(latest))
	for _, p := range latest {
		items = append(items, dto.PriceComparisonItem{
			SupermarketID:   p.SupermarketID,
			SupermarketName: s.resolveSupermarketName(ctx, p.SupermarketID),
			Price:           p.Price,
			URL:             p.URL,
			// Exact equality on purpose: ties are only ties when the
			// stored values are identical.
			IsCheapest: p.Price == cheapest,
			ScrapedAt:  p.ScrapedAt,
		})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })

	difference := mostExpensive - cheapest

	return &dto.PriceComparison{
		ProductID:          product.ID,
		ProductName:        product.Name,
		Prices:             items,
		CheapestPrice:      cheapest,
		MostExpensivePrice: mostExpensive,
		PriceDifference:    difference,
		SavingsPercentage:  savingsPercentage(difference, mostExpensive),
	}, nil
}

func (s *comparisonService) CompareBulk(ctx context.Context, productIDs []uint, lookback time.Duration) ([]dto.PriceComparison, error) {
	comparisons := make([]dto.PriceComparison, 0, len(productIDs))
	for _, id := range productIDs {
		comparison, err := s.Compare(ctx, id, lookback)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrNoRecentPrices) {
				continue
			}
			return nil, err
		}
		comparisons = append(comparisons, *comparison)
	}
	return comparisons, nil
}

// latestPerSupermarket keeps the most recent observation per distinct
// supermarket. The query contract already orders rows newest first, but
// the reduction depends on that invariant, so it is re-established here
// instead of trusted.
func latestPerSupermarket(observations []model.Price) []model.Price {
	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].ScrapedAt.After(observations[j].ScrapedAt)
	})

	seen := make(map[uint]struct{}, len(observations))
	latest := make([]model.Price, 0, len(observations))
	for _, p := range observations {
		if _, ok := seen[p.SupermarketID]; ok {
			continue
		}
		seen[p.SupermarketID] = struct{}{}
		latest = append(latest, p)
	}
	return latest
}

// resolveSupermarketName falls back to "Unknown" for dangling
// references; a missing supermarket row must not fail the comparison.
func (s *comparisonService) resolveSupermarketName(ctx context.Context, id uint) string {
	supermarket, err := s.supermarkets.FindByID(ctx, id)
	if err != nil {
		return "Unknown"
	}
	return supermarket.Name
}

// savingsPercentage is round(100 * difference / mostExpensive, 2),
// defined as 0 when mostExpensive is 0. Rounding goes through decimal
// to avoid float64 representation noise at the second decimal.
func savingsPercentage(difference, mostExpensive float64) float64 {
	if mostExpensive <= 0 {
		return 0
	}
	pct := decimal.NewFromFloat(difference).
		Div(decimal.NewFromFloat(mostExpensive)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	f, _ := pct.Float64()
	return f
}
