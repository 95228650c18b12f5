package insights

import (
	// Go Internal Packages
	"context"
	"sort"
	"strings"

	// Local Packages
	errors "bospay-gateway/errors"
	models "bospay-gateway/models"
)

// LowStockThreshold is the stock level at or below which a product is
// flagged for restocking.
const LowStockThreshold = 20

// TopProducts returns the n best-stocked products, highest stock first.
func (s *Service) TopProducts(ctx context.Context, token string, n int) ([]models.Product, error) {
	if token == "" {
		return nil, errors.EmptyParamErr("token")
	}
	if n <= 0 {
		n = 3
	}

	products, err := s.backend.ListProducts(ctx, token)
	if err != nil {
		return nil, err
	}

	ranked := make([]models.Product, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stock > ranked[j].Stock
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// StockReport is the low-stock screening of the product inventory.
type StockReport struct {
	Products []models.Product `json:"products"`
	LowCount int              `json:"low_count"`
}

// LowStock screens the inventory for products at or below the restock
// threshold, optionally narrowed by a case-insensitive name search, and
// reports how many products are low overall.
func (s *Service) LowStock(ctx context.Context, token, search string) (*StockReport, error) {
	if token == "" {
		return nil, errors.EmptyParamErr("token")
	}

	products, err := s.backend.ListProducts(ctx, token)
	if err != nil {
		return nil, err
	}

	lowCount := 0
	for _, p := range products {
		if p.Stock <= LowStockThreshold {
			lowCount++
		}
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Stock > LowStockThreshold {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		matched = append(matched, p)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Stock < matched[j].Stock
	})

	return &StockReport{Products: matched, LowCount: lowCount}, nil
}
