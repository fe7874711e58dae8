package catalog

import (
	"sort"
	"strings"

	"github.com/AfanKulaglic/saraya-menu-api/models"
)

// CategoryGroup is one category with its products in render order.
type CategoryGroup struct {
	Category models.CategoryInfo  `json:"category"`
	Products []models.ProductItem `json:"products"`
}

// GroupByCategory builds the grouped storefront view. The "all" system
// category carries every product, "popular" carries the popular-flagged
// ones, and the venue's own categories carry their products sorted by
// SortOrder. Products whose category id matches nothing drop out of the
// grouped views silently; they remain in the flat product list.
func GroupByCategory(categories []models.CategoryInfo, products []models.ProductItem) []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(categories)+2)
	for _, c := range EnsureReserved(categories) {
		var members []models.ProductItem
		switch c.ID {
		case models.CategoryAll:
			members = append(members, products...)
		case models.CategoryPopular:
			for _, p := range products {
				if p.Popular {
					members = append(members, p)
				}
			}
		default:
			for _, p := range products {
				if p.CategoryID == c.ID {
					members = append(members, p)
				}
			}
		}
		sortProducts(members)
		groups = append(groups, CategoryGroup{Category: c, Products: members})
	}
	return groups
}

// SearchProducts filters products by a case-insensitive match on name or
// description, in either language.
func SearchProducts(products []models.ProductItem, query string) []models.ProductItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	var out []models.ProductItem
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.NameBs), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.DescriptionBs), q) {
			out = append(out, p)
		}
	}
	return out
}

func sortProducts(products []models.ProductItem) {
	sort.SliceStable(products, func(i, j int) bool {
		if products[i].SortOrder != products[j].SortOrder {
			return products[i].SortOrder < products[j].SortOrder
		}
		return products[i].Name < products[j].Name
	})
}
