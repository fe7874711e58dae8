// Package catalog holds the pure transition functions for a venue's
// categories and products. Every helper returns a rebuilt slice instead of
// mutating in place; handlers persist the result.
package catalog

import "github.com/AfanKulaglic/saraya-menu-api/models"

// IsReserved reports whether a category id is one of the system categories.
func IsReserved(id string) bool {
	return id == models.CategoryAll || id == models.CategoryPopular
}

// ReservedCategories returns fresh copies of the two system categories.
func ReservedCategories() []models.CategoryInfo {
	return []models.CategoryInfo{
		{ID: models.CategoryAll, Label: "All", LabelBs: "Sve", Icon: "🍽️", Color: "slate"},
		{ID: models.CategoryPopular, Label: "Popular", LabelBs: "Popularno", Icon: "⭐", Color: "amber"},
	}
}

// EnsureReserved re-injects the system categories at the front of the list
// if a stored bundle is missing them. The invariant is enforced on every
// read path rather than trusting stored data.
func EnsureReserved(categories []models.CategoryInfo) []models.CategoryInfo {
	present := map[string]bool{}
	for _, c := range categories {
		present[c.ID] = true
	}
	out := make([]models.CategoryInfo, 0, len(categories)+2)
	for _, r := range ReservedCategories() {
		if !present[r.ID] {
			out = append(out, r)
		}
	}
	return append(out, categories...)
}

// VenueCategories returns only the venue's own categories, excluding the
// system ones.
func VenueCategories(categories []models.CategoryInfo) []models.CategoryInfo {
	out := make([]models.CategoryInfo, 0, len(categories))
	for _, c := range categories {
		if !IsReserved(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// FindCategory looks a category up by id.
func FindCategory(categories []models.CategoryInfo, id string) (models.CategoryInfo, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.CategoryInfo{}, false
}

// UpsertCategory replaces the category with a matching id or appends it.
func UpsertCategory(categories []models.CategoryInfo, cat models.CategoryInfo) []models.CategoryInfo {
	out := make([]models.CategoryInfo, 0, len(categories)+1)
	replaced := false
	for _, c := range categories {
		if c.ID == cat.ID {
			out = append(out, cat)
			replaced = true
			continue
		}
		out = append(out, c)
	}
	if !replaced {
		out = append(out, cat)
	}
	return out
}

// RemoveCategory filters the category out by id. Products referencing it are
// left untouched; they simply stop appearing in grouped views. Callers are
// responsible for refusing reserved ids before calling this.
func RemoveCategory(categories []models.CategoryInfo, id string) ([]models.CategoryInfo, bool) {
	out := make([]models.CategoryInfo, 0, len(categories))
	removed := false
	for _, c := range categories {
		if c.ID == id {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out, removed
}

// ReorderCategories rebuilds the list following orderedIDs. Ids not present
// in the list are ignored; categories missing from orderedIDs keep their
// relative order at the tail. Array position is the sort order.
func ReorderCategories(categories []models.CategoryInfo, orderedIDs []string) []models.CategoryInfo {
	byID := make(map[string]models.CategoryInfo, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	out := make([]models.CategoryInfo, 0, len(categories))
	placed := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if c, ok := byID[id]; ok && !placed[id] {
			out = append(out, c)
			placed[id] = true
		}
	}
	for _, c := range categories {
		if !placed[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// FindProduct looks a product up by id.
func FindProduct(products []models.ProductItem, id string) (models.ProductItem, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.ProductItem{}, false
}

// UpsertProduct replaces the product with a matching id or appends it.
func UpsertProduct(products []models.ProductItem, item models.ProductItem) []models.ProductItem {
	out := make([]models.ProductItem, 0, len(products)+1)
	replaced := false
	for _, p := range products {
		if p.ID == item.ID {
			out = append(out, item)
			replaced = true
			continue
		}
		out = append(out, p)
	}
	if !replaced {
		out = append(out, item)
	}
	return out
}

// RemoveProduct filters the product out by id.
func RemoveProduct(products []models.ProductItem, id string) ([]models.ProductItem, bool) {
	out := make([]models.ProductItem, 0, len(products))
	removed := false
	for _, p := range products {
		if p.ID == id {
			removed = true
			continue
		}
		out = append(out, p)
	}
	return out, removed
}

// ReorderProducts reassigns SortOrder for the products of one category
// following orderedIDs. Products of other categories are untouched, so each
// category keeps an independent ordering.
func ReorderProducts(products []models.ProductItem, categoryID string, orderedIDs []string) []models.ProductItem {
	position := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		position[id] = i
	}
	out := make([]models.ProductItem, len(products))
	for i, p := range products {
		if p.CategoryID == categoryID {
			if pos, ok := position[p.ID]; ok {
				p.SortOrder = pos
			}
		}
		out[i] = p
	}
	return out
}
