package catalog

import (
	"reflect"
	"testing"

	"github.com/AfanKulaglic/saraya-menu-api/models"
)

func TestEnsureReserved(t *testing.T) {
	t.Parallel()

	own := []models.CategoryInfo{{ID: "mains", Label: "Main Courses"}}

	got := EnsureReserved(own)

	if len(got) != 3 {
		t.Fatalf("got %d categories, want 3", len(got))
	}
	if got[0].ID != models.CategoryAll || got[1].ID != models.CategoryPopular {
		t.Fatalf("system categories not injected first: %+v", got)
	}

	// Idempotent: a second pass adds nothing
	again := EnsureReserved(got)
	if !reflect.DeepEqual(again, got) {
		t.Fatalf("EnsureReserved is not idempotent: %+v", again)
	}
}

func TestVenueCategoriesExcludesReserved(t *testing.T) {
	t.Parallel()

	all := EnsureReserved([]models.CategoryInfo{{ID: "mains", Label: "Main Courses"}})
	got := VenueCategories(all)

	if len(got) != 1 || got[0].ID != "mains" {
		t.Fatalf("VenueCategories = %+v, want only mains", got)
	}
}

func TestUpsertCategory(t *testing.T) {
	t.Parallel()

	cats := []models.CategoryInfo{{ID: "mains", Label: "Main Courses"}}

	cats = UpsertCategory(cats, models.CategoryInfo{ID: "desserts", Label: "Desserts"})
	if len(cats) != 2 {
		t.Fatalf("append failed: %+v", cats)
	}

	cats = UpsertCategory(cats, models.CategoryInfo{ID: "mains", Label: "Renamed"})
	if len(cats) != 2 || cats[0].Label != "Renamed" {
		t.Fatalf("replace failed: %+v", cats)
	}
}

func TestRemoveCategoryKeepsProducts(t *testing.T) {
	t.Parallel()

	cats := []models.CategoryInfo{
		{ID: "mains", Label: "Main Courses"},
		{ID: "desserts", Label: "Desserts"},
	}
	products := []models.ProductItem{
		{ID: "p1", Name: "Baklava", CategoryID: "desserts"},
		{ID: "p2", Name: "Tufahija", CategoryID: "desserts"},
		{ID: "p3", Name: "Ćevapi", CategoryID: "mains"},
	}

	cats, removed := RemoveCategory(cats, "desserts")
	if !removed {
		t.Fatal("desserts not removed")
	}

	// Products survive the category's deletion unchanged
	if len(products) != 3 {
		t.Fatalf("products mutated: %+v", products)
	}

	// But the orphans no longer appear in any grouped view
	groups := GroupByCategory(cats, products)
	for _, g := range groups {
		if IsReserved(g.Category.ID) {
			continue
		}
		for _, p := range g.Products {
			if p.CategoryID == "desserts" {
				t.Fatalf("orphaned product %q still grouped under %q", p.Name, g.Category.ID)
			}
		}
	}
}

func TestReorderCategories(t *testing.T) {
	t.Parallel()

	cats := []models.CategoryInfo{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}

	tests := []struct {
		name    string
		ordered []string
		wantIDs []string
	}{
		{"full reorder", []string{"c", "a", "b"}, []string{"c", "a", "b"}},
		{"unknown ids ignored", []string{"x", "b", "a"}, []string{"b", "a", "c"}},
		{"missing ids keep tail order", []string{"c"}, []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ReorderCategories(cats, tt.ordered)
			var ids []string
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Fatalf("order = %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestReorderProductsIsCategoryScoped(t *testing.T) {
	t.Parallel()

	products := []models.ProductItem{
		{ID: "d1", CategoryID: "desserts", SortOrder: 0},
		{ID: "d2", CategoryID: "desserts", SortOrder: 1},
		{ID: "m1", CategoryID: "mains", SortOrder: 0},
		{ID: "m2", CategoryID: "mains", SortOrder: 1},
	}

	got := ReorderProducts(products, "desserts", []string{"d2", "d1"})

	byID := map[string]models.ProductItem{}
	for _, p := range got {
		byID[p.ID] = p
	}
	if byID["d2"].SortOrder != 0 || byID["d1"].SortOrder != 1 {
		t.Fatalf("desserts not resequenced: %+v", got)
	}
	if byID["m1"].SortOrder != 0 || byID["m2"].SortOrder != 1 {
		t.Fatalf("mains order touched: %+v", got)
	}
}

func TestGroupByCategory(t *testing.T) {
	t.Parallel()

	cats := []models.CategoryInfo{{ID: "mains", Label: "Main Courses"}}
	products := []models.ProductItem{
		{ID: "p1", Name: "Ćevapi", CategoryID: "mains", Popular: true, SortOrder: 1},
		{ID: "p2", Name: "Begova čorba", CategoryID: "mains", SortOrder: 0},
		{ID: "p3", Name: "Orphan", CategoryID: "gone"},
	}

	groups := GroupByCategory(cats, products)

	byID := map[string][]models.ProductItem{}
	for _, g := range groups {
		byID[g.Category.ID] = g.Products
	}

	if len(byID[models.CategoryAll]) != 3 {
		t.Fatalf("'all' group has %d products, want 3", len(byID[models.CategoryAll]))
	}
	if len(byID[models.CategoryPopular]) != 1 || byID[models.CategoryPopular][0].ID != "p1" {
		t.Fatalf("'popular' group wrong: %+v", byID[models.CategoryPopular])
	}
	mains := byID["mains"]
	if len(mains) != 2 {
		t.Fatalf("'mains' group has %d products, want 2", len(mains))
	}
	if mains[0].ID != "p2" || mains[1].ID != "p1" {
		t.Fatalf("'mains' not sorted by SortOrder: %+v", mains)
	}
}

func TestSearchProducts(t *testing.T) {
	t.Parallel()

	products := []models.ProductItem{
		{ID: "p1", Name: "Ćevapi", NameBs: "Ćevapi", Description: "Grilled minced meat"},
		{ID: "p2", Name: "Baklava", NameBs: "Baklava", DescriptionBs: "Slatko od oraha"},
	}

	if got := SearchProducts(products, "grilled"); len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("english description search failed: %+v", got)
	}
	if got := SearchProducts(products, "ORAHA"); len(got) != 1 || got[0].ID != "p2" {
		t.Fatalf("secondary-language search failed: %+v", got)
	}
	if got := SearchProducts(products, "  "); len(got) != 2 {
		t.Fatalf("blank query should return all: %+v", got)
	}
}

func TestSeedCategoriesPerVenueType(t *testing.T) {
	t.Parallel()

	for _, vt := range []models.VenueType{models.VenueRestaurant, models.VenueCafe, models.VenueBar} {
		seeds := SeedCategories(vt)
		if len(seeds) == 0 {
			t.Fatalf("no seeds for venue type %q", vt)
		}
		for _, c := range seeds {
			if IsReserved(c.ID) {
				t.Fatalf("seed list for %q contains system category %q", vt, c.ID)
			}
			if c.Label == "" || c.LabelBs == "" {
				t.Fatalf("seed %q for %q missing labels", c.ID, vt)
			}
		}
	}
}
