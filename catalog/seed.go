package catalog

import "github.com/AfanKulaglic/saraya-menu-api/models"

// SeedCategories returns the starter categories for a newly created venue,
// chosen by venue type. The system categories are not included here; they
// are injected on read by EnsureReserved.
func SeedCategories(vt models.VenueType) []models.CategoryInfo {
	switch vt {
	case models.VenueCafe:
		return []models.CategoryInfo{
			{ID: "coffee", Label: "Coffee", LabelBs: "Kafa", Icon: "☕", Color: "amber"},
			{ID: "pastries", Label: "Pastries", LabelBs: "Peciva", Icon: "🥐", Color: "orange"},
			{ID: "breakfast", Label: "Breakfast", LabelBs: "Doručak", Icon: "🍳", Color: "yellow"},
			{ID: "cold-drinks", Label: "Cold Drinks", LabelBs: "Hladna pića", Icon: "🧋", Color: "sky"},
		}
	case models.VenueBar:
		return []models.CategoryInfo{
			{ID: "cocktails", Label: "Cocktails", LabelBs: "Kokteli", Icon: "🍸", Color: "fuchsia"},
			{ID: "beer", Label: "Beer", LabelBs: "Pivo", Icon: "🍺", Color: "amber"},
			{ID: "wine", Label: "Wine", LabelBs: "Vino", Icon: "🍷", Color: "rose"},
			{ID: "snacks", Label: "Snacks", LabelBs: "Grickalice", Icon: "🥜", Color: "orange"},
		}
	default:
		return []models.CategoryInfo{
			{ID: "starters", Label: "Starters", LabelBs: "Predjela", Icon: "🥗", Color: "green"},
			{ID: "mains", Label: "Main Courses", LabelBs: "Glavna jela", Icon: "🍖", Color: "red"},
			{ID: "desserts", Label: "Desserts", LabelBs: "Deserti", Icon: "🍰", Color: "pink"},
			{ID: "drinks", Label: "Drinks", LabelBs: "Pića", Icon: "🥤", Color: "sky"},
		}
	}
}
