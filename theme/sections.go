package theme

import "github.com/AfanKulaglic/saraya-menu-api/models"

// RenderPlan is one renderable entry of the storefront page, in final order.
type RenderPlan struct {
	ID        string `json:"id"`
	Variant   string `json:"variant,omitempty"`
	Component string `json:"component"`
}

// SectionRegistry maps section ids to the storefront component that renders
// them. Entries with no registered component are dropped from the plan.
var SectionRegistry = map[string]string{
	"hero":         "HeroBanner",
	"search":       "SearchBar",
	"category-bar": "CategoryBar",
	"popular":      "PopularCarousel",
	"menu":         "MenuGrid",
	"info":         "InfoPanel",
	"footer":       "FooterBlock",
}

// ResolveSections projects the ordered section list into the final render
// sequence: hidden sections are filtered out, array order is preserved, and
// unknown section ids are dropped silently so a stale id can never take the
// page down. Pure projection; identical input yields identical output.
func ResolveSections(sections []models.MenuSectionItem, registry map[string]string) []RenderPlan {
	plan := make([]RenderPlan, 0, len(sections))
	for _, s := range sections {
		if !s.Visible {
			continue
		}
		component, ok := registry[s.ID]
		if !ok {
			continue
		}
		plan = append(plan, RenderPlan{ID: s.ID, Variant: s.Variant, Component: component})
	}
	return plan
}

// MoveSectionUp swaps the entry at i with its predecessor. A no-op at the
// top boundary or for an out-of-range index. Returns a new slice.
func MoveSectionUp(sections []models.MenuSectionItem, i int) []models.MenuSectionItem {
	out := cloneSections(sections)
	if i <= 0 || i >= len(out) {
		return out
	}
	out[i-1], out[i] = out[i], out[i-1]
	return out
}

// MoveSectionDown swaps the entry at i with its successor. A no-op at the
// bottom boundary or for an out-of-range index. Returns a new slice.
func MoveSectionDown(sections []models.MenuSectionItem, i int) []models.MenuSectionItem {
	out := cloneSections(sections)
	if i < 0 || i >= len(out)-1 {
		return out
	}
	out[i], out[i+1] = out[i+1], out[i]
	return out
}
