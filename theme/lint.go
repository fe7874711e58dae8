package theme

import (
	"fmt"

	"github.com/AfanKulaglic/saraya-menu-api/models"
)

// Diagnostic severity levels.
const (
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Diagnostic is one finding from the config lint pass.
type Diagnostic struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// Lint inspects a venue's configuration for the classes of problems the
// fail-soft resolution path hides: typo'd theme ids, stale customizations,
// dangling category references, empty required variations, unknown section
// ids. Lint is admin tooling only and never affects what the storefront
// renders.
func Lint(v *models.Venue, presets []models.ThemePreset) []Diagnostic {
	var diags []Diagnostic

	if id := v.LayoutConfig.ActiveTheme; id != "" {
		if _, ok := FindPreset(presets, id); !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     "unknown-active-theme",
				Message:  fmt.Sprintf("active theme %q matches no preset; the storefront is rendering defaults", id),
			})
		}
	}

	for id := range v.ThemeCustomizations {
		if _, ok := FindPreset(presets, id); !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityInfo,
				Code:     "orphan-customization",
				Message:  fmt.Sprintf("saved customization for unknown theme %q will never be applied", id),
			})
		}
	}

	known := make(map[string]bool, len(v.Categories))
	for _, cat := range v.Categories {
		if known[cat.ID] {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     "duplicate-category",
				Message:  fmt.Sprintf("category id %q appears more than once", cat.ID),
			})
		}
		known[cat.ID] = true
	}

	for _, p := range v.Products {
		if p.CategoryID != "" && !known[p.CategoryID] {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     "dangling-category",
				Message:  fmt.Sprintf("product %q references missing category %q and will not appear in any grouped view", p.Name, p.CategoryID),
			})
		}
		for _, variation := range p.Variations {
			if variation.Required && len(variation.Options) == 0 {
				diags = append(diags, Diagnostic{
					Severity: SeverityWarning,
					Code:     "required-variation-empty",
					Message:  fmt.Sprintf("product %q has required variation %q with no options; it can never be ordered", p.Name, variation.Name),
				})
			}
		}
		if p.NameBs == "" {
			diags = append(diags, Diagnostic{
				Severity: SeverityInfo,
				Code:     "missing-translation",
				Message:  fmt.Sprintf("product %q has no secondary-language name", p.Name),
			})
		}
	}

	for _, s := range v.LayoutConfig.Sections {
		if _, ok := SectionRegistry[s.ID]; !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     "unknown-section",
				Message:  fmt.Sprintf("section %q has no renderer and is silently dropped", s.ID),
			})
		}
	}

	return diags
}
