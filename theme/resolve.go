package theme

import "github.com/AfanKulaglic/saraya-menu-api/models"

// Resolve computes the effective configuration triple for a theme.
//
// Precedence per field: saved customization > preset > default. Merging is
// shallow-per-field; the Sections list is the one exception and is replaced
// wholesale, never merged entry by entry. Resolution never fails: an unknown
// theme id yields the defaults unchanged, so the storefront always has a
// complete configuration to render.
func Resolve(themeID string, customizations map[string]models.ThemeCustomization, presets []models.ThemePreset, defaults Defaults) models.EffectiveConfig {
	preset, found := FindPreset(presets, themeID)
	if !found {
		return models.EffectiveConfig{
			ComponentStyles: mergeRecord(defaults.Styles, nil),
			LayoutConfig:    cloneLayout(defaults.Layout),
			PageContent:     mergeRecord(defaults.Content, nil),
		}
	}

	if saved, ok := customizations[themeID]; ok {
		// The venue's hand edits for this theme are sticky and win over
		// the preset entirely.
		layout := ApplyLayoutPatch(defaults.Layout, saved.LayoutConfig)
		layout.ActiveTheme = themeID
		return models.EffectiveConfig{
			ComponentStyles: mergeRecord(defaults.Styles, saved.ComponentStyles),
			LayoutConfig:    layout,
			PageContent:     mergeRecord(defaults.Content, saved.PageContent),
		}
	}

	layout := ApplyLayoutPatch(defaults.Layout, preset.Layout)
	layout.ActiveTheme = themeID
	return models.EffectiveConfig{
		ComponentStyles: mergeRecord(defaults.Styles, preset.Styles),
		LayoutConfig:    layout,
		PageContent:     mergeRecord(defaults.Content, preset.Content),
	}
}

// ApplyOverride shallow-merges a partial record over a base record and
// returns the result as a new map. Used for every field-level admin edit.
// No value validation happens here; that belongs to the editing surface.
func ApplyOverride[M ~map[string]string](record, partial M) M {
	return mergeRecord(record, partial)
}

// ApplyLayoutPatch overlays a partial layout onto a base layout. Empty
// fields in the patch leave the base value in place. Sections, when set,
// replaces the base list wholesale.
func ApplyLayoutPatch(base models.LayoutConfig, patch models.LayoutPatch) models.LayoutConfig {
	out := cloneLayout(base)
	if patch.HeroStyle != "" {
		out.HeroStyle = patch.HeroStyle
	}
	if patch.SearchStyle != "" {
		out.SearchStyle = patch.SearchStyle
	}
	if patch.CategoryBarStyle != "" {
		out.CategoryBarStyle = patch.CategoryBarStyle
	}
	if patch.CardLayout != "" {
		out.CardLayout = patch.CardLayout
	}
	if patch.FontFamily != "" {
		out.FontFamily = patch.FontFamily
	}
	if patch.HeadingFont != "" {
		out.HeadingFont = patch.HeadingFont
	}
	if patch.AnimationLevel != "" {
		out.AnimationLevel = patch.AnimationLevel
	}
	if patch.Density != "" {
		out.Density = patch.Density
	}
	if patch.SectionGap != "" {
		out.SectionGap = patch.SectionGap
	}
	if patch.Sections != nil {
		out.Sections = cloneSections(patch.Sections)
	}
	return out
}

// PatchFromLayout snapshots a full layout as a patch, used when saving the
// current state into the customization map.
func PatchFromLayout(l models.LayoutConfig) models.LayoutPatch {
	return models.LayoutPatch{
		HeroStyle:        l.HeroStyle,
		SearchStyle:      l.SearchStyle,
		CategoryBarStyle: l.CategoryBarStyle,
		CardLayout:       l.CardLayout,
		FontFamily:       l.FontFamily,
		HeadingFont:      l.HeadingFont,
		AnimationLevel:   l.AnimationLevel,
		Density:          l.Density,
		SectionGap:       l.SectionGap,
		Sections:         cloneSections(l.Sections),
	}
}

func mergeRecord[M ~map[string]string](base, override M) M {
	out := make(M, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func cloneLayout(l models.LayoutConfig) models.LayoutConfig {
	out := l
	out.Sections = cloneSections(l.Sections)
	return out
}

func cloneSections(sections []models.MenuSectionItem) []models.MenuSectionItem {
	if sections == nil {
		return nil
	}
	out := make([]models.MenuSectionItem, len(sections))
	copy(out, sections)
	return out
}
