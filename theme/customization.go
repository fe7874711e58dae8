package theme

import "github.com/AfanKulaglic/saraya-menu-api/models"

// SnapshotCurrent captures a venue's live configuration triple as a
// customization bundle.
func SnapshotCurrent(v *models.Venue) models.ThemeCustomization {
	return models.ThemeCustomization{
		ComponentStyles: mergeRecord(v.ComponentStyles, nil),
		LayoutConfig:    PatchFromLayout(v.LayoutConfig),
		PageContent:     mergeRecord(v.PageContent, nil),
	}
}

// SaveCustomization upserts the bundle saved for a theme. Last write wins;
// there is no versioning or conflict detection.
func SaveCustomization(m map[string]models.ThemeCustomization, themeID string, bundle models.ThemeCustomization) map[string]models.ThemeCustomization {
	if m == nil {
		m = make(map[string]models.ThemeCustomization)
	}
	m[themeID] = bundle
	return m
}

// LoadCustomization is a plain lookup. Fallback for a missing bundle is the
// resolution engine's job, not the store's.
func LoadCustomization(m map[string]models.ThemeCustomization, themeID string) (models.ThemeCustomization, bool) {
	bundle, ok := m[themeID]
	return bundle, ok
}

// SwitchTheme is the single transition that changes a venue's active theme:
// it snapshots the current configuration under the outgoing theme id so
// hand edits survive a round trip, resolves the incoming theme, and commits
// the resolved triple onto the venue. Callers persist the venue afterwards.
func SwitchTheme(v *models.Venue, newThemeID string, presets []models.ThemePreset, defaults Defaults) models.EffectiveConfig {
	current := v.LayoutConfig.ActiveTheme
	if current != "" {
		v.ThemeCustomizations = SaveCustomization(v.ThemeCustomizations, current, SnapshotCurrent(v))
	}

	eff := Resolve(newThemeID, v.ThemeCustomizations, presets, defaults)

	// A preset that ships no content overrides keeps the venue's current
	// copy text instead of resetting it to the defaults.
	if preset, ok := FindPreset(presets, newThemeID); ok && len(preset.Content) == 0 {
		if _, saved := v.ThemeCustomizations[newThemeID]; !saved {
			eff.PageContent = mergeRecord(v.PageContent, nil)
		}
	}

	v.ComponentStyles = eff.ComponentStyles
	v.LayoutConfig = eff.LayoutConfig
	v.PageContent = eff.PageContent
	return eff
}
