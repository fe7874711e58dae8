package models

// PageContent is a flat record of named storefront text fields. Bilingual
// fields live as sibling keys with the _bs suffix. Missing keys fall back to
// the default registry at resolution time.
type PageContent map[string]string

// ComponentStyles is a flat record of named style fields: hex colors plus
// enumerated variant tokens (card radius, shadow depth, button shape).
type ComponentStyles map[string]string

// MenuSectionItem is one entry of the ordered storefront section list.
// Array position is the authoritative render order.
type MenuSectionItem struct {
	ID      string `json:"id"`
	Visible bool   `json:"visible"`
	Variant string `json:"variant,omitempty"`
}

// LayoutConfig holds the structural choices for the storefront page.
type LayoutConfig struct {
	ActiveTheme      string            `json:"active_theme"`
	HeroStyle        string            `json:"hero_style"`
	SearchStyle      string            `json:"search_style"`
	CategoryBarStyle string            `json:"category_bar_style"`
	CardLayout       string            `json:"card_layout"`
	FontFamily       string            `json:"font_family"`
	HeadingFont      string            `json:"heading_font"`
	AnimationLevel   string            `json:"animation_level"`
	Density          string            `json:"density"`
	SectionGap       string            `json:"section_gap"`
	Sections         []MenuSectionItem `json:"sections"`
}

// LayoutPatch is a partial LayoutConfig. Empty strings and a nil Sections
// slice mean "not overridden". Sections, when present, replaces the base
// list wholesale; section lists are never field-merged.
type LayoutPatch struct {
	HeroStyle        string            `json:"hero_style,omitempty"`
	SearchStyle      string            `json:"search_style,omitempty"`
	CategoryBarStyle string            `json:"category_bar_style,omitempty"`
	CardLayout       string            `json:"card_layout,omitempty"`
	FontFamily       string            `json:"font_family,omitempty"`
	HeadingFont      string            `json:"heading_font,omitempty"`
	AnimationLevel   string            `json:"animation_level,omitempty"`
	Density          string            `json:"density,omitempty"`
	SectionGap       string            `json:"section_gap,omitempty"`
	Sections         []MenuSectionItem `json:"sections,omitempty"`
}

// ThemeCustomization is the bundle a venue saved while a given theme was
// active, keyed by theme id in Venue.ThemeCustomizations.
type ThemeCustomization struct {
	ComponentStyles ComponentStyles `json:"component_styles"`
	LayoutConfig    LayoutPatch     `json:"layout_config"`
	PageContent     PageContent     `json:"page_content"`
}

// ThemePreview is the swatch shown on theme picker cards.
type ThemePreview struct {
	BG     string `json:"bg"`
	Accent string `json:"accent"`
	Text   string `json:"text"`
	Card   string `json:"card"`
}

// ThemePreset is an immutable, bundled visual redesign: partial overrides
// for styles, layout, and content plus picker metadata. Presets are built-in
// constants and never mutated at runtime.
type ThemePreset struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Preview     ThemePreview    `json:"preview"`
	Styles      ComponentStyles `json:"styles"`
	Layout      LayoutPatch     `json:"layout"`
	Content     PageContent     `json:"content"`
}

// EffectiveConfig is the fully resolved triple consumed by the storefront.
type EffectiveConfig struct {
	ComponentStyles ComponentStyles `json:"component_styles"`
	LayoutConfig    LayoutConfig    `json:"layout_config"`
	PageContent     PageContent     `json:"page_content"`
}
