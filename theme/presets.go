package theme

import "github.com/AfanKulaglic/saraya-menu-api/models"

// presetCatalog is the built-in list of theme presets. Presets are partial
// override bundles: only the fields a theme actually restyles are present,
// everything else falls through to the defaults.
var presetCatalog = []models.ThemePreset{
	{
		ID:          "dark-elegance",
		Name:        "Dark Elegance",
		Description: "Low light, gold accents, for evening dining",
		Preview:     models.ThemePreview{BG: "#16130F", Accent: "#C8A951", Text: "#F2EBDD", Card: "#221E18"},
		Styles: models.ComponentStyles{
			"pageBg":             "#16130F",
			"pageText":           "#F2EBDD",
			"accentColor":        "#C8A951",
			"headerBg":           "#16130F",
			"headerText":         "#F2EBDD",
			"heroBg":             "#0E0C09",
			"heroText":           "#F2EBDD",
			"heroBadgeBg":        "#C8A951",
			"heroBadgeText":      "#16130F",
			"searchBg":           "#221E18",
			"searchText":         "#F2EBDD",
			"searchBorder":       "#3A332A",
			"categoryBarBg":      "#16130F",
			"categoryChipBg":     "#221E18",
			"categoryChipText":   "#F2EBDD",
			"categoryActiveBg":   "#C8A951",
			"categoryActiveText": "#16130F",
			"cardBg":             "#221E18",
			"cardText":           "#F2EBDD",
			"cardMutedText":      "#9C917E",
			"cardBorder":         "#3A332A",
			"cardPriceColor":     "#C8A951",
			"cardShadow":         "none",
			"buttonBg":           "#C8A951",
			"buttonText":         "#16130F",
			"sectionTitleColor":  "#F2EBDD",
			"sectionAccentColor": "#C8A951",
			"dividerColor":       "#3A332A",
			"infoPanelBg":        "#221E18",
			"infoPanelText":      "#F2EBDD",
			"infoIconColor":      "#C8A951",
			"footerBg":           "#0E0C09",
			"footerText":         "#9C917E",
			"footerLinkColor":    "#C8A951",
			"modalBg":            "#221E18",
			"modalText":          "#F2EBDD",
		},
		Layout: models.LayoutPatch{
			HeroStyle:      "minimal",
			HeadingFont:    "Cormorant Garamond",
			AnimationLevel: "calm",
			Density:        "spacious",
		},
	},
	{
		ID:          "fresh-mint",
		Name:        "Fresh Mint",
		Description: "Bright greens for daytime cafes and juice bars",
		Preview:     models.ThemePreview{BG: "#F2FBF7", Accent: "#14B87A", Text: "#103B2C", Card: "#FFFFFF"},
		Styles: models.ComponentStyles{
			"pageBg":             "#F2FBF7",
			"pageText":           "#103B2C",
			"accentColor":        "#14B87A",
			"heroBg":             "#14B87A",
			"heroText":           "#FFFFFF",
			"heroBadgeBg":        "#FFFFFF",
			"heroBadgeText":      "#14B87A",
			"categoryActiveBg":   "#14B87A",
			"cardPriceColor":     "#0E8A5C",
			"cardRadius":         "lg",
			"cardShadow":         "float",
			"buttonBg":           "#14B87A",
			"buttonShape":        "rounded",
			"sectionAccentColor": "#14B87A",
			"infoIconColor":      "#14B87A",
			"footerBg":           "#103B2C",
			"footerLinkColor":    "#7BE0B8",
			"variationActiveBg":  "#14B87A",
			"addonCheckColor":    "#14B87A",
		},
		Layout: models.LayoutPatch{
			HeroStyle:        "card",
			CategoryBarStyle: "underline",
			FontFamily:       "Nunito",
			HeadingFont:      "Nunito",
			AnimationLevel:   "playful",
		},
		Content: models.PageContent{
			"heroBadge":       "Fresh today",
			"heroBadge_bs":    "Svježe danas",
			"popularTitle":    "Most loved",
			"popularTitle_bs": "Najdraže",
		},
	},
	{
		ID:          "warm-bistro",
		Name:        "Warm Bistro",
		Description: "Earthy terracotta, classic bistro feel",
		Preview:     models.ThemePreview{BG: "#FBF3EA", Accent: "#B4562E", Text: "#3B2A1F", Card: "#FFFDF9"},
		Styles: models.ComponentStyles{
			"pageBg":             "#FBF3EA",
			"pageText":           "#3B2A1F",
			"accentColor":        "#B4562E",
			"heroBg":             "#3B2A1F",
			"heroBadgeBg":        "#B4562E",
			"categoryActiveBg":   "#B4562E",
			"cardPriceColor":     "#B4562E",
			"cardRadius":         "md",
			"buttonBg":           "#B4562E",
			"buttonShape":        "rounded",
			"sectionAccentColor": "#B4562E",
			"infoIconColor":      "#B4562E",
			"footerBg":           "#3B2A1F",
		},
		Layout: models.LayoutPatch{
			HeadingFont: "Lora",
			Density:     "cozy",
			Sections: []models.MenuSectionItem{
				{ID: "hero", Visible: true, Variant: "banner"},
				{ID: "category-bar", Visible: true, Variant: "pills"},
				{ID: "menu", Visible: true, Variant: "list"},
				{ID: "popular", Visible: true, Variant: "row"},
				{ID: "search", Visible: false, Variant: "rounded"},
				{ID: "info", Visible: true, Variant: "cards"},
				{ID: "footer", Visible: true, Variant: "simple"},
			},
		},
	},
	{
		ID:          "midnight-neon",
		Name:        "Midnight Neon",
		Description: "High contrast neon for late-night bars",
		Preview:     models.ThemePreview{BG: "#0A0A14", Accent: "#E933AE", Text: "#EDEDF7", Card: "#14142A"},
		Styles: models.ComponentStyles{
			"pageBg":             "#0A0A14",
			"pageText":           "#EDEDF7",
			"accentColor":        "#E933AE",
			"heroBg":             "#14142A",
			"heroBadgeBg":        "#E933AE",
			"searchBg":           "#14142A",
			"searchBorder":       "#2C2C4A",
			"categoryChipBg":     "#14142A",
			"categoryActiveBg":   "#E933AE",
			"cardBg":             "#14142A",
			"cardText":           "#EDEDF7",
			"cardBorder":         "#2C2C4A",
			"cardPriceColor":     "#35E0C8",
			"cardShadow":         "glow",
			"buttonBg":           "#E933AE",
			"buttonShape":        "square",
			"sectionTitleColor":  "#EDEDF7",
			"sectionAccentColor": "#35E0C8",
			"footerBg":           "#05050A",
			"footerLinkColor":    "#E933AE",
			"variationActiveBg":  "#E933AE",
		},
		Layout: models.LayoutPatch{
			HeroStyle:      "split",
			SearchStyle:    "square",
			CardLayout:     "masonry",
			FontFamily:     "Space Grotesk",
			HeadingFont:    "Space Grotesk",
			AnimationLevel: "bold",
		},
		Content: models.PageContent{
			"heroBadge":    "Open late",
			"heroBadge_bs": "Otvoreno do kasno",
		},
	},
	{
		ID:          "paper-minimal",
		Name:        "Paper Minimal",
		Description: "Black on white, typography first",
		Preview:     models.ThemePreview{BG: "#FFFFFF", Accent: "#111111", Text: "#111111", Card: "#FFFFFF"},
		Styles: models.ComponentStyles{
			"pageBg":             "#FFFFFF",
			"pageText":           "#111111",
			"accentColor":        "#111111",
			"heroBg":             "#FFFFFF",
			"heroText":           "#111111",
			"heroBadgeBg":        "#111111",
			"heroBadgeText":      "#FFFFFF",
			"searchBorder":       "#111111",
			"categoryChipBg":     "#FFFFFF",
			"categoryActiveBg":   "#111111",
			"cardBg":             "#FFFFFF",
			"cardBorder":         "#111111",
			"cardPriceColor":     "#111111",
			"cardRadius":         "sm",
			"cardShadow":         "none",
			"buttonBg":           "#111111",
			"buttonShape":        "square",
			"dividerColor":       "#111111",
			"footerBg":           "#FFFFFF",
			"footerText":         "#111111",
			"sectionAccentColor": "#111111",
		},
		Layout: models.LayoutPatch{
			HeroStyle:        "minimal",
			SearchStyle:      "underline",
			CategoryBarStyle: "text",
			CardLayout:       "list",
			FontFamily:       "IBM Plex Sans",
			HeadingFont:      "IBM Plex Serif",
			AnimationLevel:   "none",
			Density:          "compact",
			SectionGap:       "sm",
		},
	},
}

// Presets returns the built-in preset catalog. The slice is shared; callers
// must treat presets as read-only.
func Presets() []models.ThemePreset {
	return presetCatalog
}

// FindPreset looks a preset up by id.
func FindPreset(presets []models.ThemePreset, id string) (models.ThemePreset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return models.ThemePreset{}, false
}
