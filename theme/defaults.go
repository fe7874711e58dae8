package theme

import "github.com/AfanKulaglic/saraya-menu-api/models"

// Defaults bundles the three baseline records every resolution falls back to.
type Defaults struct {
	Styles  models.ComponentStyles
	Layout  models.LayoutConfig
	Content models.PageContent
}

// DefaultConfig returns fresh copies of the baseline records so callers can
// never mutate the registry through a resolved config.
func DefaultConfig() Defaults {
	return Defaults{
		Styles:  DefaultComponentStyles(),
		Layout:  DefaultLayout(),
		Content: DefaultPageContent(),
	}
}

// DefaultPageContent is the baseline storefront copy. Secondary-language
// siblings use the _bs suffix.
func DefaultPageContent() models.PageContent {
	return models.PageContent{
		"heroTitle":            "Welcome",
		"heroTitle_bs":         "Dobrodošli",
		"heroSubtitle":         "Browse our menu and order at the table",
		"heroSubtitle_bs":      "Pregledajte naš meni i naručite za stolom",
		"heroBadge":            "Digital Menu",
		"heroBadge_bs":         "Digitalni meni",
		"searchPlaceholder":    "Search the menu...",
		"searchPlaceholder_bs": "Pretražite meni...",
		"searchEmptyText":      "Nothing matches your search",
		"searchEmptyText_bs":   "Ništa ne odgovara vašoj pretrazi",
		"categoryAllLabel":     "All",
		"categoryAllLabel_bs":  "Sve",
		"popularLabel":         "Popular",
		"popularLabel_bs":      "Popularno",
		"popularTitle":         "Guest favorites",
		"popularTitle_bs":      "Omiljeno kod gostiju",
		"menuTitle":            "Our Menu",
		"menuTitle_bs":         "Naš meni",
		"emptyCategoryText":    "No items in this category yet",
		"emptyCategoryText_bs": "Još nema stavki u ovoj kategoriji",
		"priceFromLabel":       "from",
		"priceFromLabel_bs":    "od",
		"addToOrderLabel":      "Add to order",
		"addToOrderLabel_bs":   "Dodaj u narudžbu",
		"requiredLabel":        "Required",
		"requiredLabel_bs":     "Obavezno",
		"addonsTitle":          "Extras",
		"addonsTitle_bs":       "Dodaci",
		"variationsTitle":      "Choose an option",
		"variationsTitle_bs":   "Odaberite opciju",
		"infoTitle":            "About us",
		"infoTitle_bs":         "O nama",
		"addressLabel":         "Address",
		"addressLabel_bs":      "Adresa",
		"hoursLabel":           "Opening hours",
		"hoursLabel_bs":        "Radno vrijeme",
		"wifiLabel":            "Wi-Fi password",
		"wifiLabel_bs":         "Wi-Fi lozinka",
		"phoneLabel":           "Phone",
		"phoneLabel_bs":        "Telefon",
		"callButtonLabel":      "Call us",
		"callButtonLabel_bs":   "Pozovite nas",
		"newBadgeText":         "New",
		"newBadgeText_bs":      "Novo",
		"popularBadgeText":     "Popular",
		"popularBadgeText_bs":  "Popularno",
		"orderNoteTitle":          "Note for the kitchen",
		"orderNoteTitle_bs":       "Napomena za kuhinju",
		"orderNotePlaceholder":    "Allergies, special requests...",
		"orderNotePlaceholder_bs": "Alergije, posebni zahtjevi...",
		"footerText":              "Powered by Saraya Menu",
		"footerText_bs":        "Pokreće Saraya Menu",
		"footerThanks":         "Thank you for visiting",
		"footerThanks_bs":      "Hvala na posjeti",
		"languageLabel":        "Language",
		"languageLabel_bs":     "Jezik",
		"currencySymbol":       "KM",
		"backToTopLabel":       "Back to top",
		"backToTopLabel_bs":    "Na vrh",
	}
}

// DefaultComponentStyles is the baseline palette and variant tokens. Colors
// are hex strings; variant fields take enumerated tokens the storefront
// understands (e.g. cardRadius: sm|md|lg|xl, buttonShape: square|rounded|pill).
func DefaultComponentStyles() models.ComponentStyles {
	return models.ComponentStyles{
		"pageBg":              "#FAF7F2",
		"pageText":            "#2B2B2B",
		"accentColor":         "#C0392B",
		"headerBg":            "#FFFFFF",
		"headerText":          "#2B2B2B",
		"heroBg":              "#2B2B2B",
		"heroText":            "#FFFFFF",
		"heroOverlay":         "#00000066",
		"heroBadgeBg":         "#C0392B",
		"heroBadgeText":       "#FFFFFF",
		"searchBg":            "#FFFFFF",
		"searchText":          "#2B2B2B",
		"searchBorder":        "#E3DCD2",
		"searchIconColor":     "#9A9A9A",
		"categoryBarBg":       "#FAF7F2",
		"categoryChipBg":      "#FFFFFF",
		"categoryChipText":    "#2B2B2B",
		"categoryActiveBg":    "#C0392B",
		"categoryActiveText":  "#FFFFFF",
		"cardBg":              "#FFFFFF",
		"cardText":            "#2B2B2B",
		"cardMutedText":       "#8A8A8A",
		"cardBorder":          "#EFE9E1",
		"cardPriceColor":      "#F4B400",
		"cardRadius":          "xl",
		"cardShadow":          "soft",
		"cardImageFit":        "cover",
		"badgeBg":             "#F4B400",
		"badgeText":           "#2B2B2B",
		"buttonBg":            "#C0392B",
		"buttonText":          "#FFFFFF",
		"buttonShape":         "pill",
		"buttonShadow":        "soft",
		"sectionTitleColor":   "#2B2B2B",
		"sectionAccentColor":  "#C0392B",
		"dividerColor":        "#E3DCD2",
		"infoPanelBg":         "#FFFFFF",
		"infoPanelText":       "#2B2B2B",
		"infoIconColor":       "#C0392B",
		"footerBg":            "#2B2B2B",
		"footerText":          "#FAF7F2",
		"footerLinkColor":     "#F4B400",
		"modalBg":             "#FFFFFF",
		"modalText":           "#2B2B2B",
		"modalOverlay":        "#00000099",
		"variationActiveBg":   "#C0392B",
		"variationActiveText": "#FFFFFF",
		"addonCheckColor":     "#C0392B",
		"quantityButtonBg":    "#EFE9E1",
		"scrollbarColor":      "#C0392B",
		"skeletonColor":       "#EFE9E1",
	}
}

// DefaultLayout is the baseline page structure: every section present and
// visible, in the stock order.
func DefaultLayout() models.LayoutConfig {
	return models.LayoutConfig{
		ActiveTheme:      "",
		HeroStyle:        "banner",
		SearchStyle:      "rounded",
		CategoryBarStyle: "pills",
		CardLayout:       "grid",
		FontFamily:       "Inter",
		HeadingFont:      "Playfair Display",
		AnimationLevel:   "subtle",
		Density:          "comfortable",
		SectionGap:       "md",
		Sections:         DefaultSections(),
	}
}

// DefaultSections returns a fresh copy of the stock section order.
func DefaultSections() []models.MenuSectionItem {
	return []models.MenuSectionItem{
		{ID: "hero", Visible: true, Variant: "banner"},
		{ID: "search", Visible: true, Variant: "rounded"},
		{ID: "category-bar", Visible: true, Variant: "pills"},
		{ID: "popular", Visible: true, Variant: "carousel"},
		{ID: "menu", Visible: true, Variant: "grid"},
		{ID: "info", Visible: true, Variant: "cards"},
		{ID: "footer", Visible: true, Variant: "simple"},
	}
}
