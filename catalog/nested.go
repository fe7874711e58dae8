package catalog

import "github.com/AfanKulaglic/saraya-menu-api/models"

// Nested mutation helpers. Each rebuilds the parent product's child slice
// with the target entry replaced, appended, or filtered by id.

// SetAddon replaces the addon with a matching id or appends it.
func SetAddon(p models.ProductItem, addon models.Addon) models.ProductItem {
	out := make([]models.Addon, 0, len(p.Addons)+1)
	replaced := false
	for _, a := range p.Addons {
		if a.ID == addon.ID {
			out = append(out, addon)
			replaced = true
			continue
		}
		out = append(out, a)
	}
	if !replaced {
		out = append(out, addon)
	}
	p.Addons = out
	return p
}

// RemoveAddon filters an addon out by id.
func RemoveAddon(p models.ProductItem, addonID string) (models.ProductItem, bool) {
	out := make([]models.Addon, 0, len(p.Addons))
	removed := false
	for _, a := range p.Addons {
		if a.ID == addonID {
			removed = true
			continue
		}
		out = append(out, a)
	}
	p.Addons = out
	return p, removed
}

// SetVariation replaces the variation with a matching id or appends it.
func SetVariation(p models.ProductItem, variation models.Variation) models.ProductItem {
	out := make([]models.Variation, 0, len(p.Variations)+1)
	replaced := false
	for _, v := range p.Variations {
		if v.ID == variation.ID {
			out = append(out, variation)
			replaced = true
			continue
		}
		out = append(out, v)
	}
	if !replaced {
		out = append(out, variation)
	}
	p.Variations = out
	return p
}

// RemoveVariation filters a variation out by id.
func RemoveVariation(p models.ProductItem, variationID string) (models.ProductItem, bool) {
	out := make([]models.Variation, 0, len(p.Variations))
	removed := false
	for _, v := range p.Variations {
		if v.ID == variationID {
			removed = true
			continue
		}
		out = append(out, v)
	}
	p.Variations = out
	return p, removed
}

// SetVariationOption replaces or appends an option inside one variation.
// Returns false when the variation id is unknown.
func SetVariationOption(p models.ProductItem, variationID string, opt models.VariationOption) (models.ProductItem, bool) {
	found := false
	variations := make([]models.Variation, len(p.Variations))
	for i, v := range p.Variations {
		if v.ID == variationID {
			found = true
			opts := make([]models.VariationOption, 0, len(v.Options)+1)
			replaced := false
			for _, o := range v.Options {
				if o.ID == opt.ID {
					opts = append(opts, opt)
					replaced = true
					continue
				}
				opts = append(opts, o)
			}
			if !replaced {
				opts = append(opts, opt)
			}
			v.Options = opts
		}
		variations[i] = v
	}
	p.Variations = variations
	return p, found
}

// RemoveVariationOption filters an option out of one variation by id.
func RemoveVariationOption(p models.ProductItem, variationID, optionID string) (models.ProductItem, bool) {
	removed := false
	variations := make([]models.Variation, len(p.Variations))
	for i, v := range p.Variations {
		if v.ID == variationID {
			opts := make([]models.VariationOption, 0, len(v.Options))
			for _, o := range v.Options {
				if o.ID == optionID {
					removed = true
					continue
				}
				opts = append(opts, o)
			}
			v.Options = opts
		}
		variations[i] = v
	}
	p.Variations = variations
	return p, removed
}
