package catalog

import (
	"fmt"

	"github.com/AfanKulaglic/saraya-menu-api/models"
)

// PriceSelection computes the unit price of a product with a concrete set
// of choices: one option per chosen variation plus any addons. Every
// required variation must have a selection, and unknown variation, option,
// and addon ids are rejected.
func PriceSelection(p models.ProductItem, variationChoices map[string]string, addonIDs []string) (float64, error) {
	price := p.Price

	for _, variation := range p.Variations {
		optionID, chosen := variationChoices[variation.ID]
		if !chosen {
			if variation.Required {
				return 0, fmt.Errorf("variation '%s' requires a selection", variation.Name)
			}
			continue
		}
		found := false
		for _, opt := range variation.Options {
			if opt.ID == optionID {
				price += opt.PriceAdjustment
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown option '%s' for variation '%s'", optionID, variation.Name)
		}
	}

	for chosenID := range variationChoices {
		known := false
		for _, variation := range p.Variations {
			if variation.ID == chosenID {
				known = true
				break
			}
		}
		if !known {
			return 0, fmt.Errorf("product '%s' has no variation '%s'", p.Name, chosenID)
		}
	}

	for _, addonID := range addonIDs {
		found := false
		for _, addon := range p.Addons {
			if addon.ID == addonID {
				price += addon.Price
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("product '%s' has no addon '%s'", p.Name, addonID)
		}
	}

	return price, nil
}
