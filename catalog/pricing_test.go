package catalog

import (
	"testing"
)

func TestPriceSelection(t *testing.T) {
	t.Parallel()

	p := pizzaFixture()

	tests := []struct {
		name    string
		choices map[string]string
		addons  []string
		want    float64
		wantErr bool
	}{
		{"base with required choice", map[string]string{"size": "small"}, nil, 8, false},
		{"upcharge option plus addon", map[string]string{"size": "large"}, []string{"cheese"}, 14.5, false},
		{"missing required variation", nil, nil, 0, true},
		{"unknown option", map[string]string{"size": "xxl"}, nil, 0, true},
		{"unknown variation", map[string]string{"size": "small", "crust": "thin"}, nil, 0, true},
		{"unknown addon", map[string]string{"size": "small"}, []string{"truffle"}, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := PriceSelection(p, tt.choices, tt.addons)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("PriceSelection = %v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("PriceSelection = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPriceSelectionOptionalVariationCanBeSkipped(t *testing.T) {
	t.Parallel()

	p := pizzaFixture()
	p.Variations[0].Required = false

	got, err := PriceSelection(p, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != p.Price {
		t.Fatalf("PriceSelection = %v, want base price %v", got, p.Price)
	}
}
