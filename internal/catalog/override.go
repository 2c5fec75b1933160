package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OverrideFileName is the per-season price list, looked up next to
// config.yaml. Prices change every season; codes do not.
const OverrideFileName = "catalog.yaml"

type override struct {
	Code       string `yaml:"code"`
	Name       string `yaml:"name,omitempty"`
	PriceCents *int   `yaml:"price_cents,omitempty"`
}

type overrideFile struct {
	Items []override `yaml:"items"`
}

// LoadOverrides applies name/price overrides from a YAML price list to the
// built-in catalog. Returns the number of items changed. Unknown codes are
// an error so a typo in the price list doesn't silently leave stale prices.
func LoadOverrides(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading catalog overrides: %w", err)
	}

	var of overrideFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return 0, fmt.Errorf("parsing catalog overrides: %w", err)
	}

	changed := 0
	for _, ov := range of.Items {
		i, ok := byCode[ov.Code]
		if !ok {
			return changed, fmt.Errorf("catalog overrides: unknown code %q", ov.Code)
		}
		if ov.Name != "" && ov.Name != items[i].Name {
			items[i].Name = ov.Name
			changed++
		}
		if ov.PriceCents != nil && *ov.PriceCents != items[i].PriceCents {
			items[i].PriceCents = *ov.PriceCents
			changed++
		}
	}
	return changed, nil
}
