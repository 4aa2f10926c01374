package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"EconTrack/internal/model"
)

// Catalog overrides the built-in series sets. Sections left empty fall back
// to the defaults at the call site; entries keep the order they were written
// in, which is also the fetch and persist order.
type Catalog struct {
	Bonds      []Entry  `yaml:"bonds"`
	Indicators []Entry  `yaml:"indicators"`
	Market     []string `yaml:"market"`
}

// Entry names one provider series.
type Entry struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

// LoadCatalog reads a YAML series catalog.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat := &Catalog{}
	if err := yaml.Unmarshal(data, cat); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := cat.validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

func (c *Catalog) validate() error {
	sections := []struct {
		name    string
		entries []Entry
	}{
		{"bonds", c.Bonds},
		{"indicators", c.Indicators},
	}
	for _, section := range sections {
		seen := make(map[string]bool)
		for i, e := range section.entries {
			if e.Name == "" || e.ID == "" {
				return fmt.Errorf("%s[%d]: name and id are required", section.name, i)
			}
			if seen[e.Name] {
				return fmt.Errorf("%s: duplicate series name %q", section.name, e.Name)
			}
			seen[e.Name] = true
		}
	}
	seen := make(map[string]bool)
	for _, ticker := range c.Market {
		if ticker == "" {
			return fmt.Errorf("market: empty ticker")
		}
		if seen[ticker] {
			return fmt.Errorf("market: duplicate ticker %q", ticker)
		}
		seen[ticker] = true
	}
	return nil
}

// BondRequests converts the bonds section to series requests.
func (c *Catalog) BondRequests() []model.SeriesRequest {
	return toRequests(c.Bonds)
}

// IndicatorRequests converts the indicators section to series requests.
func (c *Catalog) IndicatorRequests() []model.SeriesRequest {
	return toRequests(c.Indicators)
}

func toRequests(entries []Entry) []model.SeriesRequest {
	if len(entries) == 0 {
		return nil
	}
	out := make([]model.SeriesRequest, len(entries))
	for i, e := range entries {
		out[i] = model.SeriesRequest{Name: e.Name, SeriesID: e.ID}
	}
	return out
}
