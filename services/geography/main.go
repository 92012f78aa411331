package geography

import (
	"fmt"
	"os"
	"strings"

	"github.com/mycolab/genbank/assets"
	"github.com/mycolab/genbank/logger"
	"github.com/mycolab/genbank/models/constants"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v2"
)

type (
	Country struct {
		Name       string   `yaml:"name"`
		Alpha3     string   `yaml:"alpha3"`
		Alternates []string `yaml:"alternates"`
	}

	// CountryTable is read-only once loaded and may be
	// shared between requests without locking
	CountryTable struct {
		countries []Country
	}

	countryFile struct {
		Countries []Country `yaml:"countries"`
	}
)

// LoadCountryTable reads the table at path, or the embedded
// default table when path is empty
func LoadCountryTable(path string) (*CountryTable, error) {
	data := assets.Countries
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("reading country table %s: %w", path, err)
		}
	}
	return ParseCountryTable(data)
}

func ParseCountryTable(data []byte) (*CountryTable, error) {
	var f countryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing country table: %w", err)
	}
	if len(f.Countries) == 0 {
		return nil, fmt.Errorf("country table is empty")
	}
	for i, c := range f.Countries {
		if c.Name == "" {
			return nil, fmt.Errorf("country table entry %d has no name", i)
		}
	}
	return &CountryTable{countries: f.Countries}, nil
}

func (t *CountryTable) Len() int {
	return len(t.countries)
}

// Search approximates a country of origin from free text. Canonical
// names are tried first, then alternate spellings, then alpha-3 codes
// standing alone (" CZE " or " CZE:"). The first match in table order
// wins and is returned with the approximate marker; no match gives ""
func (t *CountryTable) Search(text string) string {
	if name, ok := t.search(text); ok {
		return constants.ApproximateMarker + name
	}
	logger.Warn("unable to approximate a country", zap.Int("textLength", len(text)))
	return ""
}

func (t *CountryTable) search(text string) (string, bool) {
	for _, c := range t.countries {
		if strings.Contains(text, c.Name) {
			return c.Name, true
		}
	}

	for _, c := range t.countries {
		for _, alt := range c.Alternates {
			if alt != "" && strings.Contains(text, alt) {
				return c.Name, true
			}
		}
	}

	for _, c := range t.countries {
		if c.Alpha3 == "" {
			continue
		}
		if strings.Contains(text, " "+c.Alpha3+" ") || strings.Contains(text, " "+c.Alpha3+":") {
			return c.Name, true
		}
	}

	return "", false
}
