package deck

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every content validation failure.
var ErrInvalid = errors.New("invalid deck content")

// LoadFile reads a YAML deck and layers it over Default. Keys absent from the file
// keep their default; lists present in the file replace the default list whole.
func LoadFile(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return d, nil
}

// Parse layers YAML data over Default and validates the result.
func Parse(data []byte) (*Deck, error) {
	d := Default()
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Validate reports every violated content invariant, joined into one error.
// Rendering never calls it; figures are shown as supplied.
func (d *Deck) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	rev := d.Finance.Revenue
	for i, m := range rev {
		if m.Year == "" {
			add("revenue row %d has no year", i)
		}
		if m.Conservative < 0 || m.Base < 0 || m.Optimistic < 0 {
			add("revenue %s has a negative value", m.Year)
		}
		if m.Conservative > m.Base || m.Base > m.Optimistic {
			add("revenue %s scenarios out of order (%g, %g, %g)", m.Year, m.Conservative, m.Base, m.Optimistic)
		}
		if i > 0 && rev[i-1].Year >= m.Year {
			add("revenue years not ascending at %s", m.Year)
		}
	}
	for i := 1; i < len(d.Market.Trend); i++ {
		if d.Market.Trend[i-1].Year >= d.Market.Trend[i].Year {
			add("trend years not ascending at %s", d.Market.Trend[i].Year)
		}
	}
	for _, f := range d.Team.Founders {
		if f.Name == "" {
			add("founder without a name")
		}
	}
	checkShares := func(name string, shares []Share) {
		for _, s := range shares {
			if s.Percent < 0 {
				add("%s share %q is negative", name, s.Name)
			}
		}
	}
	checkShares("audience", d.Market.Audience)
	checkShares("revenue mix", d.Finance.RevenueMix)

	return errors.Join(errs...)
}
