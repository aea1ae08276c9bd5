package schedule

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

// DefaultLeadDays applies to hunt types missing from a policy table.
const DefaultLeadDays = 45

// LeadTimePolicy returns how many days before the hunt starts the final
// payment is due.
type LeadTimePolicy interface {
	LeadDays(huntType string) int
}

// TablePolicy looks up lead days by hunt type, ignoring case.
type TablePolicy struct {
	Default int
	Days    map[string]int
}

// NewTablePolicy builds a policy from a table keyed by hunt type.
func NewTablePolicy(defaultDays int, days map[string]int) TablePolicy {
	p := TablePolicy{Default: defaultDays, Days: make(map[string]int, len(days))}
	for k, v := range days {
		p.Days[normalizeKey(k)] = v
	}
	return p
}

// DefaultPolicy is the stock outfitter table.
func DefaultPolicy() TablePolicy {
	return NewTablePolicy(DefaultLeadDays, map[string]int{
		string(models.HuntElk):    60,
		string(models.HuntDeer):   45,
		string(models.HuntBear):   45,
		string(models.HuntTurkey): 30,
	})
}

// LeadDays implements LeadTimePolicy.
func (p TablePolicy) LeadDays(huntType string) int {
	if d, ok := p.Days[normalizeKey(huntType)]; ok {
		return d
	}
	return p.Default
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type policyFile struct {
	DefaultDays *int           `yaml:"default_days"`
	LeadDays    map[string]int `yaml:"lead_days"`
}

// LoadPolicy reads a YAML lead-time table:
//
//	default_days: 45
//	lead_days:
//	  elk: 60
//	  turkey: 30
//
// A missing default_days means DefaultLeadDays. Negative values are rejected.
func LoadPolicy(path string) (TablePolicy, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from configuration
	if err != nil {
		return TablePolicy{}, fmt.Errorf("error reading policy file: %w", err)
	}
	return ParsePolicy(data)
}

// ParsePolicy parses the YAML form read by LoadPolicy.
func ParsePolicy(data []byte) (TablePolicy, error) {
	var f policyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return TablePolicy{}, fmt.Errorf("error parsing policy file: %w", err)
	}

	def := DefaultLeadDays
	if f.DefaultDays != nil {
		def = *f.DefaultDays
	}
	if def < 0 {
		return TablePolicy{}, fmt.Errorf("default_days must not be negative, got %d", def)
	}
	for k, v := range f.LeadDays {
		if v < 0 {
			return TablePolicy{}, fmt.Errorf("lead_days.%s must not be negative, got %d", k, v)
		}
	}
	return NewTablePolicy(def, f.LeadDays), nil
}
