package models

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// HuntType is the category of a sold hunt. It selects the final-payment lead
// time.
type HuntType string

const (
	HuntElk    HuntType = "Elk"
	HuntDeer   HuntType = "Deer"
	HuntTurkey HuntType = "Turkey"
	HuntBear   HuntType = "Bear"
)

// HuntTypes lists the hunt types offered for sale.
var HuntTypes = []HuntType{HuntElk, HuntDeer, HuntTurkey, HuntBear}

// ParseHuntType maps user input (any case) to a HuntType.
func ParseHuntType(s string) (HuntType, error) {
	for _, ht := range HuntTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(ht)) {
			return ht, nil
		}
	}
	return "", fmt.Errorf("unknown hunt type %q (expected Elk, Deer, Turkey or Bear)", s)
}

// Client is the customer who bought a hunt.
type Client struct {
	ID        string
	OrgID     string
	FirstName string
	LastName  string
	Email     string
}

// Hunt is a sold hunt package.
type Hunt struct {
	ID              string
	OrgID           string
	SeasonID        string
	ClientID        string
	Title           string
	HuntType        HuntType
	HuntStart       civil.Date
	TotalPriceCents int64
	Status          string
}

// Invoice bills a hunt; its schedule items sum to TotalCents.
type Invoice struct {
	ID         string
	OrgID      string
	HuntID     string
	TotalCents int64
	Currency   string
}
