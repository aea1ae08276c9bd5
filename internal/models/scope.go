package models

import "github.com/Kjohnson1213/outfitter-finance/internal/apperror"

// Scope is the organization/season every write is attributed to. It is
// passed explicitly to each entry point.
type Scope struct {
	OrgID    string
	SeasonID string
}

// RequireOrg checks that an organization id is present.
func (s Scope) RequireOrg() error {
	if s.OrgID == "" {
		return &apperror.PreconditionError{
			Field: "organization id",
			Msg:   "set org.id in config, OUTFITTER_ORG_ID, or --org",
		}
	}
	return nil
}

// RequireOrgAndSeason checks that both organization and season ids are
// present.
func (s Scope) RequireOrgAndSeason() error {
	if err := s.RequireOrg(); err != nil {
		return err
	}
	if s.SeasonID == "" {
		return &apperror.PreconditionError{
			Field: "season id",
			Msg:   "set org.season_id in config, OUTFITTER_ORG_SEASON_ID, or --season",
		}
	}
	return nil
}

// SeasonRef returns the season id as an optional value.
func (s Scope) SeasonRef() *string {
	return OptionalString(s.SeasonID)
}
