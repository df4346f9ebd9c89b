package types

import (
	"strings"
	"time"

	ierr "github.com/memberware/renewals/internal/errors"
)

// timezoneAbbreviationMap maps common three-letter timezone abbreviations to
// IANA identifiers so host configuration may say "EST" instead of the full id.
var timezoneAbbreviationMap = map[string]string{
	"EST":  "America/New_York",
	"CST":  "America/Chicago",
	"MST":  "America/Denver",
	"PST":  "America/Los_Angeles",
	"HST":  "Pacific/Honolulu",
	"AKST": "America/Anchorage",

	"GMT": "Europe/London",
	"BST": "Europe/London",
	"CET": "Europe/Berlin",
	"EET": "Europe/Athens",
	"WET": "Europe/Lisbon",

	"IST":  "Asia/Kolkata",
	"JST":  "Asia/Tokyo",
	"AEST": "Australia/Sydney",
}

// ResolveTimezone converts a timezone abbreviation to its IANA identifier, or
// returns the input unchanged when it is not a known abbreviation.
func ResolveTimezone(timezone string) string {
	if ianaName, exists := timezoneAbbreviationMap[strings.ToUpper(timezone)]; exists {
		return ianaName
	}
	return timezone
}

// LoadCivilZone resolves and loads the civil billing zone. The zone database
// lookup happens here, once, so the date arithmetic itself stays pure.
func LoadCivilZone(timezone string) (*time.Location, error) {
	loc, err := time.LoadLocation(ResolveTimezone(timezone))
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Unknown civil zone %q; use an IANA identifier like America/New_York", timezone).
			Mark(ierr.ErrValidation)
	}
	return loc, nil
}

// ValidateTimezone checks that a timezone resolves against the zone database.
func ValidateTimezone(timezone string) error {
	_, err := LoadCivilZone(timezone)
	return err
}
