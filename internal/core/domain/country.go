package domain

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const (
	// UnknownFlag is shown for missing or unrecognised country codes.
	UnknownFlag = "\U0001F3F3\uFE0F"
	// UnknownCountry is the name used when no code is given.
	UnknownCountry = "Unknown"
)

var regionNamer = display.English.Regions()

// CountryOverride carries a display name supplied by the caller, such as the
// name stored on a sender-id or price-list record.
type CountryOverride struct {
	Name string `json:"name"`
}

// CountryLookupResult is the flag and label rendered for a country code.
type CountryLookupResult struct {
	FlagGlyph   string `json:"flag_glyph"`
	DisplayName string `json:"display_name"`
}

// LookupCountry resolves both the flag and the display name.
func LookupCountry(code *string, override *CountryOverride) CountryLookupResult {
	var c string
	if code != nil {
		c = *code
	}
	return CountryLookupResult{
		FlagGlyph:   CountryFlag(c),
		DisplayName: CountryName(code, override),
	}
}

// CountryFlag returns the regional-indicator flag for an ISO 3166-1 alpha-2
// code, case-insensitively, or UnknownFlag.
func CountryFlag(code string) string {
	region, ok := knownCountry(code)
	if !ok {
		return UnknownFlag
	}
	var b strings.Builder
	for _, r := range region.String() {
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

// CountryName returns the label for a country. A non-empty override name
// always wins; a nil code is "Unknown"; an unrecognised code is echoed back
// upper-cased.
func CountryName(code *string, override *CountryOverride) string {
	if override != nil && override.Name != "" {
		return override.Name
	}
	if code == nil {
		return UnknownCountry
	}
	if region, ok := knownCountry(*code); ok {
		if name := regionNamer.Name(region); name != "" {
			return name
		}
	}
	return strings.ToUpper(*code)
}

func knownCountry(code string) (language.Region, bool) {
	if len(code) != 2 || !isASCIILetter(code[0]) || !isASCIILetter(code[1]) {
		return language.Region{}, false
	}
	region, err := language.ParseRegion(strings.ToLower(code))
	if err != nil || !region.IsCountry() {
		return language.Region{}, false
	}
	return region, true
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
