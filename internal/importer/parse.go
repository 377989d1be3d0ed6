package importer

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var priceDigits = regexp.MustCompile(`[\d.,]+`)

// ParsePrice extracts a numeric amount from Turkish portal price strings
// such as "1.250.000 TL" or "12.500 ₺/ay".
func ParsePrice(raw string) (float64, error) {
	match := priceDigits.FindString(raw)
	if match == "" {
		return 0, errors.New("no amount in price string")
	}

	// Turkish formatting: dot as thousands separator, comma as decimal
	match = strings.ReplaceAll(match, ".", "")
	match = strings.ReplaceAll(match, ",", ".")

	price, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, errors.New("unparseable price: " + raw)
	}

	if price <= 0 {
		return 0, errors.New("non-positive price")
	}

	return price, nil
}

// ParseCoordinate parses a latitude or longitude attribute value.
// Portals emit either "40.7569" or "40,7569".
func ParseCoordinate(raw string) (float64, error) {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return 0, errors.New("empty coordinate")
	}

	return strconv.ParseFloat(raw, 64)
}

// CleanTitle collapses whitespace runs left over from HTML extraction.
func CleanTitle(raw string) string {
	return strings.Join(strings.Fields(raw), " ")
}
