package botica

import (
	"regexp"
	"strconv"
	"strings"
)

// priceToken matches a number with exactly two fraction digits.
// Comma thousands groups are also accepted, so "1,234.50" reads as 1234.50
// rather than 234.50.
var priceToken = regexp.MustCompile(`\d{1,3}(?:,\d{3})+\.\d{2}|\d+\.\d{2}`)

// ParsePrice extracts the lowest and highest price found in a price label.
// Single prices yield min == max. Labels without a price yield (0, 0).
// Currency symbols are ignored.
func ParsePrice(label string) (lo, hi float64) {
	var found bool
	for _, tok := range priceToken.FindAllString(label, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
		if err != nil {
			continue
		}
		if !found {
			lo, hi, found = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
