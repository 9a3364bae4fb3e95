package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	"marketplace/internal/domain"
)

var (
	reCond   = regexp.MustCompile(`^(NEW|LIKE_NEW|VERY_GOOD|GOOD|ACCEPTABLE)$`)
	rePrice  = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
	reSpaces = regexp.MustCompile(`\s+`)
)

// backTokens abort the pending prompt.
var backTokens = map[string]struct{}{
	"cd ..": {},
}

// TitleCase trims s, collapses inner whitespace and capitalises each word
// ("  iPHONE   12 " -> "Iphone 12"). Usernames, item names, brands and
// categories are stored in this form.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Username returns the canonical display form used for comparisons.
func Username(s string) string { return TitleCase(s) }

// Category normalises s and checks it against the fixed category set.
func Category(s string) (domain.Category, bool) {
	c := domain.Category(TitleCase(s))
	return c, c.Valid()
}

// Condition validates allowed condition enums (case-insensitive).
func Condition(s string) (domain.Condition, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = reSpaces.ReplaceAllString(s, "_")
	return domain.Condition(s), s != "" && reCond.MatchString(s)
}

// Back reports whether s asks to go back to the previous menu.
func Back(s string) bool {
	_, ok := backTokens[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// Qty parses a whole number within [min, max]; max <= 0 means unbounded.
func Qty(s string, min, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < min {
		return 0, false
	}
	if max > 0 && n > max {
		return 0, false
	}
	return n, true
}

// Price parses a plain positive decimal such as "12" or "12.50".
func Price(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if !rePrice.MatchString(s) {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
