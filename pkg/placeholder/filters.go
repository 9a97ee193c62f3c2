package placeholder

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Date layouts for the date filter, matching common US email copy.
const (
	dateLayoutShort = "01/02/2006"
	dateLayoutLong  = "January 2, 2006"
	dateLayoutTime  = "3:04 PM"
)

// parseLayouts are tried in order when the date filter parses its input.
var parseLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ApplyFilters runs the filter chain left to right over an already
// stringified value. Unrecognized filters are a no-op; filters that cannot
// parse their input pass the value through unchanged.
func ApplyFilters(value string, filters []Filter) string {
	for _, f := range filters {
		value = applyFilter(value, f)
	}
	return value
}

func applyFilter(value string, f Filter) string {
	switch f.Name {
	case "uppercase", "upper":
		return strings.ToUpper(value)
	case "lowercase", "lower":
		return strings.ToLower(value)
	case "capitalize":
		return capitalize(value)
	case "trim":
		return strings.TrimSpace(value)
	case "currency":
		return formatCurrency(value, f.Arg)
	case "date":
		return formatDate(value, f.Arg)
	case "length":
		return strconv.Itoa(utf8.RuneCountInString(value))
	default:
		return value
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// formatCurrency parses the value as a number and formats it in the given
// ISO 4217 currency (default USD). Non-numeric input and unknown currency
// codes pass through unchanged.
func formatCurrency(value, code string) string {
	amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return value
	}

	if code == "" {
		code = "USD"
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return value
	}

	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}

// formatDate parses the value as a date and formats it per the style arg:
// "short" (default), "long", or "time". Unparseable input passes through
// unchanged.
func formatDate(value, style string) string {
	t, ok := parseDate(strings.TrimSpace(value))
	if !ok {
		return value
	}

	switch style {
	case "long":
		return t.Format(dateLayoutLong)
	case "time":
		return t.Format(dateLayoutTime)
	default:
		return t.Format(dateLayoutShort)
	}
}

func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	// Unix timestamps, seconds or milliseconds.
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), true
		}
		return time.Unix(n, 0).UTC(), true
	}

	return time.Time{}, false
}
