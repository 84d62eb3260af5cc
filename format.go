package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Formatting Helpers
// ---------------------------------------------------------------------------

// currencySymbol maps the currency to its symbol; unknown values get £.
func currencySymbol(c Currency) string {
	switch c {
	case EUR:
		return "€"
	case USD:
		return "$"
	default:
		return "£"
	}
}

// formatAmount rounds to 2 decimals, half away from zero.
func formatAmount(amount float64) string {
	return decimal.NewFromFloat(finite(amount)).StringFixed(2)
}

// formatMoney prefixes the symbol; negative amounts read "-€ 12.00".
func formatMoney(symbol string, amount float64) string {
	s := formatAmount(amount)
	if strings.HasPrefix(s, "-") {
		if s == "-0.00" {
			return symbol + " 0.00"
		}
		return "-" + symbol + " " + s[1:]
	}
	return symbol + " " + s
}

// formatQuantity prints hours and rates without trailing zeros.
func formatQuantity(v float64) string {
	return strconv.FormatFloat(finite(v), 'f', -1, 64)
}

var unsafeFilenameChars = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]+`)

// downloadFilename builds "{title}_{id}.pdf" with path separators and
// control characters replaced.
func downloadFilename(inv *Invoice) string {
	name := strings.TrimSpace(inv.Title) + "_" + strings.TrimSpace(inv.ID)
	name = unsafeFilenameChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, ". ")
	if name == "" || name == "_" {
		name = "document"
	}
	return name + ".pdf"
}
