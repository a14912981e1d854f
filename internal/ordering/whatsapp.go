package ordering

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// BuildWhatsAppLink returns a wa.me deep link that opens a chat with
// the restaurant's number, message prefilled with the order summary.
// Returns "" when the restaurant has no WhatsApp number on file.
func BuildWhatsAppLink(number string, restaurantName string, o *Order) string {
	digits := phoneDigits(number)
	if digits == "" {
		return ""
	}

	msg := orderMessage(restaurantName, o)
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(msg))
}

func orderMessage(restaurantName string, o *Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New order - %s\n", restaurantName)
	fmt.Fprintf(&b, "Table %d\n\n", o.TableNumber)

	for _, l := range o.Lines {
		fmt.Fprintf(&b, "%dx %s - %s %s\n",
			l.Quantity, l.Name, formatAmount(l.Price*float64(l.Quantity)), o.Currency)
	}

	fmt.Fprintf(&b, "\nTotal: %s %s", formatAmount(o.Total), o.Currency)
	if o.CustomerName != "" {
		fmt.Fprintf(&b, "\nName: %s", o.CustomerName)
	}
	return b.String()
}

// formatAmount drops the decimals for whole amounts, which covers
// zero-decimal currencies without a currency table here.
func formatAmount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// phoneDigits strips everything except digits; wa.me wants the number
// in international format with no plus sign.
func phoneDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
