// Package format renders amounts and dates for people.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/mmynk/debtbook/internal/models"
)

// Money formats decimal amounts in one currency for one locale.
type Money struct {
	unit    currency.Unit
	printer *message.Printer

	// Separators of the locale, used for digits beyond int64.
	group   string
	decimal string
}

// NewMoney parses an ISO 4217 code and a BCP 47 locale tag.
func NewMoney(code, locale string) (*Money, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("currency %q: %w", code, err)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("locale %q: %w", locale, err)
	}
	m := &Money{unit: unit, printer: message.NewPrinter(tag)}
	m.group, m.decimal = separators(m.printer.Sprint(number.Decimal(1234567.5, number.Scale(1))))
	return m, nil
}

// separators picks the grouping and decimal separators out of a formatted
// 1234567.5: the first run of non-digits groups, the last one is the point.
func separators(sample string) (group, point string) {
	var runs []string
	var cur strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	switch len(runs) {
	case 0:
		return "", "."
	case 1:
		return "", runs[0]
	default:
		return runs[0], runs[len(runs)-1]
	}
}

// Format renders amount with the currency symbol and locale digit grouping,
// always with two decimals. Digits come from the exact decimal value.
func (m *Money) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return m.printer.Sprintf("%v %s%s%s%s",
		currency.Symbol(m.unit), sign, m.groupDigits(whole), m.decimal, frac)
}

// groupDigits groups an unsigned integer string. Values that fit an int64
// go through the locale printer; larger ones are grouped by thousands.
func (m *Money) groupDigits(whole string) string {
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		return m.printer.Sprint(number.Decimal(n))
	}
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(m.group)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Balance renders a balance with who owes whom, from the user's point of view.
func (m *Money) Balance(amount decimal.Decimal) string {
	switch {
	case amount.IsPositive():
		return m.Format(amount) + " (owed to you)"
	case amount.IsNegative():
		return m.Format(amount.Abs()) + " (you owe)"
	default:
		return m.Format(amount) + " (settled)"
	}
}

// Date renders a calendar date or a dash when absent.
func Date(d models.Date) string {
	if d.IsEmpty() {
		return "-"
	}
	return d.String()
}
