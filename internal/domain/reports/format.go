package reports

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"salesdesk/internal/core/types"
)

// Formatter renders money for a locale and currency, e.g. es-EC and USD.
type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
	scale   int
	decimal string
}

// NewFormatter creates a formatter for a BCP 47 locale and an ISO 4217 currency code.
func NewFormatter(locale, currencyCode string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", currencyCode, err)
	}

	scale, _ := currency.Standard.Rounding(unit)
	printer := message.NewPrinter(tag)
	sample := printer.Sprint(number.Decimal(1.5, number.Scale(1)))
	return &Formatter{
		printer: printer,
		unit:    unit,
		scale:   scale,
		decimal: strings.TrimSuffix(strings.TrimPrefix(sample, "1"), "5"),
	}, nil
}

// Money formats m with the currency's narrow symbol and its standard decimals.
// Only the integer part goes through the locale printer; the fraction is
// taken from the rounded decimal so large amounts keep every digit.
func (f *Formatter) Money(m types.Money) string {
	m = m.Round(int32(f.scale))
	sign := ""
	if m.IsNegative() {
		sign = "-"
		m = m.Neg()
	}

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(f.printer.Sprint(currency.NarrowSymbol(f.unit)))
	b.WriteString(f.printer.Sprint(number.Decimal(m.IntPart())))
	if f.scale > 0 {
		_, frac, _ := strings.Cut(m.StringFixed(int32(f.scale)), ".")
		b.WriteString(f.decimal)
		b.WriteString(frac)
	}
	return b.String()
}
