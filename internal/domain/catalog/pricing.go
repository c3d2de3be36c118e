package catalog

import (
	"strings"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
)

// PaymentMethod selects which of the four product tariffs applies to a sale.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "EFECTIVO"
	PaymentDebit    PaymentMethod = "DEBITO"
	PaymentCredit10 PaymentMethod = "CREDITO_1"
	PaymentCredit15 PaymentMethod = "CREDITO_2"
)

// DefaultPaymentMethod is preselected on new sales notes.
const DefaultPaymentMethod = PaymentCash

// PaymentMethods lists every supported method in display order.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentDebit, PaymentCredit10, PaymentCredit15}

// Valid reports whether m is one of the four known methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentDebit, PaymentCredit10, PaymentCredit15:
		return true
	}
	return false
}

// ParsePaymentMethod accepts the wire value (case-insensitive, surrounding blanks ignored).
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", apperror.NewUnknownPaymentMethod(s)
	}
	return m, nil
}

// ResolveUnitPrice returns the tariff of p designated for method m.
// There is no fallback tier: an unknown method is an error, never the list price.
func ResolveUnitPrice(p *Product, m PaymentMethod) (types.Money, error) {
	switch m {
	case PaymentCash:
		return p.Cash.Money(), nil
	case PaymentDebit:
		return p.List.Money(), nil
	case PaymentCredit10:
		return p.Credit10.Money(), nil
	case PaymentCredit15:
		return p.Credit15.Money(), nil
	default:
		return types.Zero(), apperror.NewUnknownPaymentMethod(string(m))
	}
}

// ListPrice is the price used for quotations, which are not tied to a payment method.
func ListPrice(p *Product) types.Money {
	return p.List.Money()
}
