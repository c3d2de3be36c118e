// Package documents composes quotations and sales notes: the line ledger,
// its totals, and the payloads sent to the sales backend.
package documents

import (
	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
)

// Line is one product entry of a document.
// Subtotal is stored, not derived on read; every mutation rewrites it together with its inputs.
type Line struct {
	ProductID   int64       `json:"productId"`
	Description string      `json:"description"`
	UnitPrice   types.Money `json:"unitPrice"`
	Quantity    int         `json:"quantity"`
	Subtotal    types.Money `json:"subtotal"`
}

// MaxQuantity caps the quantity of a single line, merged additions included.
const MaxQuantity = 1_000_000

// LineProduct identifies what is being added to the ledger.
type LineProduct struct {
	ID          int64
	Description string
}

// Ledger is the ordered line collection of one document under edit.
// It is not safe for concurrent use; the edit session serializes access.
type Ledger struct {
	lines          []Line
	allowPriceEdit bool
}

// NewLedger creates an empty ledger. allowPriceEdit gates SetUnitPrice.
func NewLedger(allowPriceEdit bool) *Ledger {
	return &Ledger{
		lines:          make([]Line, 0),
		allowPriceEdit: allowPriceEdit,
	}
}

// AllowsPriceEdit reports whether SetUnitPrice is permitted.
func (l *Ledger) AllowsPriceEdit() bool {
	return l.allowPriceEdit
}

// AddLine appends a line, or merges into the existing line for the same product.
//
// On merge only the quantity grows; the stored unit price wins over unitPrice,
// so a tariff change between two additions of one product is not applied.
func (l *Ledger) AddLine(p LineProduct, quantity int, unitPrice types.Money) (types.Money, error) {
	if p.ID == 0 {
		return l.Total(), apperror.NewValidation("product is required").
			WithDetail("field", "productId")
	}
	if err := validateQuantity(quantity); err != nil {
		return l.Total(), err
	}
	if err := validatePrice(unitPrice); err != nil {
		return l.Total(), err
	}

	for i := range l.lines {
		if l.lines[i].ProductID == p.ID {
			line := &l.lines[i]
			if quantity > MaxQuantity-line.Quantity {
				return l.Total(), quantityTooLarge(quantity).WithDetail("current", line.Quantity)
			}
			line.Quantity += quantity
			line.Subtotal = types.LineAmount(line.Quantity, line.UnitPrice)
			return l.Total(), nil
		}
	}

	l.lines = append(l.lines, Line{
		ProductID:   p.ID,
		Description: p.Description,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		Subtotal:    types.LineAmount(quantity, unitPrice),
	})
	return l.Total(), nil
}

// RemoveLine deletes the line at position (0-based).
func (l *Ledger) RemoveLine(position int) (types.Money, error) {
	if err := l.checkPosition(position); err != nil {
		return l.Total(), err
	}
	l.lines = append(l.lines[:position], l.lines[position+1:]...)
	return l.Total(), nil
}

// SetQuantity replaces the quantity of a line and recomputes its subtotal.
func (l *Ledger) SetQuantity(position, quantity int) (types.Money, error) {
	if err := l.checkPosition(position); err != nil {
		return l.Total(), err
	}
	if err := validateQuantity(quantity); err != nil {
		return l.Total(), err
	}
	line := &l.lines[position]
	line.Quantity = quantity
	line.Subtotal = types.LineAmount(quantity, line.UnitPrice)
	return l.Total(), nil
}

// SetUnitPrice overrides the unit price of a line and recomputes its subtotal.
func (l *Ledger) SetUnitPrice(position int, price types.Money) (types.Money, error) {
	if !l.allowPriceEdit {
		return l.Total(), apperror.NewBusinessRule(apperror.CodePriceEditDisabled, "unit price editing is disabled")
	}
	if err := l.checkPosition(position); err != nil {
		return l.Total(), err
	}
	if err := validatePrice(price); err != nil {
		return l.Total(), err
	}
	line := &l.lines[position]
	line.UnitPrice = price
	line.Subtotal = types.LineAmount(line.Quantity, price)
	return l.Total(), nil
}

// Load replaces the ledger content with persisted lines.
// Persisted subtotals are kept; a zero subtotal falls back to quantity × unit price.
func (l *Ledger) Load(lines []Line) {
	l.lines = make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.Subtotal.IsZero() {
			line.Subtotal = types.LineAmount(line.Quantity, line.UnitPrice)
		}
		l.lines = append(l.lines, line)
	}
}

// Total is the sum of the current line subtotals.
func (l *Ledger) Total() types.Money {
	total := types.Zero()
	for _, line := range l.lines {
		total = total.Add(line.Subtotal)
	}
	return total
}

// Lines returns a copy of the lines in order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of lines.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// IsEmpty reports whether the ledger has no lines.
func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

func (l *Ledger) checkPosition(position int) error {
	if position < 0 || position >= len(l.lines) {
		return apperror.NewLineOutOfRange(position, len(l.lines))
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return apperror.NewValidation("quantity must be at least 1").
			WithDetail("field", "quantity").
			WithDetail("value", quantity)
	}
	if quantity > MaxQuantity {
		return quantityTooLarge(quantity)
	}
	return nil
}

func quantityTooLarge(quantity int) *apperror.AppError {
	return apperror.NewValidation("quantity exceeds the per-line maximum").
		WithDetail("field", "quantity").
		WithDetail("value", quantity).
		WithDetail("max", MaxQuantity)
}

func validatePrice(price types.Money) error {
	if price.IsNegative() {
		return apperror.NewValidation("unit price must not be negative").
			WithDetail("field", "unitPrice").
			WithDetail("value", price.String())
	}
	return nil
}
