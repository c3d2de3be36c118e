package documents

import (
	"bytes"
	"encoding/json"
	"strings"

	"salesdesk/internal/core/types"
)

// StoredLine is a document line as the backend returns it.
// Sales notes carry precio_unitario; older quotation rows only carry pvp.
type StoredLine struct {
	ProductID   int64            `json:"producto_id"`
	Name        string           `json:"nombre,omitempty"`
	Description string           `json:"descripcion,omitempty"`
	UnitPrice   *types.WireMoney `json:"precio_unitario,omitempty"`
	ListPrice   *types.WireMoney `json:"pvp,omitempty"`
	Quantity    types.Count      `json:"cantidad"`
	Subtotal    types.WireMoney  `json:"subtotal"`
}

// Line converts a stored row into a ledger line.
// The unit price is precio_unitario when present and non-zero, else pvp.
// The subtotal is kept as stored unless it is zero.
func (s StoredLine) Line() Line {
	price := types.Zero()
	switch {
	case s.UnitPrice != nil && !s.UnitPrice.Money().IsZero():
		price = s.UnitPrice.Money()
	case s.ListPrice != nil:
		price = s.ListPrice.Money()
	}

	description := strings.TrimSpace(s.Description)
	if description == "" {
		description = s.Name
	}

	subtotal := s.Subtotal.Money()
	if subtotal.IsZero() {
		subtotal = types.LineAmount(int(s.Quantity), price)
	}

	return Line{
		ProductID:   s.ProductID,
		Description: description,
		UnitPrice:   price,
		Quantity:    int(s.Quantity),
		Subtotal:    subtotal,
	}
}

// LinesFromStored converts stored rows in order.
func LinesFromStored(rows []StoredLine) []Line {
	lines := make([]Line, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, r.Line())
	}
	return lines
}

// Number is a backend document number. It is printed as-is; the backend
// sends it either as a string ("NV-000123") or as a bare integer.
type Number string

// UnmarshalJSON accepts a JSON string, number or null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Number(num.String())
	return nil
}
