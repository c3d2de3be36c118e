// Package catalog holds the product read model served by the sales backend
// and the tariff selection rules applied when a product is added to a document.
package catalog

import (
	"strings"

	"salesdesk/internal/core/types"
)

// CodeWidth is the width product codes are zero-padded to before lookup.
const CodeWidth = 5

// Product is a product record as the backend returns it.
// The engine never writes products; stock is carried through untouched.
type Product struct {
	ID          int64           `json:"id"`
	Code        string          `json:"codigo"`
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion,omitempty"`
	List        types.WireMoney `json:"pvp"`
	Cash        types.WireMoney `json:"efectivo"`
	Credit10    types.WireMoney `json:"cred_10"`
	Credit15    types.WireMoney `json:"cred_15"`
	Stock       types.Count     `json:"stock"`
}

// DisplayName is the text shown on a document line: the description, or the name when there is none.
func (p *Product) DisplayName() string {
	if d := strings.TrimSpace(p.Description); d != "" {
		return d
	}
	return p.Name
}

// NormalizeCode trims a typed product code and left-pads it with zeros to CodeWidth.
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || len(code) >= CodeWidth {
		return code
	}
	return strings.Repeat("0", CodeWidth-len(code)) + code
}
