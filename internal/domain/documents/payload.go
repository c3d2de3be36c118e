package documents

import (
	"salesdesk/internal/core/types"
)

// ClientPayload is a client embedded by value for server-side creation.
// Phone and email are always present and null when blank; address is omitted when blank.
type ClientPayload struct {
	Identification string  `json:"identificacion"`
	Name           string  `json:"nombre"`
	Phone          *string `json:"telefono"`
	Email          *string `json:"email"`
	Address        *string `json:"direccion,omitempty"`
}

// QuotationLine is a quotation row on the wire.
type QuotationLine struct {
	ProductID int64           `json:"producto_id"`
	Name      string          `json:"nombre"`
	ListPrice types.WireMoney `json:"pvp"`
	Quantity  int             `json:"cantidad"`
	Subtotal  types.WireMoney `json:"subtotal"`
}

// QuotationPayload is the body of POST/PUT /cotizaciones.
// Exactly one of ClientID and Client is set.
type QuotationPayload struct {
	ClientID *int64          `json:"cliente_id,omitempty"`
	Client   *ClientPayload  `json:"cliente,omitempty"`
	Lines    []QuotationLine `json:"productos"`
	Total    types.WireMoney `json:"total"`
}

// SalesNoteLine is a sales-note row on the wire.
type SalesNoteLine struct {
	ProductID int64           `json:"producto_id"`
	Quantity  int             `json:"cantidad"`
	UnitPrice types.WireMoney `json:"precio_unitario"`
	Subtotal  types.WireMoney `json:"subtotal"`
}

// SalesNotePayload is the body of POST/PUT /notas-venta.
// Exactly one of ClientID and Client is set.
type SalesNotePayload struct {
	ClientID      *int64          `json:"cliente_id,omitempty"`
	Client        *ClientPayload  `json:"cliente,omitempty"`
	Lines         []SalesNoteLine `json:"productos"`
	PaymentMethod string          `json:"forma_pago"`
	PriceTier     string          `json:"tipo_precio"`
	Note          string          `json:"observacion"`
	Total         types.WireMoney `json:"total"`
}

// ConversionPayload is the body of POST /notas-venta/desde-cotizacion.
type ConversionPayload struct {
	QuotationID int64 `json:"cotizacion_id"`
	SalesNotePayload
}

// VoidPayload is the body of PUT /notas-venta/{id}/anular.
type VoidPayload struct {
	Reason string `json:"motivo"`
}
