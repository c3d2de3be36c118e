package backend

import (
	"context"
	"net/url"

	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/customer"
)

// FindByIdentification implements customer.Directory.
func (cl *Client) FindByIdentification(ctx context.Context, identification string) (*customer.Client, error) {
	var c customer.Client
	if err := cl.get(ctx, "client", "/clientes/identificacion/"+url.PathEscape(identification), &c, "cliente"); err != nil {
		return nil, err
	}
	return &c, nil
}

// FindByCode implements catalog.ProductDirectory. code must already be normalized.
func (cl *Client) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	var p catalog.Product
	if err := cl.get(ctx, "product", "/productos/codigo/"+url.PathEscape(code), &p, "producto"); err != nil {
		return nil, err
	}
	return &p, nil
}

var (
	_ customer.Directory       = (*Client)(nil)
	_ catalog.ProductDirectory = (*Client)(nil)
)
