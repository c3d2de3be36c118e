package editor

import (
	"context"
	"sync"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/customer"
	"salesdesk/internal/domain/documents"
	"salesdesk/internal/domain/documents/quotation"
	"salesdesk/internal/domain/documents/sales_note"
	"salesdesk/pkg/logger"
)

type fakeProducts map[string]*catalog.Product

func (f fakeProducts) FindByCode(_ context.Context, code string) (*catalog.Product, error) {
	if p, ok := f[code]; ok {
		return p, nil
	}
	return nil, apperror.NewNotFound("product", code)
}

type fakeClients map[string]*customer.Client

func (f fakeClients) FindByIdentification(_ context.Context, identification string) (*customer.Client, error) {
	if c, ok := f[identification]; ok {
		return c, nil
	}
	return nil, apperror.NewNotFound("client", identification)
}

// fakeBackend is an in-memory sales-note and quotation backend.
type fakeBackend struct {
	mu         sync.Mutex
	notes      map[int64]*sales_note.SalesNote
	quotations map[int64]*quotation.Quotation
	nextID     int64
	failNext   error

	notePayloads      []*documents.SalesNotePayload
	quotationPayloads []*documents.QuotationPayload
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		notes:      make(map[int64]*sales_note.SalesNote),
		quotations: make(map[int64]*quotation.Quotation),
		nextID:     100,
	}
}

func (f *fakeBackend) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

// noteGateway and quotationGateway split the fake so each satisfies one port.
type noteGateway struct{ *fakeBackend }
type quotationGateway struct{ *fakeBackend }

func (g noteGateway) List(context.Context) ([]*sales_note.SalesNote, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]*sales_note.SalesNote, 0, len(g.notes))
	for _, n := range g.notes {
		out = append(out, n)
	}
	return out, nil
}

func (g noteGateway) Get(_ context.Context, noteID int64) (*sales_note.SalesNote, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.notes[noteID]
	if !ok {
		return nil, apperror.NewNotFound("sales note", noteID)
	}
	cp := *n
	return &cp, nil
}

func (g noteGateway) Create(_ context.Context, p *documents.SalesNotePayload) (*sales_note.SalesNote, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.takeFailure(); err != nil {
		return nil, err
	}
	g.nextID++
	g.notePayloads = append(g.notePayloads, p)
	n := &sales_note.SalesNote{ID: g.nextID, Status: sales_note.StatusActive, Total: p.Total, PaymentMethod: p.PaymentMethod}
	g.notes[n.ID] = n
	return n, nil
}

func (g noteGateway) CreateFromQuotation(ctx context.Context, p *documents.ConversionPayload) (*sales_note.SalesNote, error) {
	return g.Create(ctx, &p.SalesNotePayload)
}

func (g noteGateway) Update(_ context.Context, noteID int64, p *documents.SalesNotePayload) (*sales_note.SalesNote, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.notePayloads = append(g.notePayloads, p)
	n := g.notes[noteID]
	n.Total = p.Total
	return n, nil
}

func (g noteGateway) Void(_ context.Context, noteID int64, reason string) (*sales_note.SalesNote, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := g.notes[noteID]
	n.Status = sales_note.StatusVoided
	n.VoidReason = reason
	return n, nil
}

func (g noteGateway) Delete(_ context.Context, noteID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.notes, noteID)
	return nil
}

func (g quotationGateway) List(context.Context) ([]*quotation.Quotation, error) {
	return nil, nil
}

func (g quotationGateway) Get(_ context.Context, quotationID int64) (*quotation.Quotation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	q, ok := g.quotations[quotationID]
	if !ok {
		return nil, apperror.NewNotFound("quotation", quotationID)
	}
	return q, nil
}

func (g quotationGateway) GetByNumber(context.Context, string) (*quotation.Quotation, error) {
	return nil, apperror.NewNotFound("quotation", "")
}

func (g quotationGateway) Create(_ context.Context, p *documents.QuotationPayload) (*quotation.Quotation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	g.quotationPayloads = append(g.quotationPayloads, p)
	q := &quotation.Quotation{ID: g.nextID, ClientID: p.ClientID, Total: p.Total}
	g.quotations[q.ID] = q
	return q, nil
}

func (g quotationGateway) Update(_ context.Context, quotationID int64, p *documents.QuotationPayload) (*quotation.Quotation, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.quotationPayloads = append(g.quotationPayloads, p)
	q := g.quotations[quotationID]
	q.Total = p.Total
	return q, nil
}

func (g quotationGateway) Delete(_ context.Context, quotationID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.quotations, quotationID)
	return nil
}

func (g quotationGateway) Convert(context.Context, int64) (*sales_note.SalesNote, error) {
	return nil, apperror.NewBackendRejected(501, "")
}

type fixture struct {
	ctx     context.Context
	svc     *Service
	store   *Store
	backend *fakeBackend
	notes   *sales_note.Service
	quotes  *quotation.Service
}

func money(s string) types.Money { return types.MustMoney(s) }

func newFixture(allowPriceEdit bool) *fixture {
	products := fakeProducts{
		"00007": {
			ID: 7, Code: "00007", Name: "Cemento",
			List:     types.NewWireMoney(money("1.20")),
			Cash:     types.NewWireMoney(money("1.00")),
			Credit10: types.NewWireMoney(money("1.32")),
			Credit15: types.NewWireMoney(money("1.38")),
		},
		"00009": {
			ID: 9, Code: "00009", Name: "Arena", Description: "Arena fina",
			List:     types.NewWireMoney(money("5.00")),
			Cash:     types.NewWireMoney(money("4.50")),
			Credit10: types.NewWireMoney(money("5.50")),
			Credit15: types.NewWireMoney(money("5.75")),
		},
	}
	clients := fakeClients{
		"0102030405": {ID: 42, Identification: "0102030405", Name: "Ana Torres"},
	}

	backend := newFakeBackend()
	notes := sales_note.NewService(noteGateway{backend})
	quotes := quotation.NewService(quotationGateway{backend}, notes)
	store := NewStore(defaultTTL)

	svc := NewService(
		store,
		catalog.NewService(products),
		customer.NewService(clients),
		notes,
		quotes,
		Config{AllowPriceEdit: allowPriceEdit},
	)

	return &fixture{
		ctx:     logger.WithLogger(context.Background(), logger.Nop()),
		svc:     svc,
		store:   store,
		backend: backend,
		notes:   notes,
		quotes:  quotes,
	}
}

type failingClients struct{ err error }

func (f failingClients) FindByIdentification(context.Context, string) (*customer.Client, error) {
	return nil, f.err
}

func ptr[T any](v T) *T { return &v }

func wire(s string) *types.WireMoney {
	w := types.NewWireMoney(types.MustMoney(s))
	return &w
}

func testContext() context.Context {
	return logger.WithLogger(context.Background(), logger.Nop())
}
