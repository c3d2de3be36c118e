package sales_note

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain"
	"salesdesk/internal/domain/catalog"
	"salesdesk/internal/domain/customer"
	"salesdesk/internal/domain/documents"
	"salesdesk/pkg/logger"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) List(ctx context.Context) ([]*SalesNote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*SalesNote), args.Error(1)
}

func (m *MockGateway) Get(ctx context.Context, noteID int64) (*SalesNote, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SalesNote), args.Error(1)
}

func (m *MockGateway) Create(ctx context.Context, p *documents.SalesNotePayload) (*SalesNote, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SalesNote), args.Error(1)
}

func (m *MockGateway) CreateFromQuotation(ctx context.Context, p *documents.ConversionPayload) (*SalesNote, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SalesNote), args.Error(1)
}

func (m *MockGateway) Update(ctx context.Context, noteID int64, p *documents.SalesNotePayload) (*SalesNote, error) {
	args := m.Called(ctx, noteID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SalesNote), args.Error(1)
}

func (m *MockGateway) Void(ctx context.Context, noteID int64, reason string) (*SalesNote, error) {
	args := m.Called(ctx, noteID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SalesNote), args.Error(1)
}

func (m *MockGateway) Delete(ctx context.Context, noteID int64) error {
	args := m.Called(ctx, noteID)
	return args.Error(0)
}

func testContext() context.Context {
	return logger.WithLogger(context.Background(), logger.Nop())
}

func clientID(v int64) *int64 { return &v }

func samplePayload() *documents.SalesNotePayload {
	return &documents.SalesNotePayload{
		ClientID: clientID(42),
		Lines: []documents.SalesNoteLine{
			{ProductID: 7, Quantity: 2, UnitPrice: types.NewWireMoney(types.MustMoney("1")), Subtotal: types.NewWireMoney(types.MustMoney("2"))},
		},
		PaymentMethod: string(catalog.PaymentCash),
		PriceTier:     string(catalog.PaymentCash),
		Total:         types.NewWireMoney(types.MustMoney("2")),
	}
}

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusActive, StatusVoided, true},
		{StatusVoided, StatusDeleted, true},
		{StatusActive, StatusDeleted, false},
		{StatusVoided, StatusActive, false},
		{StatusVoided, StatusVoided, false},
		{StatusDeleted, StatusActive, false},
		{StatusActive, StatusActive, false},
	}

	for _, tt := range tests {
		err := Transition(tt.from, tt.to)
		if tt.ok {
			assert.NoError(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			assert.True(t, apperror.IsCode(err, apperror.CodeInvalidTransition), "%s -> %s", tt.from, tt.to)
		}
	}
}

func TestSalesNote_Decode(t *testing.T) {
	raw := `{"id":3,"numero":"NV-000003","cliente_id":42,"cliente_identificacion":"0102030405",
		"cliente_nombre":"Ana","productos":[{"producto_id":7,"nombre":"Cemento","precio_unitario":"1.00",
		"cantidad":"2","subtotal":"2.00"}],"forma_pago":"CREDITO_1","total":"2.00","estado":"activa"}`

	var n SalesNote
	require.NoError(t, json.Unmarshal([]byte(raw), &n))

	assert.Equal(t, StatusActive, n.Status)
	assert.True(t, n.CanModify())
	method, err := n.Method()
	require.NoError(t, err)
	assert.Equal(t, catalog.PaymentCredit10, method)

	b, err := n.Binding()
	require.NoError(t, err)
	assert.Equal(t, int64(42), b.Client().ID)

	lines := n.LedgerLines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Cemento", lines[0].Description)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestSalesNote_Binding(t *testing.T) {
	t.Run("walk-in without client id", func(t *testing.T) {
		n := &SalesNote{ClientIdentification: customer.WalkInIdentification, ClientName: customer.WalkInName}
		b, err := n.Binding()
		require.NoError(t, err)
		assert.Equal(t, customer.ModeWalkIn, b.Mode())
	})

	t.Run("identified client without id", func(t *testing.T) {
		n := &SalesNote{ClientIdentification: "0102030405", ClientName: "Ana"}
		_, err := n.Binding()
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestService_Void(t *testing.T) {
	ctx := testContext()
	gw := new(MockGateway)
	svc := NewService(gw)

	var hooked *SalesNote
	svc.Hooks().On(domain.AfterVoid, func(_ context.Context, n *SalesNote) error {
		hooked = n
		return nil
	})

	gw.On("Get", ctx, int64(3)).Return(&SalesNote{ID: 3, Status: StatusActive}, nil).Once()
	gw.On("Void", ctx, int64(3), "entered in error").Return(&SalesNote{ID: 3, Status: StatusVoided}, nil).Once()

	note, err := svc.Void(ctx, 3, "  entered in error ")
	require.NoError(t, err)
	assert.Equal(t, StatusVoided, note.Status)
	assert.Equal(t, "entered in error", note.VoidReason)
	require.NotNil(t, hooked)
	assert.Equal(t, int64(3), hooked.ID)

	gw.On("Get", ctx, int64(3)).Return(&SalesNote{ID: 3, Status: StatusVoided}, nil).Once()

	_, err = svc.Void(ctx, 3, "again")
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidTransition))
	gw.AssertNumberOfCalls(t, "Void", 1)
}

func TestService_Void_RequiresReason(t *testing.T) {
	ctx := testContext()
	gw := new(MockGateway)
	gw.On("Get", ctx, int64(3)).Return(&SalesNote{ID: 3, Status: StatusActive}, nil)

	_, err := NewService(gw).Void(ctx, 3, "   ")

	assert.True(t, apperror.IsValidation(err))
	gw.AssertNotCalled(t, "Void", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Delete_OnlyWhenVoided(t *testing.T) {
	ctx := testContext()
	gw := new(MockGateway)
	svc := NewService(gw)

	gw.On("Get", ctx, int64(5)).Return(&SalesNote{ID: 5, Status: StatusActive}, nil).Once()
	_, err := svc.Delete(ctx, 5)
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidTransition))
	gw.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	gw.On("Get", ctx, int64(5)).Return(&SalesNote{ID: 5, Status: StatusVoided}, nil).Once()
	gw.On("Delete", ctx, int64(5)).Return(nil).Once()

	note, err := svc.Delete(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, StatusDeleted, note.Status)
	gw.AssertExpectations(t)
}

func TestService_Update_OnlyWhenActive(t *testing.T) {
	ctx := testContext()
	gw := new(MockGateway)
	svc := NewService(gw)
	p := samplePayload()

	gw.On("Get", ctx, int64(8)).Return(&SalesNote{ID: 8, Status: StatusVoided}, nil).Once()
	_, err := svc.Update(ctx, 8, p)
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidTransition))

	gw.On("Get", ctx, int64(8)).Return(&SalesNote{ID: 8, Status: StatusActive}, nil).Once()
	gw.On("Update", ctx, int64(8), p).Return(&SalesNote{ID: 8, Status: StatusActive}, nil).Once()

	note, err := svc.Update(ctx, 8, p)
	require.NoError(t, err)
	assert.Equal(t, int64(8), note.ID)
	gw.AssertExpectations(t)
}

func TestService_Create_ValidatesPayload(t *testing.T) {
	ctx := testContext()
	gw := new(MockGateway)
	svc := NewService(gw)

	empty := samplePayload()
	empty.Lines = nil
	_, err := svc.Create(ctx, empty)
	assert.True(t, apperror.IsValidation(err))

	hybrid := samplePayload()
	hybrid.Client = &documents.ClientPayload{Identification: "1", Name: "x"}
	_, err = svc.Create(ctx, hybrid)
	assert.True(t, apperror.IsValidation(err))

	gw.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_WrapsBackendRejection(t *testing.T) {
	ctx := testContext()
	gw := new(MockGateway)
	p := samplePayload()
	gw.On("Create", ctx, p).Return(nil, apperror.NewBackendRejected(409, "duplicado"))

	_, err := NewService(gw).Create(ctx, p)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeBackendRejected, appErr.Code)
	assert.Equal(t, 409, appErr.HTTPStatus)
}

func TestService_CreateFromQuotation(t *testing.T) {
	ctx := testContext()
	gw := new(MockGateway)
	p := &documents.ConversionPayload{QuotationID: 15, SalesNotePayload: *samplePayload()}
	gw.On("CreateFromQuotation", ctx, p).Return(&SalesNote{ID: 9}, nil)

	note, err := NewService(gw).CreateFromQuotation(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, int64(9), note.ID)

	_, err = NewService(gw).CreateFromQuotation(ctx, &documents.ConversionPayload{SalesNotePayload: *samplePayload()})
	assert.True(t, apperror.IsValidation(err))
}

func TestService_List_PropagatesErrors(t *testing.T) {
	ctx := testContext()
	gw := new(MockGateway)
	boom := errors.New("timeout")
	gw.On("List", ctx).Return(nil, boom)

	_, err := NewService(gw).List(ctx)
	assert.ErrorIs(t, err, boom)
}
