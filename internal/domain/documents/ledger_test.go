package documents

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salesdesk/internal/core/apperror"
	"salesdesk/internal/core/types"
	"salesdesk/internal/domain/catalog"
)

func money(s string) types.Money { return types.MustMoney(s) }

func assertMoney(t *testing.T, want string, got types.Money) {
	t.Helper()
	assert.True(t, money(want).Equal(got), "want %s, got %s", want, got)
}

func cement() *catalog.Product {
	return &catalog.Product{
		ID:       7,
		Code:     "00007",
		Name:     "Cemento",
		List:     types.NewWireMoney(money("1.20")),
		Cash:     types.NewWireMoney(money("1.00")),
		Credit10: types.NewWireMoney(money("1.32")),
		Credit15: types.NewWireMoney(money("1.38")),
	}
}

func addPriced(t *testing.T, l *Ledger, p *catalog.Product, qty int, m catalog.PaymentMethod) types.Money {
	t.Helper()
	price, err := catalog.ResolveUnitPrice(p, m)
	require.NoError(t, err)
	total, err := l.AddLine(LineProduct{ID: p.ID, Description: p.DisplayName()}, qty, price)
	require.NoError(t, err)
	return total
}

func TestLedger_MergeKeepsFirstPrice(t *testing.T) {
	l := NewLedger(true)
	p := cement()

	total := addPriced(t, l, p, 2, catalog.PaymentCash)
	assertMoney(t, "2.00", total)

	total = addPriced(t, l, p, 3, catalog.PaymentCredit10)

	require.Equal(t, 1, l.Len())
	line := l.Lines()[0]
	assert.Equal(t, 5, line.Quantity)
	assertMoney(t, "1.00", line.UnitPrice)
	assertMoney(t, "5.00", line.Subtotal)
	assertMoney(t, "5.00", total)
}

func TestLedger_TotalFollowsEveryMutation(t *testing.T) {
	l := NewLedger(true)

	_, err := l.AddLine(LineProduct{ID: 1, Description: "A"}, 2, money("3.50"))
	require.NoError(t, err)
	_, err = l.AddLine(LineProduct{ID: 2, Description: "B"}, 1, money("10"))
	require.NoError(t, err)
	total, err := l.AddLine(LineProduct{ID: 3, Description: "C"}, 4, money("0.25"))
	require.NoError(t, err)
	assertMoney(t, "18.00", total)

	total, err = l.SetQuantity(0, 3)
	require.NoError(t, err)
	assertMoney(t, "21.50", total)

	total, err = l.SetUnitPrice(1, money("9.99"))
	require.NoError(t, err)
	assertMoney(t, "21.49", total)

	total, err = l.RemoveLine(2)
	require.NoError(t, err)
	assertMoney(t, "20.49", total)

	sum := types.Zero()
	for _, line := range l.Lines() {
		assertMoney(t, types.LineAmount(line.Quantity, line.UnitPrice).String(), line.Subtotal)
		sum = sum.Add(line.Subtotal)
	}
	assert.True(t, sum.Equal(l.Total()))
}

func TestLedger_RemoveKeepsOrder(t *testing.T) {
	l := NewLedger(true)
	for i := int64(1); i <= 3; i++ {
		_, err := l.AddLine(LineProduct{ID: i}, 1, money("1"))
		require.NoError(t, err)
	}

	_, err := l.RemoveLine(1)
	require.NoError(t, err)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, int64(3), lines[1].ProductID)
}

func TestLedger_PositionOutOfRange(t *testing.T) {
	l := NewLedger(true)
	_, err := l.AddLine(LineProduct{ID: 1}, 1, money("1"))
	require.NoError(t, err)

	for _, pos := range []int{-1, 1, 5} {
		_, err = l.RemoveLine(pos)
		assert.True(t, apperror.IsCode(err, apperror.CodeLineOutOfRange), "remove %d", pos)
		_, err = l.SetQuantity(pos, 2)
		assert.True(t, apperror.IsCode(err, apperror.CodeLineOutOfRange), "quantity %d", pos)
		_, err = l.SetUnitPrice(pos, money("2"))
		assert.True(t, apperror.IsCode(err, apperror.CodeLineOutOfRange), "price %d", pos)
	}
	assert.Equal(t, 1, l.Len())
}

func TestLedger_RejectsInvalidInput(t *testing.T) {
	l := NewLedger(true)

	_, err := l.AddLine(LineProduct{ID: 1}, 0, money("1"))
	assert.True(t, apperror.IsValidation(err))
	_, err = l.AddLine(LineProduct{ID: 1}, 1, money("-0.01"))
	assert.True(t, apperror.IsValidation(err))
	_, err = l.AddLine(LineProduct{}, 1, money("1"))
	assert.True(t, apperror.IsValidation(err))
	assert.True(t, l.IsEmpty())

	_, err = l.AddLine(LineProduct{ID: 1}, 2, money("1"))
	require.NoError(t, err)

	_, err = l.SetQuantity(0, 0)
	assert.True(t, apperror.IsValidation(err))
	_, err = l.SetUnitPrice(0, money("-1"))
	assert.True(t, apperror.IsValidation(err))

	line := l.Lines()[0]
	assert.Equal(t, 2, line.Quantity)
	assertMoney(t, "2", line.Subtotal)
}

func TestLedger_QuantityCap(t *testing.T) {
	l := NewLedger(true)

	_, err := l.AddLine(LineProduct{ID: 1}, MaxQuantity+1, money("1"))
	assert.True(t, apperror.IsValidation(err))
	assert.True(t, l.IsEmpty())

	_, err = l.AddLine(LineProduct{ID: 1}, MaxQuantity-1, money("1"))
	require.NoError(t, err)
	total, err := l.AddLine(LineProduct{ID: 1}, 1, money("1"))
	require.NoError(t, err)
	assertMoney(t, "1000000", total)

	total, err = l.AddLine(LineProduct{ID: 1}, 1, money("1"))
	assert.True(t, apperror.IsValidation(err), "merge past the cap is rejected")
	assertMoney(t, "1000000", total)
	assert.Equal(t, MaxQuantity, l.Lines()[0].Quantity)

	_, err = l.AddLine(LineProduct{ID: 1}, MaxQuantity, money("1"))
	assert.True(t, apperror.IsValidation(err), "sum must not wrap around")
	assert.Equal(t, MaxQuantity, l.Lines()[0].Quantity)

	_, err = l.SetQuantity(0, MaxQuantity+1)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, MaxQuantity, l.Lines()[0].Quantity)
}

func TestLedger_ZeroPriceAllowed(t *testing.T) {
	l := NewLedger(true)
	_, err := l.AddLine(LineProduct{ID: 1}, 1, money("4"))
	require.NoError(t, err)

	total, err := l.SetUnitPrice(0, types.Zero())
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestLedger_PriceEditDisabled(t *testing.T) {
	l := NewLedger(false)
	_, err := l.AddLine(LineProduct{ID: 1}, 1, money("4"))
	require.NoError(t, err)

	_, err = l.SetUnitPrice(0, money("3"))
	assert.True(t, apperror.IsCode(err, apperror.CodePriceEditDisabled))
	assertMoney(t, "4", l.Total())
}

func TestLedger_LinesIsACopy(t *testing.T) {
	l := NewLedger(true)
	_, err := l.AddLine(LineProduct{ID: 1}, 1, money("4"))
	require.NoError(t, err)

	lines := l.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, l.Lines()[0].Quantity)
}

func TestLedger_Load(t *testing.T) {
	l := NewLedger(true)
	l.Load([]Line{
		{ProductID: 1, UnitPrice: money("2"), Quantity: 3, Subtotal: money("5.50")},
		{ProductID: 2, UnitPrice: money("1.5"), Quantity: 2},
	})

	lines := l.Lines()
	assertMoney(t, "5.50", lines[0].Subtotal)
	assertMoney(t, "3", lines[1].Subtotal)
	assertMoney(t, "8.50", l.Total())

	total, err := l.SetQuantity(0, 1)
	require.NoError(t, err)
	assertMoney(t, "5", total)
}

func TestStoredLine_Line(t *testing.T) {
	price := types.NewWireMoney(money("2.50"))
	list := types.NewWireMoney(money("3.00"))
	zero := types.NewWireMoney(types.Zero())

	tests := []struct {
		name      string
		row       StoredLine
		wantPrice string
		wantSub   string
		wantDesc  string
	}{
		{
			name:      "sales note row",
			row:       StoredLine{ProductID: 1, Description: "Cemento gris", Name: "Cemento", UnitPrice: &price, Quantity: 2, Subtotal: types.NewWireMoney(money("5"))},
			wantPrice: "2.50", wantSub: "5", wantDesc: "Cemento gris",
		},
		{
			name:      "quotation row falls back to pvp",
			row:       StoredLine{ProductID: 1, Name: "Cemento", ListPrice: &list, Quantity: 2},
			wantPrice: "3.00", wantSub: "6", wantDesc: "Cemento",
		},
		{
			name:      "zero precio_unitario falls back to pvp",
			row:       StoredLine{ProductID: 1, UnitPrice: &zero, ListPrice: &list, Quantity: 1, Subtotal: types.NewWireMoney(money("3"))},
			wantPrice: "3.00", wantSub: "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := tt.row.Line()
			assertMoney(t, tt.wantPrice, line.UnitPrice)
			assertMoney(t, tt.wantSub, line.Subtotal)
			assert.Equal(t, tt.wantDesc, line.Description)
		})
	}
}

func TestNumber_Decodes(t *testing.T) {
	var doc struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":"NV-000123","b":45,"c":null}`), &doc))
	assert.Equal(t, Number("NV-000123"), doc.A)
	assert.Equal(t, Number("45"), doc.B)
	assert.Equal(t, Number(""), doc.C)
}
