package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireMoney_UnmarshalNumberOrString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "number", in: `1.2`, want: "1.2"},
		{name: "numeric string", in: `"12.50"`, want: "12.5"},
		{name: "padded string", in: `" 3 "`, want: "3"},
		{name: "null", in: `null`, want: "0"},
		{name: "empty string", in: `""`, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w WireMoney
			require.NoError(t, json.Unmarshal([]byte(tt.in), &w))
			assert.True(t, MustMoney(tt.want).Equal(w.Money()), "got %s", w.Money())
		})
	}
}

func TestWireMoney_RejectsGarbage(t *testing.T) {
	var w WireMoney
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &w))
}

func TestWireMoney_MarshalsBareNumber(t *testing.T) {
	out, err := json.Marshal(struct {
		Total WireMoney `json:"total"`
	}{Total: NewWireMoney(MustMoney("50.00"))})

	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 50}`, string(out))
}

func TestCount_Unmarshal(t *testing.T) {
	var c Count
	require.NoError(t, json.Unmarshal([]byte(`"4"`), &c))
	assert.Equal(t, Count(4), c)

	require.NoError(t, json.Unmarshal([]byte(`2.0`), &c))
	assert.Equal(t, Count(2), c)

	assert.Error(t, json.Unmarshal([]byte(`2.5`), &c))
}

func TestLineAmount(t *testing.T) {
	got := LineAmount(3, MustMoney("1.10"))
	assert.True(t, MustMoney("3.30").Equal(got))
}
