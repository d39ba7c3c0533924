// internal/domain/payment/card_test.go
package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCard() MethodCard {
	return MethodCard{
		HolderName: "Pepito Perez",
		Number:     "4111 1111 1111 1111",
		Expiry:     "12/28",
		CVV:        "123",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MethodCard)
		wantErr bool
	}{
		{"valid card", func(c *MethodCard) {}, false},
		{"valid without separators", func(c *MethodCard) { c.Number = "411111111111"; c.Expiry = "1228" }, false},
		{"missing holder", func(c *MethodCard) { c.HolderName = "  " }, true},
		{"short number", func(c *MethodCard) { c.Number = "4111 1111 111" }, true},
		{"short expiry", func(c *MethodCard) { c.Expiry = "12/8" }, true},
		{"long expiry", func(c *MethodCard) { c.Expiry = "12/283" }, true},
		{"short cvv", func(c *MethodCard) { c.CVV = "12" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			tt.mutate(&card)

			err := card.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	card := validCard()

	encoded, err := EncodeCard(card)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := DecodeCard(encoded)
	require.NoError(t, err)

	// Round trip reproduces the original digits minus formatting separators
	assert.Equal(t, "4111111111111111", decoded.Number)
	assert.Equal(t, "1228", decoded.Expiry)
	assert.Equal(t, "123", decoded.CVV)
	assert.Equal(t, "PEPITO PEREZ", decoded.HolderName)
}

func TestDecodeCardRejectsGarbage(t *testing.T) {
	_, err := DecodeCard("not base64 at all !!!")
	assert.Error(t, err)

	_, err = DecodeCard("aGVsbG8=") // base64 of "hello", not JSON
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
		want   string
	}{
		{"empty", "", ""},
		{"visa groups of four", "4111111111111111", "4111 1111 1111 1111"},
		{"partial input", "41111", "4111 1"},
		{"strips separators", "4111-1111-1111", "4111 1111 1111"},
		{"amex 4-6-5", "378282246310005", "3782 822463 10005"},
		{"amex partial", "3782822", "3782 822"},
		{"truncates past nineteen digits", "41111111111111112222999", "4111 1111 1111 1111 222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.number))
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "1", FormatExpiry("1"))
	assert.Equal(t, "12", FormatExpiry("12"))
	assert.Equal(t, "12/2", FormatExpiry("122"))
	assert.Equal(t, "12/28", FormatExpiry("1228"))
	assert.Equal(t, "12/28", FormatExpiry("12/28"))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "4111", Digits("4a1b1c1d1"))
	assert.Equal(t, "", Digits("abc"))
}
