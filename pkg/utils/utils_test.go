package utils

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAddress(t *testing.T) {
	tests := []struct {
		name          string
		value         string
		expected      string
		expectedError bool
	}{
		{
			name:     "lowercase address is checksummed",
			value:    "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913",
			expected: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		},
		{
			name:     "mixed case address is accepted",
			value:    "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
			expected: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		},
		{
			name:     "uppercase hex is accepted",
			value:    "0x833589FCD6EDB6E08F4C7C32D4F71B54BDA02913",
			expected: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		},
		{
			name:     "surrounding whitespace is trimmed",
			value:    "  0x833589fcd6edb6e08f4c7c32d4f71b54bda02913  ",
			expected: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		},
		{
			name:          "empty value",
			value:         "",
			expectedError: true,
		},
		{
			name:          "missing 0x prefix with wrong length",
			value:         "833589fcd6edb6e08f4c7c32d4f71b54bda029",
			expectedError: true,
		},
		{
			name:          "non-hex characters",
			value:         "0xZZ3589fcd6edb6e08f4c7c32d4f71b54bda02913",
			expectedError: true,
		},
		{
			name:          "too short",
			value:         "0x1234",
			expectedError: true,
		},
		{
			name:          "too long",
			value:         "0x833589fcd6edb6e08f4c7c32d4f71b54bda0291300",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := RequireAddress("tokenIn", tt.value)
			if tt.expectedError {
				require.Error(t, err)
				var invalid *InvalidInputError
				assert.ErrorAs(t, err, &invalid)
				assert.Equal(t, "tokenIn", invalid.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.Hex())
		})
	}
}

func TestRequireAmount(t *testing.T) {
	tests := []struct {
		name          string
		value         any
		expected      string
		expectedError bool
	}{
		{name: "decimal string", value: "100", expected: "100"},
		{name: "native int", value: 100, expected: "100"},
		{name: "float64 from JSON", value: float64(250000), expected: "250000"},
		{name: "json.Number", value: json.Number("1000000"), expected: "1000000"},
		{name: "big.Int", value: big.NewInt(42), expected: "42"},
		{
			name:     "max uint256",
			value:    new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)).String(),
			expected: new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)).String(),
		},
		{name: "zero string", value: "0", expectedError: true},
		{name: "zero int", value: 0, expectedError: true},
		{name: "negative", value: "-1", expectedError: true},
		{name: "non-numeric", value: "abc", expectedError: true},
		{name: "nil", value: nil, expectedError: true},
		{name: "empty string", value: "", expectedError: true},
		{name: "fractional float", value: 1.5, expectedError: true},
		{name: "bool", value: true, expectedError: true},
		{
			name:          "value over 256 bits",
			value:         new(big.Int).Lsh(big.NewInt(1), 256).String(),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := RequireAmount("amountIn", tt.value)
			if tt.expectedError {
				require.Error(t, err)
				var invalid *InvalidInputError
				assert.ErrorAs(t, err, &invalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, amount.String())
		})
	}
}

func TestParseUint256AllowsZero(t *testing.T) {
	n, err := ParseUint256("validAfter", "0")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n.Int64())

	n, err = ParseUint256("validAfter", float64(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n.Int64())

	_, err = ParseUint256("validAfter", "-1")
	assert.Error(t, err)
}
