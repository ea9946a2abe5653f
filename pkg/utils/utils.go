package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// InvalidInputError reports a malformed or missing request field.
// It is always surfaced as a client error, never a server fault.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// RequireAddress validates value as a 20-byte hex address and returns it in
// checksummed form. Mixed-case input is accepted.
func RequireAddress(field, value string) (common.Address, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return common.Address{}, &InvalidInputError{Field: field, Reason: "address is required"}
	}
	if !common.IsHexAddress(value) {
		return common.Address{}, &InvalidInputError{Field: field, Reason: fmt.Sprintf("not a valid address: %s", value)}
	}
	return common.HexToAddress(value), nil
}

// RequireAmount validates value as a strictly positive integer representable
// in 256 bits. Decimal strings, JSON numbers and native integer types are all
// accepted.
func RequireAmount(field string, value any) (*big.Int, error) {
	amount, err := ParseUint256(field, value)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, &InvalidInputError{Field: field, Reason: "amount must be a positive integer"}
	}
	return amount, nil
}

// ParseUint256 parses value as an unsigned integer representable in 256 bits.
// Zero is allowed; use RequireAmount where it is not.
func ParseUint256(field string, value any) (*big.Int, error) {
	var parsed *big.Int

	switch v := value.(type) {
	case nil:
		return nil, &InvalidInputError{Field: field, Reason: "value is required"}
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, &InvalidInputError{Field: field, Reason: "value is required"}
		}
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, &InvalidInputError{Field: field, Reason: fmt.Sprintf("not a decimal integer: %s", v)}
		}
		parsed = n
	case json.Number:
		n, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return nil, &InvalidInputError{Field: field, Reason: fmt.Sprintf("not an integer: %s", v.String())}
		}
		parsed = n
	case float64:
		// encoding/json decodes untyped JSON numbers as float64
		if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, &InvalidInputError{Field: field, Reason: "value must be an integer"}
		}
		f, _ := big.NewFloat(v).Int(nil)
		parsed = f
	case int:
		parsed = big.NewInt(int64(v))
	case int64:
		parsed = big.NewInt(v)
	case uint64:
		parsed = new(big.Int).SetUint64(v)
	case *big.Int:
		parsed = new(big.Int).Set(v)
	default:
		return nil, &InvalidInputError{Field: field, Reason: fmt.Sprintf("unsupported value type %T", value)}
	}

	if parsed.Sign() < 0 {
		return nil, &InvalidInputError{Field: field, Reason: "value must not be negative"}
	}
	if parsed.BitLen() > 256 {
		return nil, &InvalidInputError{Field: field, Reason: "value exceeds 256 bits"}
	}
	return parsed, nil
}
