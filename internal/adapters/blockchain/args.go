package blockchain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"github.com/beldex-coin/beldex-deploy/internal/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// encodeConstructorArgs packs string arguments against the constructor
// declared in the artifact ABI. Integers are parsed as exact base-10 values.
func encodeConstructorArgs(abiJSON json.RawMessage, args []string) ([]byte, error) {
	if len(bytes.TrimSpace(abiJSON)) == 0 || string(abiJSON) == "null" {
		if len(args) > 0 {
			return nil, fmt.Errorf("artifact has no ABI but %d constructor arguments were given", len(args))
		}
		return nil, nil
	}

	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	inputs := parsed.Constructor.Inputs
	if len(inputs) != len(args) {
		return nil, fmt.Errorf("constructor takes %d arguments, got %d", len(inputs), len(args))
	}
	if len(inputs) == 0 {
		return nil, nil
	}

	values := make([]any, len(inputs))
	for i, input := range inputs {
		v, err := convertArg(input.Type, args[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s %s): %w", i, input.Type.String(), input.Name, err)
		}
		values[i] = v
	}

	return parsed.Pack("", values...)
}

// convertArg turns a string into the Go value abi.Pack expects for t
func convertArg(t abi.Type, s string) (any, error) {
	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, s)
		}
		return common.HexToAddress(s), nil

	case abi.IntTy, abi.UintTy:
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("%q is not a base-10 integer", s)
		}
		if err := checkIntRange(t, n); err != nil {
			return nil, err
		}
		goType := t.GetType()
		if goType.Kind() == reflect.Ptr {
			return n, nil
		}
		v := reflect.New(goType).Elem()
		if t.T == abi.UintTy {
			v.SetUint(n.Uint64())
		} else {
			v.SetInt(n.Int64())
		}
		return v.Interface(), nil

	case abi.BoolTy:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a bool", s)
		}
		return b, nil

	case abi.StringTy:
		return s, nil

	case abi.BytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex %q: %w", s, err)
		}
		return b, nil

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, fmt.Errorf("invalid hex %q: %w", s, err)
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(b))
		}
		v := reflect.New(t.GetType()).Elem()
		reflect.Copy(v, reflect.ValueOf(b))
		return v.Interface(), nil

	default:
		return nil, fmt.Errorf("unsupported constructor argument type %s", t.String())
	}
}

func checkIntRange(t abi.Type, n *big.Int) error {
	if t.T == abi.UintTy {
		if n.Sign() < 0 {
			return fmt.Errorf("%s cannot be negative", t.String())
		}
		if n.BitLen() > t.Size {
			return fmt.Errorf("%s overflows %s", n, t.String())
		}
		return nil
	}

	limit := new(big.Int).Lsh(big.NewInt(1), uint(t.Size-1))
	minVal := new(big.Int).Neg(limit)
	maxVal := new(big.Int).Sub(limit, big.NewInt(1))
	if n.Cmp(minVal) < 0 || n.Cmp(maxVal) > 0 {
		return fmt.Errorf("%s overflows %s", n, t.String())
	}
	return nil
}
