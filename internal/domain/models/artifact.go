package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Artifact is a compiled contract as emitted by truffle, hardhat or forge.
type Artifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     Bytecode        `json:"bytecode"`

	// SourcePath is the file the artifact was read from
	SourcePath string `json:"-"`
}

// Bytecode holds creation code in either of the two artifact layouts:
// a plain "0x..." string or an object with an "object" field.
type Bytecode struct {
	hex string
}

// NewBytecode wraps a hex string.
func NewBytecode(hex string) Bytecode {
	return Bytecode{hex: hex}
}

// UnmarshalJSON handles both string and object bytecode formats.
func (b *Bytecode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		b.hex = s
		return nil
	}

	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		b.hex = obj.Object
		return nil
	}

	return fmt.Errorf("bytecode must be a string or object with 'object' field")
}

// MarshalJSON marshals the bytecode as a string.
func (b Bytecode) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.hex)
}

func (b Bytecode) String() string {
	return b.hex
}

// Bytes decodes the hex creation code. Unlinked library placeholders
// (__$...$__) are rejected since they cannot be deployed as-is.
func (b Bytecode) Bytes() ([]byte, error) {
	h := b.hex
	if h == "" || h == "0x" {
		return nil, fmt.Errorf("empty bytecode")
	}
	if strings.Contains(h, "__") {
		return nil, fmt.Errorf("bytecode contains unlinked library references")
	}
	if !strings.HasPrefix(h, "0x") {
		h = "0x" + h
	}
	return hexutil.Decode(h)
}
