// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/aurumchain/aurum/aurum"
)

// StorageEncoder implement it to customize encoding process for storage data.
type StorageEncoder interface {
	Encode() ([]byte, error)
}

// StorageDecoder implement it to customize decoding process for storage data.
type StorageDecoder interface {
	Decode([]byte) error
}

// SetStructuredStorage encodes the given value and stores it at (addr, key).
// Zero values clear the slot, so vacant and zeroed slots are indistinguishable.
func (s *State) SetStructuredStorage(addr aurum.Address, key aurum.Bytes32, val any) error {
	return s.EncodeStorage(addr, key, func() ([]byte, error) {
		switch v := val.(type) {
		case StorageEncoder:
			return v.Encode()
		case *big.Int:
			if v.Sign() == 0 {
				return nil, nil
			}
			return rlp.EncodeToBytes(v)
		case uint64:
			if v == 0 {
				return nil, nil
			}
			return rlp.EncodeToBytes(v)
		case bool:
			if !v {
				return nil, nil
			}
			return rlp.EncodeToBytes(v)
		case string:
			if v == "" {
				return nil, nil
			}
			return rlp.EncodeToBytes(v)
		case aurum.Address:
			if v.IsZero() {
				return nil, nil
			}
			return rlp.EncodeToBytes(bytes.TrimLeft(v[:], "\x00"))
		case aurum.Bytes32:
			if v.IsZero() {
				return nil, nil
			}
			return rlp.EncodeToBytes(bytes.TrimLeft(v[:], "\x00"))
		default:
			return nil, fmt.Errorf("unsupported storage value type %T", val)
		}
	})
}

// GetStructuredStorage loads and decodes the value at (addr, key) into val.
// A vacant slot decodes to the zero value.
func (s *State) GetStructuredStorage(addr aurum.Address, key aurum.Bytes32, val any) error {
	return s.DecodeStorage(addr, key, func(raw []byte) error {
		switch v := val.(type) {
		case StorageDecoder:
			return v.Decode(raw)
		case *big.Int:
			if len(raw) == 0 {
				v.SetUint64(0)
				return nil
			}
			return rlp.DecodeBytes(raw, v)
		case *uint64:
			if len(raw) == 0 {
				*v = 0
				return nil
			}
			return rlp.DecodeBytes(raw, v)
		case *bool:
			if len(raw) == 0 {
				*v = false
				return nil
			}
			return rlp.DecodeBytes(raw, v)
		case *string:
			if len(raw) == 0 {
				*v = ""
				return nil
			}
			return rlp.DecodeBytes(raw, v)
		case *aurum.Address:
			if len(raw) == 0 {
				*v = aurum.Address{}
				return nil
			}
			_, content, _, err := rlp.Split(raw)
			if err != nil {
				return err
			}
			*v = aurum.BytesToAddress(content)
			return nil
		case *aurum.Bytes32:
			if len(raw) == 0 {
				*v = aurum.Bytes32{}
				return nil
			}
			_, content, _, err := rlp.Split(raw)
			if err != nil {
				return err
			}
			*v = aurum.BytesToBytes32(content)
			return nil
		default:
			return fmt.Errorf("unsupported storage value type %T", val)
		}
	})
}
