// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package staking

import (
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/state"
)

type entry struct {
	Amount *big.Int

	// StartTime snapshot of the reward clock. Reset on every stake and
	// unstake for the whole staked total.
	StartTime uint64
}

var (
	_ state.StorageEncoder = (*entry)(nil)
	_ state.StorageDecoder = (*entry)(nil)
)

func (e *entry) Encode() ([]byte, error) {
	if e.Amount.Sign() == 0 && e.StartTime == 0 {
		return nil, nil
	}
	return rlp.EncodeToBytes(e)
}

func (e *entry) Decode(data []byte) error {
	if len(data) == 0 {
		*e = entry{&big.Int{}, 0}
		return nil
	}
	return rlp.DecodeBytes(data, e)
}

var bpsDenominator = big.NewInt(aurum.BpsDenominator)

func (e *entry) calcReward(rateBps *big.Int, now uint64) *big.Int {
	if e.Amount.Sign() == 0 {
		return &big.Int{}
	}
	if now <= e.StartTime {
		return &big.Int{}
	}
	days := (now - e.StartTime) / aurum.DayLength
	if days == 0 {
		return &big.Int{}
	}
	x := new(big.Int).SetUint64(days)
	x.Mul(x, e.Amount)
	x.Mul(x, rateBps)
	return x.Div(x, bpsDenominator)
}
