// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package accounts

import "github.com/ethereum/go-ethereum/common/math"

// Account the balances and flags of a principal.
type Account struct {
	Balance        *math.HexOrDecimal256 `json:"balance"`
	Staked         *math.HexOrDecimal256 `json:"staked"`
	StakeStartTime uint64                `json:"stakeStartTime"`
	Blacklisted    bool                  `json:"blacklisted"`
}

// Reward the accrued staking reward of a principal at a given time.
type Reward struct {
	Reward *math.HexOrDecimal256 `json:"reward"`
	Time   uint64                `json:"time"`
}
