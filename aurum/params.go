// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package aurum

import "math/big"

// Constants of the ledger.
const (
	// Decimals fixed decimal scale of all token amounts.
	Decimals = 18

	// BpsDenominator basis point denominator for fee and reward math.
	BpsDenominator = 10000

	// MaxTransferFeeRate upper bound of the transfer fee, in basis points (10%).
	MaxTransferFeeRate = 1000

	// MaxStakingRewardRate upper bound of the daily staking reward rate, in basis points (1%/day).
	MaxStakingRewardRate = 100

	// DayLength seconds per reward accrual day.
	DayLength uint64 = 24 * 60 * 60
)

// MaxSupply hard cap of the token supply: 10^9 tokens at 18 decimals.
var MaxSupply = new(big.Int).Mul(big.NewInt(1e9), big.NewInt(1e18))

// Keys of governance params.
var (
	KeyTransferFeeRate   = Blake2b([]byte("transfer-fee-rate"))
	KeyFeeRecipient      = Blake2b([]byte("fee-recipient"))
	KeyStakingRewardRate = Blake2b([]byte("staking-reward-rate"))
	KeyPaused            = Blake2b([]byte("paused"))
	KeyInitStage         = Blake2b([]byte("init-stage"))
	KeyCodeHandle        = Blake2b([]byte("code-handle"))
)
