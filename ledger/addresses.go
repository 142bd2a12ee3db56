// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import "github.com/aurumchain/aurum/aurum"

// Well-known module addresses. Each capability module owns the storage
// rooted at its address; the staking address doubles as the pool principal
// physically holding all staked tokens.
var (
	TokenAddress     = aurum.BytesToAddress([]byte("aurum-token"))
	RolesAddress     = aurum.BytesToAddress([]byte("aurum-roles"))
	BlacklistAddress = aurum.BytesToAddress([]byte("aurum-blacklist"))
	ParamsAddress    = aurum.BytesToAddress([]byte("aurum-params"))
	StakingAddress   = aurum.BytesToAddress([]byte("aurum-staking"))
)
