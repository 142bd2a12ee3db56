// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime

import "github.com/aurumchain/aurum/aurum"

// Operation names of the command surface.
const (
	OpMint                 = "mint"
	OpBurn                 = "burn"
	OpBurnFrom             = "burnFrom"
	OpTransfer             = "transfer"
	OpTransferFrom         = "transferFrom"
	OpApprove              = "approve"
	OpPause                = "pause"
	OpUnpause              = "unpause"
	OpBlacklist            = "blacklist"
	OpUnblacklist          = "unblacklist"
	OpSetTransferFee       = "setTransferFee"
	OpSetFeeRecipient      = "setFeeRecipient"
	OpGrantRole            = "grantRole"
	OpRevokeRole           = "revokeRole"
	OpStake                = "stake"
	OpUnstake              = "unstake"
	OpSetStakingRewardRate = "setStakingRewardRate"
	OpRecoverTokens        = "recoverTokens"
	OpAuthorizeUpgrade     = "authorizeUpgrade"
	OpInitializeStage      = "initializeStage"
)

// Code is a dispatchable behavior table: the set of operations a deployed
// code version accepts. Upgrading swaps the active table while the state
// record stays untouched.
type Code struct {
	name   string
	handle aurum.Bytes32
	ops    map[string]struct{}
}

// NewCode builds a behavior table with the given name and operations.
// The code handle is derived from the name.
func NewCode(name string, ops []string) *Code {
	table := make(map[string]struct{}, len(ops))
	for _, op := range ops {
		table[op] = struct{}{}
	}
	return &Code{
		name:   name,
		handle: aurum.Blake2b([]byte(name)),
		ops:    table,
	}
}

// Name returns the code name.
func (c *Code) Name() string {
	return c.name
}

// Handle returns the code handle recorded in state by authorizeUpgrade.
func (c *Code) Handle() aurum.Bytes32 {
	return c.handle
}

func (c *Code) supports(op string) bool {
	_, ok := c.ops[op]
	return ok
}

var v1Ops = []string{
	OpMint, OpBurn, OpBurnFrom, OpTransfer, OpTransferFrom, OpApprove,
	OpPause, OpUnpause, OpBlacklist, OpUnblacklist,
	OpSetTransferFee, OpSetFeeRecipient, OpGrantRole, OpRevokeRole,
	OpRecoverTokens, OpAuthorizeUpgrade, OpInitializeStage,
}

var v2Ops = append([]string{
	OpStake, OpUnstake, OpSetStakingRewardRate,
}, v1Ops...)

// Shipped code versions. V2 adds the staking operations.
var (
	CodeV1 = NewCode("aurum/v1", v1Ops)
	CodeV2 = NewCode("aurum/v2", v2Ops)
)
