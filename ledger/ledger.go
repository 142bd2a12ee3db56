// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package ledger composes the capability modules (supply ledger, roles,
// blacklist, params, staking) into the command and query surface of the
// token. Every command checks authorization and policy before touching
// balances; the enclosing runtime provides atomicity per call.
package ledger

import (
	"math/big"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/ledger/blacklist"
	"github.com/aurumchain/aurum/ledger/params"
	"github.com/aurumchain/aurum/ledger/reverts"
	"github.com/aurumchain/aurum/ledger/roles"
	"github.com/aurumchain/aurum/ledger/staking"
	"github.com/aurumchain/aurum/ledger/token"
	"github.com/aurumchain/aurum/state"
)

// Env carries the per-call execution context supplied by the substrate:
// the authenticated caller and the call timestamp. Reward math must use
// exactly this timestamp for determinism.
type Env struct {
	Caller aurum.Address
	Now    uint64
}

// Ledger is the state-holding aggregate.
type Ledger struct {
	state     *state.State
	token     *token.Token
	roles     *roles.Roles
	blacklist *blacklist.Blacklist
	params    *params.Params
	staking   *staking.Staking

	events []*Event
}

// New binds a ledger to the given state.
func New(st *state.State) *Ledger {
	l := &Ledger{
		state:     st,
		roles:     roles.New(RolesAddress, st),
		blacklist: blacklist.New(BlacklistAddress, st),
		params:    params.New(ParamsAddress, st),
		staking:   staking.New(StakingAddress, st),
	}
	l.token = token.New(TokenAddress, st, (*updateGuard)(l))
	return l
}

// State returns the underlying state record.
func (l *Ledger) State() *state.State {
	return l.state
}

// updateGuard enforces pause and blacklist policy on every balance
// mutation, including mints and burns.
type updateGuard Ledger

func (g *updateGuard) CheckUpdate(from, to *aurum.Address) error {
	paused, err := g.params.GetBool(aurum.KeyPaused)
	if err != nil {
		return err
	}
	if paused {
		return reverts.ErrPaused
	}
	if from != nil && !from.IsZero() {
		barred, err := g.blacklist.Contains(*from)
		if err != nil {
			return err
		}
		if barred {
			return reverts.ErrSenderBlacklisted
		}
	}
	if to != nil && !to.IsZero() {
		barred, err := g.blacklist.Contains(*to)
		if err != nil {
			return err
		}
		if barred {
			return reverts.ErrRecipientBlacklisted
		}
	}
	return nil
}

func (l *Ledger) requireRole(caller aurum.Address, role aurum.Bytes32) error {
	held, err := l.roles.Has(role, caller)
	if err != nil {
		return err
	}
	if !held {
		return reverts.ErrUnauthorized
	}
	return nil
}

//
// Query surface. Read-only, no auth.
//

// Name returns the token name.
func (l *Ledger) Name() (string, error) { return l.token.Name() }

// Symbol returns the token symbol.
func (l *Ledger) Symbol() (string, error) { return l.token.Symbol() }

// Decimals returns the fixed decimal scale.
func (l *Ledger) Decimals() uint8 { return aurum.Decimals }

// TotalSupply returns the current total supply.
func (l *Ledger) TotalSupply() (*big.Int, error) { return l.token.TotalSupply() }

// MaxSupply returns the supply hard cap.
func (l *Ledger) MaxSupply() *big.Int { return new(big.Int).Set(aurum.MaxSupply) }

// BalanceOf returns the balance of the principal.
func (l *Ledger) BalanceOf(owner aurum.Address) (*big.Int, error) { return l.token.BalanceOf(owner) }

// Allowance returns the allowance of spender over owner's balance.
func (l *Ledger) Allowance(owner, spender aurum.Address) (*big.Int, error) {
	return l.token.Allowance(owner, spender)
}

// Blacklisted returns whether the principal is blacklisted.
func (l *Ledger) Blacklisted(principal aurum.Address) (bool, error) {
	return l.blacklist.Contains(principal)
}

// Paused returns the global pause flag.
func (l *Ledger) Paused() (bool, error) {
	return l.params.GetBool(aurum.KeyPaused)
}

// TransferFeeRate returns the transfer fee in basis points.
func (l *Ledger) TransferFeeRate() (*big.Int, error) {
	return l.params.Get(aurum.KeyTransferFeeRate)
}

// FeeRecipient returns the principal receiving transfer fees.
func (l *Ledger) FeeRecipient() (aurum.Address, error) {
	return l.params.GetAddress(aurum.KeyFeeRecipient)
}

// HasRole returns whether the principal holds the role.
func (l *Ledger) HasRole(role aurum.Bytes32, principal aurum.Address) (bool, error) {
	return l.roles.Has(role, principal)
}

// StakingBalance returns the principal's staked amount.
func (l *Ledger) StakingBalance(principal aurum.Address) (*big.Int, error) {
	return l.staking.StakedAmount(principal)
}

// StakeStartTime returns the principal's reward clock start.
func (l *Ledger) StakeStartTime(principal aurum.Address) (uint64, error) {
	return l.staking.StartTime(principal)
}

// CalculateReward returns the pending reward of the principal at time now.
func (l *Ledger) CalculateReward(principal aurum.Address, now uint64) (*big.Int, error) {
	rate, err := l.params.Get(aurum.KeyStakingRewardRate)
	if err != nil {
		return nil, err
	}
	return l.staking.CalcReward(principal, rate, now)
}

// TotalStaked returns the pool principal's balance.
func (l *Ledger) TotalStaked() (*big.Int, error) {
	return l.staking.TotalStaked()
}

// StakingRewardRate returns the daily staking reward rate in basis points.
func (l *Ledger) StakingRewardRate() (*big.Int, error) {
	return l.params.Get(aurum.KeyStakingRewardRate)
}

// Version returns how many initialization stages have run.
func (l *Ledger) Version() (uint64, error) {
	return l.params.GetUint64(aurum.KeyInitStage)
}

// CodeHandle returns the handle of the currently authorized code.
func (l *Ledger) CodeHandle() (aurum.Bytes32, error) {
	var handle aurum.Bytes32
	if err := l.state.GetStructuredStorage(ParamsAddress, aurum.KeyCodeHandle, &handle); err != nil {
		return aurum.Bytes32{}, err
	}
	return handle, nil
}
