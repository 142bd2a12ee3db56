// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package staking tracks per-principal staked amounts and the reward accrual
// clock. Staked tokens physically sit on the pool principal's balance; this
// package only does the bookkeeping and the reward math.
package staking

import (
	"math/big"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/ledger/reverts"
	"github.com/aurumchain/aurum/state"
)

// Staking binder of the staking registry.
type Staking struct {
	addr  aurum.Address
	state *state.State
}

// New create a new instance. addr doubles as the pool principal holding
// all staked tokens.
func New(addr aurum.Address, state *state.State) *Staking {
	return &Staking{addr, state}
}

// PoolAddress returns the pool principal.
func (s *Staking) PoolAddress() aurum.Address {
	return s.addr
}

func entryKey(principal aurum.Address) aurum.Bytes32 {
	return aurum.Blake2b(principal.Bytes())
}

func (s *Staking) getEntry(principal aurum.Address) (*entry, error) {
	var e entry
	if err := s.state.GetStructuredStorage(s.addr, entryKey(principal), &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Staking) setEntry(principal aurum.Address, e *entry) error {
	return s.state.SetStructuredStorage(s.addr, entryKey(principal), e)
}

// StakedAmount returns the principal's staked amount.
func (s *Staking) StakedAmount(principal aurum.Address) (*big.Int, error) {
	e, err := s.getEntry(principal)
	if err != nil {
		return nil, err
	}
	return e.Amount, nil
}

// StartTime returns the principal's reward clock start, zero if unstaked.
func (s *Staking) StartTime(principal aurum.Address) (uint64, error) {
	e, err := s.getEntry(principal)
	if err != nil {
		return 0, err
	}
	return e.StartTime, nil
}

// TotalStaked returns the pool principal's balance.
// That this equals the sum of all staked amounts is an emergent invariant,
// not a separately tracked counter.
func (s *Staking) TotalStaked() (*big.Int, error) {
	return s.state.GetBalance(s.addr)
}

// CalcReward computes the pending reward of the principal at the given time
// and daily rate. Whole elapsed days only; a sub-day stint earns nothing.
func (s *Staking) CalcReward(principal aurum.Address, rateBps *big.Int, now uint64) (*big.Int, error) {
	e, err := s.getEntry(principal)
	if err != nil {
		return nil, err
	}
	return e.calcReward(rateBps, now), nil
}

// Increase adds amount to the principal's stake and restarts the reward
// clock for the combined total.
func (s *Staking) Increase(principal aurum.Address, amount *big.Int, now uint64) error {
	e, err := s.getEntry(principal)
	if err != nil {
		return err
	}
	e.Amount = new(big.Int).Add(e.Amount, amount)
	e.StartTime = now
	return s.setEntry(principal, e)
}

// Decrease removes amount from the principal's stake and restarts the
// reward clock for whatever remains. The entry persists at zero when fully
// unstaked.
func (s *Staking) Decrease(principal aurum.Address, amount *big.Int, now uint64) error {
	e, err := s.getEntry(principal)
	if err != nil {
		return err
	}
	if e.Amount.Cmp(amount) < 0 {
		return reverts.ErrInsufficientStake
	}
	e.Amount = new(big.Int).Sub(e.Amount, amount)
	e.StartTime = now
	return s.setEntry(principal, e)
}
