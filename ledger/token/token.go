// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package token implements the supply ledger: balances, allowances and the
// total-supply counter bounded by the fixed max supply. Every balance
// mutation funnels through a single guarded update, so pause and blacklist
// policy applies uniformly to transfers, mints and burns.
package token

import (
	"math/big"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/ledger/reverts"
	"github.com/aurumchain/aurum/state"
)

var (
	totalSupplyKey = aurum.Blake2b([]byte("total-supply"))
	nameKey        = aurum.Blake2b([]byte("token-name"))
	symbolKey      = aurum.Blake2b([]byte("token-symbol"))
)

func allowanceKey(owner, spender aurum.Address) aurum.Bytes32 {
	return aurum.Blake2b(owner.Bytes(), spender.Bytes())
}

// UpdateGuard is consulted before every balance mutation.
// A nil from means a mint, a nil to means a burn.
type UpdateGuard interface {
	CheckUpdate(from, to *aurum.Address) error
}

// Token binder of the supply ledger.
type Token struct {
	addr  aurum.Address
	state *state.State
	guard UpdateGuard
}

// New create a new instance. The guard may be nil, in which case updates
// are unconditional.
func New(addr aurum.Address, state *state.State, guard UpdateGuard) *Token {
	return &Token{addr, state, guard}
}

// SetMeta establishes token name and symbol. Part of stage-1 initialization.
func (t *Token) SetMeta(name, symbol string) error {
	if err := t.state.SetStructuredStorage(t.addr, nameKey, name); err != nil {
		return err
	}
	return t.state.SetStructuredStorage(t.addr, symbolKey, symbol)
}

// Name returns the token name.
func (t *Token) Name() (string, error) {
	var name string
	if err := t.state.GetStructuredStorage(t.addr, nameKey, &name); err != nil {
		return "", err
	}
	return name, nil
}

// Symbol returns the token symbol.
func (t *Token) Symbol() (string, error) {
	var symbol string
	if err := t.state.GetStructuredStorage(t.addr, symbolKey, &symbol); err != nil {
		return "", err
	}
	return symbol, nil
}

// TotalSupply returns the current total supply.
func (t *Token) TotalSupply() (*big.Int, error) {
	supply := new(big.Int)
	if err := t.state.GetStructuredStorage(t.addr, totalSupplyKey, supply); err != nil {
		return nil, err
	}
	return supply, nil
}

// BalanceOf returns the balance of the given principal.
func (t *Token) BalanceOf(owner aurum.Address) (*big.Int, error) {
	return t.state.GetBalance(owner)
}

func (t *Token) checkUpdate(from, to *aurum.Address) error {
	if t.guard == nil {
		return nil
	}
	return t.guard.CheckUpdate(from, to)
}

// Mint creates amount tokens on to's balance.
// Fails when the supply cap would be breached.
func (t *Token) Mint(to aurum.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.ErrInvalidAmount
	}
	if err := t.checkUpdate(nil, &to); err != nil {
		return err
	}
	supply, err := t.TotalSupply()
	if err != nil {
		return err
	}
	supply.Add(supply, amount)
	if supply.Cmp(aurum.MaxSupply) > 0 {
		return reverts.ErrSupplyCapExceeded
	}
	bal, err := t.state.GetBalance(to)
	if err != nil {
		return err
	}
	if err := t.state.SetBalance(to, bal.Add(bal, amount)); err != nil {
		return err
	}
	return t.state.SetStructuredStorage(t.addr, totalSupplyKey, supply)
}

// Burn destroys amount tokens from owner's balance.
func (t *Token) Burn(owner aurum.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.ErrInvalidAmount
	}
	if err := t.checkUpdate(&owner, nil); err != nil {
		return err
	}
	bal, err := t.state.GetBalance(owner)
	if err != nil {
		return err
	}
	if bal.Cmp(amount) < 0 {
		return reverts.ErrInsufficientBalance
	}
	if err := t.state.SetBalance(owner, bal.Sub(bal, amount)); err != nil {
		return err
	}
	supply, err := t.TotalSupply()
	if err != nil {
		return err
	}
	return t.state.SetStructuredStorage(t.addr, totalSupplyKey, supply.Sub(supply, amount))
}

// Move moves amount tokens from one principal to another.
// It is the bare transfer leg; fee splitting is the caller's concern.
func (t *Token) Move(from, to aurum.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.ErrInvalidAmount
	}
	if err := t.checkUpdate(&from, &to); err != nil {
		return err
	}
	fromBal, err := t.state.GetBalance(from)
	if err != nil {
		return err
	}
	if fromBal.Cmp(amount) < 0 {
		return reverts.ErrInsufficientBalance
	}
	if err := t.state.SetBalance(from, fromBal.Sub(fromBal, amount)); err != nil {
		return err
	}
	toBal, err := t.state.GetBalance(to)
	if err != nil {
		return err
	}
	return t.state.SetBalance(to, toBal.Add(toBal, amount))
}

// Allowance returns the amount spender may move out of owner's balance.
func (t *Token) Allowance(owner, spender aurum.Address) (*big.Int, error) {
	allowance := new(big.Int)
	if err := t.state.GetStructuredStorage(t.addr, allowanceKey(owner, spender), allowance); err != nil {
		return nil, err
	}
	return allowance, nil
}

// Approve sets the allowance of spender over owner's balance.
// It is an unconditional overwrite; callers must treat the approval race as
// a known constraint of the allowance model.
func (t *Token) Approve(owner, spender aurum.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.ErrInvalidAmount
	}
	return t.state.SetStructuredStorage(t.addr, allowanceKey(owner, spender), amount)
}

// ConsumeAllowance decrements spender's allowance over owner's balance.
func (t *Token) ConsumeAllowance(owner, spender aurum.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.ErrInvalidAmount
	}
	allowance, err := t.Allowance(owner, spender)
	if err != nil {
		return err
	}
	if allowance.Cmp(amount) < 0 {
		return reverts.ErrInsufficientAllowance
	}
	return t.state.SetStructuredStorage(t.addr, allowanceKey(owner, spender), allowance.Sub(allowance, amount))
}
