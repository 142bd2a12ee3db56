// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package blacklist implements the set of principals barred from any balance
// mutation. Unlike role grants, membership changes are strict: adding a
// member twice, or removing a non-member, is an error at the command layer.
package blacklist

import (
	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/state"
)

// Blacklist binder of the blacklist set.
type Blacklist struct {
	addr  aurum.Address
	state *state.State
}

// New create a new instance.
func New(addr aurum.Address, state *state.State) *Blacklist {
	return &Blacklist{addr, state}
}

func entryKey(principal aurum.Address) aurum.Bytes32 {
	return aurum.Blake2b(principal.Bytes())
}

// Contains returns whether the principal is blacklisted.
func (b *Blacklist) Contains(principal aurum.Address) (bool, error) {
	var barred bool
	if err := b.state.GetStructuredStorage(b.addr, entryKey(principal), &barred); err != nil {
		return false, err
	}
	return barred, nil
}

// Add puts the principal on the blacklist.
// Returns false without change if already a member.
func (b *Blacklist) Add(principal aurum.Address) (bool, error) {
	barred, err := b.Contains(principal)
	if err != nil {
		return false, err
	}
	if barred {
		return false, nil
	}
	if err := b.state.SetStructuredStorage(b.addr, entryKey(principal), true); err != nil {
		return false, err
	}
	return true, nil
}

// Remove takes the principal off the blacklist.
// Returns false without change if not a member.
func (b *Blacklist) Remove(principal aurum.Address) (bool, error) {
	barred, err := b.Contains(principal)
	if err != nil {
		return false, err
	}
	if !barred {
		return false, nil
	}
	if err := b.state.SetStructuredStorage(b.addr, entryKey(principal), false); err != nil {
		return false, err
	}
	return true, nil
}
