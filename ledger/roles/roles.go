// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package roles implements the role registry. A principal may hold any number
// of roles; ADMIN administers every role including itself.
package roles

import (
	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/state"
)

// Role identifiers.
var (
	Admin    = aurum.Blake2b([]byte("role-admin"))
	Minter   = aurum.Blake2b([]byte("role-minter"))
	Pauser   = aurum.Blake2b([]byte("role-pauser"))
	Upgrader = aurum.Blake2b([]byte("role-upgrader"))
)

// Roles binder of the role registry.
type Roles struct {
	addr  aurum.Address
	state *state.State
}

// New create a new instance.
func New(addr aurum.Address, state *state.State) *Roles {
	return &Roles{addr, state}
}

func entryKey(role aurum.Bytes32, principal aurum.Address) aurum.Bytes32 {
	return aurum.Blake2b(role.Bytes(), principal.Bytes())
}

// Has returns whether the principal holds the role.
func (r *Roles) Has(role aurum.Bytes32, principal aurum.Address) (bool, error) {
	var held bool
	if err := r.state.GetStructuredStorage(r.addr, entryKey(role, principal), &held); err != nil {
		return false, err
	}
	return held, nil
}

// Grant grants the role to the principal.
// Granting an already-held role is a no-op; the first return value reports
// whether membership actually changed.
func (r *Roles) Grant(role aurum.Bytes32, principal aurum.Address) (bool, error) {
	held, err := r.Has(role, principal)
	if err != nil {
		return false, err
	}
	if held {
		return false, nil
	}
	if err := r.state.SetStructuredStorage(r.addr, entryKey(role, principal), true); err != nil {
		return false, err
	}
	return true, nil
}

// Revoke revokes the role from the principal.
// Revoking an unheld role is a no-op; the first return value reports whether
// membership actually changed.
func (r *Roles) Revoke(role aurum.Bytes32, principal aurum.Address) (bool, error) {
	held, err := r.Has(role, principal)
	if err != nil {
		return false, err
	}
	if !held {
		return false, nil
	}
	if err := r.state.SetStructuredStorage(r.addr, entryKey(role, principal), false); err != nil {
		return false, err
	}
	return true, nil
}
