// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package params provides the admin-tunable governance parameter store:
// fee rate and recipient, staking reward rate, pause flag and the
// initialization stage counter all live here.
package params

import (
	"math/big"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/state"
)

// Params binder of the governance parameter store.
type Params struct {
	addr  aurum.Address
	state *state.State
}

// New create a new instance.
func New(addr aurum.Address, state *state.State) *Params {
	return &Params{addr, state}
}

// Get returns the numeric param for given key, zero if unset.
func (p *Params) Get(key aurum.Bytes32) (*big.Int, error) {
	v := new(big.Int)
	if err := p.state.GetStructuredStorage(p.addr, key, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Set sets the numeric param for given key.
func (p *Params) Set(key aurum.Bytes32, value *big.Int) error {
	return p.state.SetStructuredStorage(p.addr, key, value)
}

// GetUint64 returns the param for given key as uint64.
func (p *Params) GetUint64(key aurum.Bytes32) (uint64, error) {
	var v uint64
	if err := p.state.GetStructuredStorage(p.addr, key, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// SetUint64 sets the param for given key from uint64.
func (p *Params) SetUint64(key aurum.Bytes32, value uint64) error {
	return p.state.SetStructuredStorage(p.addr, key, value)
}

// GetAddress returns the address param for given key, zero address if unset.
func (p *Params) GetAddress(key aurum.Bytes32) (aurum.Address, error) {
	var v aurum.Address
	if err := p.state.GetStructuredStorage(p.addr, key, &v); err != nil {
		return aurum.Address{}, err
	}
	return v, nil
}

// SetAddress sets the address param for given key.
func (p *Params) SetAddress(key aurum.Bytes32, value aurum.Address) error {
	return p.state.SetStructuredStorage(p.addr, key, value)
}

// GetBool returns the flag param for given key, false if unset.
func (p *Params) GetBool(key aurum.Bytes32) (bool, error) {
	var v bool
	if err := p.state.GetStructuredStorage(p.addr, key, &v); err != nil {
		return false, err
	}
	return v, nil
}

// SetBool sets the flag param for given key.
func (p *Params) SetBool(key aurum.Bytes32, value bool) error {
	return p.state.SetStructuredStorage(p.addr, key, value)
}
