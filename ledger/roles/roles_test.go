// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/lvldb"
	"github.com/aurumchain/aurum/state"
)

func newRoles() *Roles {
	db, _ := lvldb.NewMem()
	st := state.New(db)
	return New(aurum.BytesToAddress([]byte("roles")), st)
}

func TestGrantRevoke(t *testing.T) {
	r := newRoles()
	acc := aurum.BytesToAddress([]byte("a1"))

	held, err := r.Has(Minter, acc)
	require.NoError(t, err)
	assert.False(t, held)

	changed, err := r.Grant(Minter, acc)
	require.NoError(t, err)
	assert.True(t, changed)

	held, err = r.Has(Minter, acc)
	require.NoError(t, err)
	assert.True(t, held)

	changed, err = r.Revoke(Minter, acc)
	require.NoError(t, err)
	assert.True(t, changed)

	held, err = r.Has(Minter, acc)
	require.NoError(t, err)
	assert.False(t, held)
}

func TestGrantRevokeIdempotent(t *testing.T) {
	r := newRoles()
	acc := aurum.BytesToAddress([]byte("a1"))

	changed, err := r.Grant(Pauser, acc)
	require.NoError(t, err)
	assert.True(t, changed)

	// granting a held role succeeds without change
	changed, err = r.Grant(Pauser, acc)
	require.NoError(t, err)
	assert.False(t, changed)

	// revoking an unheld role succeeds without change
	changed, err = r.Revoke(Upgrader, acc)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestMultipleRolesPerPrincipal(t *testing.T) {
	r := newRoles()
	acc := aurum.BytesToAddress([]byte("a1"))

	for _, role := range []aurum.Bytes32{Admin, Minter, Pauser, Upgrader} {
		_, err := r.Grant(role, acc)
		require.NoError(t, err)
	}
	for _, role := range []aurum.Bytes32{Admin, Minter, Pauser, Upgrader} {
		held, err := r.Has(role, acc)
		require.NoError(t, err)
		assert.True(t, held)
	}

	_, err := r.Revoke(Minter, acc)
	require.NoError(t, err)

	held, _ := r.Has(Minter, acc)
	assert.False(t, held)
	held, _ = r.Has(Admin, acc)
	assert.True(t, held)
}
