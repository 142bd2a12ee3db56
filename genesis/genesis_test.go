// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/genesis"
	"github.com/aurumchain/aurum/ledger/roles"
	"github.com/aurumchain/aurum/lvldb"
	"github.com/aurumchain/aurum/runtime"
	"github.com/aurumchain/aurum/state"
)

func TestDevnetGenesis(t *testing.T) {
	db, _ := lvldb.NewMem()
	defer db.Close()
	st := state.New(db)

	gene := genesis.NewDevnet()
	assert.Equal(t, "devnet", gene.ID())

	l, err := gene.Build(st)
	require.NoError(t, err)

	name, err := l.Name()
	require.NoError(t, err)
	assert.Equal(t, "Aurum Dev", name)

	supply, err := l.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, new(big.Int).Mul(big.NewInt(100_000_000), big.NewInt(1e18)), supply)

	bal, err := l.BalanceOf(genesis.DevAccount)
	require.NoError(t, err)
	assert.Equal(t, supply, bal)

	for _, role := range []aurum.Bytes32{roles.Admin, roles.Minter, roles.Pauser, roles.Upgrader} {
		has, err := l.HasRole(role, genesis.DevAccount)
		require.NoError(t, err)
		assert.True(t, has)
	}

	// both init stages applied
	ver, err := l.Version()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ver)

	rate, err := l.StakingRewardRate()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(10), rate)

	handle, err := l.CodeHandle()
	require.NoError(t, err)
	assert.Equal(t, runtime.CodeV2.Handle(), handle)

	// genesis events are discarded
	assert.Empty(t, l.TakeEvents())
}
