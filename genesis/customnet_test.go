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
	"github.com/aurumchain/aurum/lvldb"
	"github.com/aurumchain/aurum/runtime"
	"github.com/aurumchain/aurum/state"
)

func TestNewCustomNet(t *testing.T) {
	config := []byte(`
launchTime: 1735689600
name: Mainnet Gold
symbol: GLD
admin: "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"
initialSupply: "5000000000000000000000000"
transferFeeBps: 100
`)

	gene, err := genesis.NewCustomNet(config)
	require.NoError(t, err)
	assert.Equal(t, "customnet", gene.ID())

	db, _ := lvldb.NewMem()
	defer db.Close()
	st := state.New(db)

	l, err := gene.Build(st)
	require.NoError(t, err)

	symbol, err := l.Symbol()
	require.NoError(t, err)
	assert.Equal(t, "GLD", symbol)

	admin := aurum.MustParseAddress("0x7567d83b7b8d80addcb281a71d54fc7b3364ffed")

	bal, err := l.BalanceOf(admin)
	require.NoError(t, err)
	wantSupply, _ := new(big.Int).SetString("5000000000000000000000000", 10)
	assert.Equal(t, wantSupply, bal)

	rate, err := l.TransferFeeRate()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(100), rate)

	// fee recipient defaults to the admin
	recipient, err := l.FeeRecipient()
	require.NoError(t, err)
	assert.Equal(t, admin, recipient)

	// staking stage omitted, so stage 1 only and v1 behavior
	ver, err := l.Version()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ver)

	handle, err := l.CodeHandle()
	require.NoError(t, err)
	assert.Equal(t, runtime.CodeV1.Handle(), handle)
}

func TestNewCustomNetWithStaking(t *testing.T) {
	config := []byte(`
launchTime: 1735689600
name: Mainnet Gold
symbol: GLD
admin: "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"
initialSupply: "1000000"
stakingRewardRateBps: 25
`)

	gene, err := genesis.NewCustomNet(config)
	require.NoError(t, err)

	db, _ := lvldb.NewMem()
	defer db.Close()
	l, err := gene.Build(state.New(db))
	require.NoError(t, err)

	ver, err := l.Version()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ver)

	rate, err := l.StakingRewardRate()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(25), rate)
}

func TestNewCustomNetInvalid(t *testing.T) {
	tests := []struct {
		name   string
		config string
	}{
		{"empty name", `{symbol: GLD, admin: "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", initialSupply: "1"}`},
		{"empty symbol", `{name: Gold, admin: "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", initialSupply: "1"}`},
		{"bad admin", `{name: Gold, symbol: GLD, admin: "0x00", initialSupply: "1"}`},
		{"bad supply", `{name: Gold, symbol: GLD, admin: "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", initialSupply: "-1"}`},
		{"fee too high", `{name: Gold, symbol: GLD, admin: "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", initialSupply: "1", transferFeeBps: 1001}`},
		{"reward rate too high", `{name: Gold, symbol: GLD, admin: "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", initialSupply: "1", stakingRewardRateBps: 101}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := genesis.NewCustomNet([]byte(tt.config))
			assert.Error(t, err)
		})
	}
}
