// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package runtime_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/eventdb"
	"github.com/aurumchain/aurum/ledger"
	"github.com/aurumchain/aurum/ledger/reverts"
	"github.com/aurumchain/aurum/lvldb"
	"github.com/aurumchain/aurum/runtime"
	"github.com/aurumchain/aurum/state"
)

var (
	admin = aurum.BytesToAddress([]byte("admin"))
	x     = aurum.BytesToAddress([]byte("acc-x"))
	y     = aurum.BytesToAddress([]byte("acc-y"))
)

const launchTime = uint64(1000)

func tokens(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), big.NewInt(1e18))
}

func env(caller aurum.Address) ledger.Env {
	return ledger.Env{Caller: caller, Now: launchTime}
}

func newTestRuntime(t *testing.T, code *runtime.Code, sink ledger.EventSink) (*runtime.Runtime, *lvldb.LevelDB) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := ledger.New(state.New(db))
	require.NoError(t, l.InitializeStage1(ledger.Env{Caller: admin, Now: launchTime}, ledger.Stage1Config{
		Name:           "Aurum",
		Symbol:         "AUR",
		Admin:          admin,
		InitialSupply:  tokens(1_000_000),
		InitCodeHandle: code.Handle(),
	}))
	l.DropEvents()

	rt, err := runtime.New(l, code, sink)
	require.NoError(t, err)
	return rt, db
}

func TestTransactCommits(t *testing.T) {
	rt, _ := newTestRuntime(t, runtime.CodeV1, nil)

	err := rt.Transact(runtime.OpTransfer, env(admin), func(l *ledger.Ledger) error {
		return l.Transfer(env(admin), x, tokens(100))
	})
	require.NoError(t, err)

	bal, err := rt.Ledger().BalanceOf(x)
	require.NoError(t, err)
	assert.Equal(t, tokens(100), bal)
}

func TestTransactRevertsAtomically(t *testing.T) {
	sink, err := eventdb.NewMem()
	require.NoError(t, err)
	defer sink.Close()

	rt, _ := newTestRuntime(t, runtime.CodeV1, sink)

	// a multi-step call that fails halfway leaves no trace
	err = rt.Transact(runtime.OpTransfer, env(admin), func(l *ledger.Ledger) error {
		if err := l.Transfer(env(admin), x, tokens(100)); err != nil {
			return err
		}
		return l.Transfer(env(x), y, tokens(200))
	})
	assert.True(t, reverts.Is(err, reverts.KindInsufficientBalance))

	bal, err := rt.Ledger().BalanceOf(x)
	require.NoError(t, err)
	assert.True(t, bal.Sign() == 0)

	bal, err = rt.Ledger().BalanceOf(admin)
	require.NoError(t, err)
	assert.Equal(t, tokens(1_000_000), bal)

	// no events of the reverted call reached the sink
	stored, err := sink.Filter(nil)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestTransactWritesEvents(t *testing.T) {
	sink, err := eventdb.NewMem()
	require.NoError(t, err)
	defer sink.Close()

	rt, _ := newTestRuntime(t, runtime.CodeV1, sink)

	require.NoError(t, rt.Transact(runtime.OpTransfer, env(admin), func(l *ledger.Ledger) error {
		return l.Transfer(env(admin), x, tokens(100))
	}))

	stored, err := sink.Filter(nil)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, ledger.EventTransfer, stored[0].Kind)
	assert.Equal(t, admin, stored[0].Primary)
	assert.Equal(t, x, stored[0].Secondary)
}

func TestCodeGatesOperations(t *testing.T) {
	rt, _ := newTestRuntime(t, runtime.CodeV1, nil)

	err := rt.Transact(runtime.OpStake, env(x), func(l *ledger.Ledger) error {
		return l.Stake(env(x), tokens(1))
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestUpgradeFlow(t *testing.T) {
	rt, _ := newTestRuntime(t, runtime.CodeV1, nil)

	// swapping before authorization is rejected
	err := rt.Upgrade(runtime.CodeV2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authorized")

	require.NoError(t, rt.Transact(runtime.OpTransfer, env(admin), func(l *ledger.Ledger) error {
		return l.Transfer(env(admin), x, tokens(500))
	}))

	require.NoError(t, rt.Transact(runtime.OpAuthorizeUpgrade, env(admin), func(l *ledger.Ledger) error {
		return l.AuthorizeUpgrade(env(admin), runtime.CodeV2.Handle())
	}))
	require.NoError(t, rt.Upgrade(runtime.CodeV2))
	assert.Equal(t, runtime.CodeV2, rt.ActiveCode())

	// stage 2 enables staking on the upgraded code
	require.NoError(t, rt.Transact(runtime.OpInitializeStage, env(admin), func(l *ledger.Ledger) error {
		return l.InitializeStage2(env(admin), 10)
	}))

	require.NoError(t, rt.Transact(runtime.OpStake, env(x), func(l *ledger.Ledger) error {
		return l.Stake(env(x), tokens(200))
	}))

	// pre-upgrade balances survived the swap
	bal, err := rt.Ledger().BalanceOf(x)
	require.NoError(t, err)
	assert.Equal(t, tokens(300), bal)

	staked, err := rt.Ledger().StakingBalance(x)
	require.NoError(t, err)
	assert.Equal(t, tokens(200), staked)

	ver, err := rt.Ledger().Version()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), ver)
}

func TestUnstakeRevertLeavesStake(t *testing.T) {
	rt, _ := newTestRuntime(t, runtime.CodeV2, nil)
	l := rt.Ledger()

	require.NoError(t, rt.Transact(runtime.OpInitializeStage, env(admin), func(l *ledger.Ledger) error {
		return l.InitializeStage2(env(admin), 100)
	}))
	require.NoError(t, rt.Transact(runtime.OpTransfer, env(admin), func(l *ledger.Ledger) error {
		return l.Transfer(env(admin), x, tokens(1000))
	}))
	require.NoError(t, rt.Transact(runtime.OpStake, env(x), func(l *ledger.Ledger) error {
		return l.Stake(env(x), tokens(1000))
	}))

	// exhaust the supply headroom so the reward mint cannot fit
	supply, _ := l.TotalSupply()
	headroom := new(big.Int).Sub(l.MaxSupply(), supply)
	require.NoError(t, rt.Transact(runtime.OpMint, env(admin), func(l *ledger.Ledger) error {
		return l.Mint(env(admin), y, headroom)
	}))

	oneDay := launchTime + aurum.DayLength
	err := rt.Transact(runtime.OpUnstake, ledger.Env{Caller: x, Now: oneDay}, func(l *ledger.Ledger) error {
		return l.Unstake(ledger.Env{Caller: x, Now: oneDay}, tokens(1000))
	})
	assert.True(t, reverts.Is(err, reverts.KindSupplyCapExceeded))

	// the failed claim left principal staked and balances untouched
	staked, err := l.StakingBalance(x)
	require.NoError(t, err)
	assert.Equal(t, tokens(1000), staked)

	bal, err := l.BalanceOf(x)
	require.NoError(t, err)
	assert.True(t, bal.Sign() == 0)
}

func TestCommitPersists(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	l := ledger.New(state.New(db))
	require.NoError(t, l.InitializeStage1(ledger.Env{Caller: admin, Now: launchTime}, ledger.Stage1Config{
		Name:          "Aurum",
		Symbol:        "AUR",
		Admin:         admin,
		InitialSupply: tokens(1_000_000),
	}))
	l.DropEvents()

	rt, err := runtime.New(l, runtime.CodeV1, nil)
	require.NoError(t, err)

	require.NoError(t, rt.Transact(runtime.OpTransfer, env(admin), func(l *ledger.Ledger) error {
		return l.Transfer(env(admin), x, tokens(42))
	}))
	require.NoError(t, rt.Commit())

	// a fresh state over the same store sees the committed balances
	reopened := ledger.New(state.New(db))
	bal, err := reopened.BalanceOf(x)
	require.NoError(t, err)
	assert.Equal(t, tokens(42), bal)
}

func TestNewRejectsHandleMismatch(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	l := ledger.New(state.New(db))
	require.NoError(t, l.InitializeStage1(ledger.Env{Caller: admin, Now: launchTime}, ledger.Stage1Config{
		Name:           "Aurum",
		Symbol:         "AUR",
		Admin:          admin,
		InitialSupply:  tokens(1),
		InitCodeHandle: runtime.CodeV2.Handle(),
	}))
	l.DropEvents()

	_, err = runtime.New(l, runtime.CodeV1, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}
