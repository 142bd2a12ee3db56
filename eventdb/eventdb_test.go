// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package eventdb_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/eventdb"
	"github.com/aurumchain/aurum/ledger"
)

var (
	alice = aurum.BytesToAddress([]byte("alice"))
	bob   = aurum.BytesToAddress([]byte("bob"))
	carol = aurum.BytesToAddress([]byte("carol"))
)

func newTestDB(t *testing.T) *eventdb.EventDB {
	db, err := eventdb.NewMem()
	require.NoError(t, err)
	t.Cleanup(db.Close)
	return db
}

func TestWriteAndFilterAll(t *testing.T) {
	db := newTestDB(t)

	events := []*ledger.Event{
		{Kind: ledger.EventTransfer, Primary: alice, Secondary: bob, Amount: big.NewInt(100), Time: 10},
		{Kind: ledger.EventApproval, Primary: alice, Secondary: carol, Amount: big.NewInt(50), Time: 11},
		{Kind: ledger.EventTransfer, Primary: bob, Secondary: carol, Amount: big.NewInt(25), Time: 12},
	}
	require.NoError(t, db.WriteEvents(events))

	got, err := db.Filter(nil)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, ledger.EventTransfer, got[0].Kind)
	assert.Equal(t, alice, got[0].Primary)
	assert.Equal(t, bob, got[0].Secondary)
	assert.Equal(t, big.NewInt(100), got[0].Amount)
	assert.Equal(t, uint64(10), got[0].Time)
	assert.True(t, got[0].Seq < got[1].Seq)
}

func TestFilterByKind(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.WriteEvents([]*ledger.Event{
		{Kind: ledger.EventTransfer, Primary: alice, Secondary: bob, Amount: big.NewInt(1), Time: 1},
		{Kind: ledger.EventPaused, Primary: alice, Time: 2},
		{Kind: ledger.EventStaked, Primary: bob, Amount: big.NewInt(5), Time: 3},
	}))

	got, err := db.Filter(&eventdb.Filter{
		Kinds: []ledger.EventKind{ledger.EventPaused, ledger.EventStaked},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ledger.EventPaused, got[0].Kind)
	assert.Equal(t, ledger.EventStaked, got[1].Kind)
}

func TestFilterByPrincipal(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.WriteEvents([]*ledger.Event{
		{Kind: ledger.EventTransfer, Primary: alice, Secondary: bob, Amount: big.NewInt(1), Time: 1},
		{Kind: ledger.EventTransfer, Primary: carol, Secondary: bob, Amount: big.NewInt(2), Time: 2},
		{Kind: ledger.EventTransfer, Primary: carol, Secondary: alice, Amount: big.NewInt(3), Time: 3},
	}))

	got, err := db.Filter(&eventdb.Filter{Principal: &alice})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, big.NewInt(1), got[0].Amount)
	assert.Equal(t, big.NewInt(3), got[1].Amount)
}

func TestFilterRangeOrderAndLimit(t *testing.T) {
	db := newTestDB(t)

	var events []*ledger.Event
	for i := 1; i <= 10; i++ {
		events = append(events, &ledger.Event{
			Kind:    ledger.EventTransfer,
			Primary: alice,
			Amount:  big.NewInt(int64(i)),
			Time:    uint64(i),
		})
	}
	require.NoError(t, db.WriteEvents(events))

	got, err := db.Filter(&eventdb.Filter{
		Range:   &eventdb.Range{From: 3, To: 8},
		Order:   eventdb.DESC,
		Options: &eventdb.Options{Limit: 2},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(8), got[0].Time)
	assert.Equal(t, uint64(7), got[1].Time)
}

func TestEmptyBatch(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.WriteEvents(nil))

	got, err := db.Filter(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTopicRoundTrip(t *testing.T) {
	db := newTestDB(t)

	role := aurum.Blake2b([]byte("role-minter"))
	require.NoError(t, db.WriteEvents([]*ledger.Event{
		{Kind: ledger.EventRoleGranted, Primary: bob, Secondary: alice, Topic: role, Time: 7},
	}))

	got, err := db.Filter(&eventdb.Filter{Kinds: []ledger.EventKind{ledger.EventRoleGranted}})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, role, got[0].Topic)
	assert.Nil(t, got[0].Amount)
}
