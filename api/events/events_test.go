// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events_test

import (
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurumchain/aurum/api/events"
	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/eventdb"
	"github.com/aurumchain/aurum/ledger"
)

var (
	alice = aurum.BytesToAddress([]byte("alice"))
	bob   = aurum.BytesToAddress([]byte("bob"))
)

func newTestServer(t *testing.T) *httptest.Server {
	db, err := eventdb.NewMem()
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.WriteEvents([]*ledger.Event{
		{Kind: ledger.EventTransfer, Primary: alice, Secondary: bob, Amount: big.NewInt(100), Time: 10},
		{Kind: ledger.EventStaked, Primary: bob, Amount: big.NewInt(40), Time: 20},
		{Kind: ledger.EventTransfer, Primary: bob, Secondary: alice, Amount: big.NewInt(5), Time: 30},
	}))

	router := mux.NewRouter()
	events.New(db).Mount(router, "/events")
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func getEvents(t *testing.T, url string) ([]*events.Event, int) {
	res, err := http.Get(url) //#nosec G107
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())
	if res.StatusCode != http.StatusOK {
		return nil, res.StatusCode
	}
	var got []*events.Event
	require.NoError(t, json.Unmarshal(body, &got))
	return got, res.StatusCode
}

func TestFilterAll(t *testing.T) {
	srv := newTestServer(t)

	got, status := getEvents(t, srv.URL+"/events")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, got, 3)
	assert.Equal(t, "Transfer", got[0].Kind)
	assert.Equal(t, alice.String(), got[0].Primary)
}

func TestFilterByKindAndPrincipal(t *testing.T) {
	srv := newTestServer(t)

	got, status := getEvents(t, srv.URL+"/events?kind=Staked")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, got, 1)
	assert.Equal(t, bob.String(), got[0].Primary)

	got, status = getEvents(t, srv.URL+"/events?principal="+alice.String())
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, got, 2)
}

func TestFilterRangeAndOrder(t *testing.T) {
	srv := newTestServer(t)

	got, status := getEvents(t, srv.URL+"/events?from=10&to=20&order=desc")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(20), got[0].Time)
}

func TestFilterBadQuery(t *testing.T) {
	srv := newTestServer(t)

	_, status := getEvents(t, srv.URL+"/events?principal=bogus")
	assert.Equal(t, http.StatusBadRequest, status)

	_, status = getEvents(t, srv.URL+"/events?from=10")
	assert.Equal(t, http.StatusBadRequest, status)

	_, status = getEvents(t, srv.URL+"/events?order=sideways")
	assert.Equal(t, http.StatusBadRequest, status)
}
