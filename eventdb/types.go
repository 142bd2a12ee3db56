// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package eventdb

import (
	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/ledger"
)

// Event is a stored ledger event plus its insertion sequence.
type Event struct {
	ledger.Event
	Seq uint64
}

type Order string

const (
	ASC  Order = "asc"
	DESC Order = "desc"
)

// Range bounds matched events by their call time.
type Range struct {
	From uint64
	To   uint64
}

type Options struct {
	Offset uint64
	Limit  uint64
}

// Filter narrows the result of EventDB.Filter.
type Filter struct {
	Kinds     []ledger.EventKind
	Principal *aurum.Address // matches primary or secondary
	Range     *Range
	Options   *Options
	Order     Order // default asc
}
