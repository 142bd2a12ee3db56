// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/aurumchain/aurum/aurum"
)

// EventKind names a ledger event.
type EventKind string

// Event kinds emitted by commands.
const (
	EventTransfer                 EventKind = "Transfer"
	EventApproval                 EventKind = "Approval"
	EventRoleGranted              EventKind = "RoleGranted"
	EventRoleRevoked              EventKind = "RoleRevoked"
	EventBlacklisted              EventKind = "Blacklisted"
	EventUnblacklisted            EventKind = "Unblacklisted"
	EventTransferFeeUpdated       EventKind = "TransferFeeUpdated"
	EventFeeRecipientUpdated      EventKind = "FeeRecipientUpdated"
	EventStaked                   EventKind = "Staked"
	EventUnstaked                 EventKind = "Unstaked"
	EventStakingRewardRateUpdated EventKind = "StakingRewardRateUpdated"
	EventPaused                   EventKind = "Paused"
	EventUnpaused                 EventKind = "Unpaused"
	EventUpgraded                 EventKind = "Upgraded"
	EventTokensRecovered          EventKind = "TokensRecovered"
)

// Event is the durable record of a single state change.
// Consumers use events for indexing and notification only; ledger
// correctness never depends on their delivery.
type Event struct {
	Kind      EventKind
	Primary   aurum.Address // subject principal, zero for mints
	Secondary aurum.Address // counterparty, if any
	Amount    *big.Int      // token amount, nil when not applicable
	NewValue  *big.Int      // updated config value, nil when not applicable
	Topic     aurum.Bytes32 // role id or code handle, zero when not applicable
	Time      uint64        // substrate-supplied call timestamp
}

// EventSink receives the events of a successfully committed call.
type EventSink interface {
	WriteEvents(events []*Event) error
}

func (l *Ledger) emit(ev *Event) {
	l.events = append(l.events, ev)
}

// TakeEvents drains the events buffered by the current call.
func (l *Ledger) TakeEvents() []*Event {
	events := l.events
	l.events = nil
	return events
}

// DropEvents discards the events buffered by the current call.
func (l *Ledger) DropEvents() {
	l.events = nil
}
