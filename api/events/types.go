// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package events

import (
	"github.com/ethereum/go-ethereum/common/math"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/eventdb"
)

// Event a stored ledger event in its wire form.
type Event struct {
	Seq       uint64                `json:"seq"`
	Kind      string                `json:"kind"`
	Primary   string                `json:"primary,omitempty"`
	Secondary string                `json:"secondary,omitempty"`
	Amount    *math.HexOrDecimal256 `json:"amount,omitempty"`
	NewValue  *math.HexOrDecimal256 `json:"newValue,omitempty"`
	Topic     string                `json:"topic,omitempty"`
	Time      uint64                `json:"time"`
}

func convertEvents(events []*eventdb.Event) []*Event {
	converted := make([]*Event, 0, len(events))
	for _, ev := range events {
		converted = append(converted, &Event{
			Seq:       ev.Seq,
			Kind:      string(ev.Kind),
			Primary:   addressString(ev.Primary),
			Secondary: addressString(ev.Secondary),
			Amount:    (*math.HexOrDecimal256)(ev.Amount),
			NewValue:  (*math.HexOrDecimal256)(ev.NewValue),
			Topic:     topicString(ev.Topic),
			Time:      ev.Time,
		})
	}
	return converted
}

func addressString(addr aurum.Address) string {
	if addr.IsZero() {
		return ""
	}
	return addr.String()
}

func topicString(topic aurum.Bytes32) string {
	if topic.IsZero() {
		return ""
	}
	return topic.String()
}
