// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package health

import (
	"sync"
	"time"

	"github.com/aurumchain/aurum/ledger"
)

type Status struct {
	Healthy             bool       `json:"healthy"`
	Initialized         bool       `json:"initialized"`
	Version             uint64     `json:"version"`
	LastCommitTimestamp *time.Time `json:"lastCommitTimestamp,omitempty"`
}

type Health struct {
	lock       sync.RWMutex
	ledger     *ledger.Ledger
	lastCommit time.Time
}

func New(l *ledger.Ledger) *Health {
	return &Health{ledger: l}
}

// CommitNotify records that a state commit just completed.
func (h *Health) CommitNotify() {
	h.lock.Lock()
	defer h.lock.Unlock()

	h.lastCommit = time.Now()
}

func (h *Health) Status() (*Status, error) {
	h.lock.RLock()
	defer h.lock.RUnlock()

	version, err := h.ledger.Version()
	if err != nil {
		return nil, err
	}

	status := &Status{
		Healthy:     version > 0,
		Initialized: version > 0,
		Version:     version,
	}
	if !h.lastCommit.IsZero() {
		t := h.lastCommit
		status.LastCommitTimestamp = &t
	}
	return status, nil
}
