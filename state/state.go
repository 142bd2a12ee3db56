// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/kv"
)

// Key prefixes of the persisted record. The record identity is fixed, so a
// code swap dispatches against the very same keys without any migration.
var (
	balanceKeyPrefix = []byte("ldg-a-")
	storageKeyPrefix = []byte("ldg-s-")
)

// Error is the error caused by state access failure.
type Error struct {
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("state: %v", e.cause)
}

// State holds the single versioned world-state record of the ledger:
// principal balances plus per-module raw storage. All mutations are
// journaled, so a checkpoint taken before a call can fully revert it.
type State struct {
	db      kv.GetPutter
	cache   map[string][]byte // values as committed in db
	overlay map[string][]byte // pending mutations, empty value means cleared
	journal []journalEntry
}

type journalEntry struct {
	key     string
	prev    []byte
	hadPrev bool
}

// New create a state bound to the persisted record in db.
// A fresh db yields the empty state.
func New(db kv.GetPutter) *State {
	return &State{
		db:      db,
		cache:   make(map[string][]byte),
		overlay: make(map[string][]byte),
	}
}

func balanceKey(addr aurum.Address) []byte {
	return append(append([]byte{}, balanceKeyPrefix...), addr.Bytes()...)
}

func storageKey(addr aurum.Address, key aurum.Bytes32) []byte {
	h := aurum.Blake2b(addr.Bytes(), key.Bytes())
	return append(append([]byte{}, storageKeyPrefix...), h.Bytes()...)
}

func (s *State) get(key []byte) ([]byte, error) {
	ks := string(key)
	if v, ok := s.overlay[ks]; ok {
		return v, nil
	}
	if v, ok := s.cache[ks]; ok {
		return v, nil
	}
	v, err := s.db.Get(key)
	if err != nil {
		if !s.db.IsNotFound(err) {
			return nil, &Error{err}
		}
		v = nil
	}
	s.cache[ks] = v
	return v, nil
}

func (s *State) put(key []byte, val []byte) {
	ks := string(key)
	prev, had := s.overlay[ks]
	s.journal = append(s.journal, journalEntry{ks, prev, had})
	s.overlay[ks] = val
}

// GetBalance returns the token balance of the given principal.
func (s *State) GetBalance(addr aurum.Address) (*big.Int, error) {
	raw, err := s.get(balanceKey(addr))
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return new(big.Int), nil
	}
	var bal big.Int
	if err := rlp.DecodeBytes(raw, &bal); err != nil {
		return nil, &Error{err}
	}
	return &bal, nil
}

// SetBalance sets the token balance of the given principal.
// Balances are non-negative; a negative value indicates a bug in the caller.
func (s *State) SetBalance(addr aurum.Address, balance *big.Int) error {
	if balance.Sign() < 0 {
		return &Error{fmt.Errorf("negative balance for %v", addr)}
	}
	if balance.Sign() == 0 {
		s.put(balanceKey(addr), nil)
		return nil
	}
	raw, err := rlp.EncodeToBytes(balance)
	if err != nil {
		return &Error{err}
	}
	s.put(balanceKey(addr), raw)
	return nil
}

// GetRawStorage returns the raw storage value for given address and key.
func (s *State) GetRawStorage(addr aurum.Address, key aurum.Bytes32) ([]byte, error) {
	return s.get(storageKey(addr, key))
}

// SetRawStorage sets the raw storage value for given address and key.
// An empty value clears the slot.
func (s *State) SetRawStorage(addr aurum.Address, key aurum.Bytes32, raw []byte) {
	s.put(storageKey(addr, key), raw)
}

// EncodeStorage sets storage value encoded by given enc func.
// An empty encoded value clears the slot.
func (s *State) EncodeStorage(addr aurum.Address, key aurum.Bytes32, enc func() ([]byte, error)) error {
	raw, err := enc()
	if err != nil {
		return &Error{err}
	}
	s.SetRawStorage(addr, key, raw)
	return nil
}

// DecodeStorage gets and decodes storage value with given dec func.
// The dec func receives the empty slice for a vacant slot.
func (s *State) DecodeStorage(addr aurum.Address, key aurum.Bytes32, dec func([]byte) error) error {
	raw, err := s.GetRawStorage(addr, key)
	if err != nil {
		return err
	}
	if err := dec(raw); err != nil {
		return &Error{err}
	}
	return nil
}

// NewCheckpoint makes a checkpoint of current state.
// It returns the checkpoint to be passed to RevertTo.
func (s *State) NewCheckpoint() int {
	return len(s.journal)
}

// RevertTo reverts all mutations made after the given checkpoint.
func (s *State) RevertTo(checkpoint int) {
	for len(s.journal) > checkpoint {
		e := s.journal[len(s.journal)-1]
		if e.hadPrev {
			s.overlay[e.key] = e.prev
		} else {
			delete(s.overlay, e.key)
		}
		s.journal = s.journal[:len(s.journal)-1]
	}
}

// Commit writes all pending mutations to db in one batch and resets the journal.
func (s *State) Commit() error {
	batch := s.db.NewBatch()
	for key, val := range s.overlay {
		var err error
		if len(val) == 0 {
			err = batch.Delete([]byte(key))
		} else {
			err = batch.Put([]byte(key), val)
		}
		if err != nil {
			return &Error{err}
		}
	}
	if err := batch.Write(); err != nil {
		return &Error{err}
	}
	for key, val := range s.overlay {
		s.cache[key] = val
	}
	s.overlay = make(map[string][]byte)
	s.journal = nil
	return nil
}
