// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package reverts defines the domain failure taxonomy of the ledger.
// Every failing command surfaces exactly one revert kind, and the runtime
// discards all state changes of the reverted call.
package reverts

import "errors"

// Kind classifies a revert.
type Kind int

const (
	KindUnauthorized Kind = iota + 1
	KindPaused
	KindBlacklisted
	KindInsufficientBalance
	KindInsufficientAllowance
	KindInsufficientStake
	KindSupplyCapExceeded
	KindFeeTooHigh
	KindRewardRateTooHigh
	KindInvalidRecipient
	KindInvalidAmount
	KindAlreadyBlacklisted
	KindNotBlacklisted
	KindAlreadyInitialized
	KindCannotRecoverSelf
)

// ErrRevert is a domain failure that aborts the whole call.
type ErrRevert struct {
	kind    Kind
	message string
}

// New creates a revert error of the given kind.
func New(kind Kind, message string) *ErrRevert {
	return &ErrRevert{
		kind:    kind,
		message: message,
	}
}

func (e *ErrRevert) Error() string {
	return e.message
}

// Kind returns the revert kind.
func (e *ErrRevert) Kind() Kind {
	return e.kind
}

// Predefined reverts. Callers add operation context by wrapping.
var (
	ErrUnauthorized          = New(KindUnauthorized, "caller lacks required role")
	ErrPaused                = New(KindPaused, "ledger is paused")
	ErrSenderBlacklisted     = New(KindBlacklisted, "sender is blacklisted")
	ErrRecipientBlacklisted  = New(KindBlacklisted, "recipient is blacklisted")
	ErrInsufficientBalance   = New(KindInsufficientBalance, "insufficient balance")
	ErrInsufficientAllowance = New(KindInsufficientAllowance, "insufficient allowance")
	ErrInsufficientStake     = New(KindInsufficientStake, "insufficient staked amount")
	ErrSupplyCapExceeded     = New(KindSupplyCapExceeded, "max supply exceeded")
	ErrFeeTooHigh            = New(KindFeeTooHigh, "transfer fee rate too high")
	ErrRewardRateTooHigh     = New(KindRewardRateTooHigh, "staking reward rate too high")
	ErrInvalidRecipient      = New(KindInvalidRecipient, "invalid recipient")
	ErrInvalidAmount         = New(KindInvalidAmount, "invalid amount")
	ErrAlreadyBlacklisted    = New(KindAlreadyBlacklisted, "already blacklisted")
	ErrNotBlacklisted        = New(KindNotBlacklisted, "not blacklisted")
	ErrAlreadyInitialized    = New(KindAlreadyInitialized, "stage already initialized")
	ErrCannotRecoverSelf     = New(KindCannotRecoverSelf, "cannot recover the ledger's own asset")
)

// IsRevert reports whether err (or its cause chain) is a revert.
func IsRevert(err error) bool {
	var e *ErrRevert
	return errors.As(err, &e)
}

// KindOf extracts the revert kind from err.
// The second return value is false when err is not a revert.
func KindOf(err error) (Kind, bool) {
	var e *ErrRevert
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}

// Is reports whether err is a revert of the given kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
