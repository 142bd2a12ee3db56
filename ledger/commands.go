// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/ledger/reverts"
	"github.com/aurumchain/aurum/ledger/roles"
)

var bpsDenominator = big.NewInt(aurum.BpsDenominator)

// Mint creates amount tokens on to's balance. Caller must hold MINTER.
func (l *Ledger) Mint(env Env, to aurum.Address, amount *big.Int) error {
	if err := l.requireRole(env.Caller, roles.Minter); err != nil {
		return errors.WithMessage(err, "mint")
	}
	if err := l.token.Mint(to, amount); err != nil {
		return errors.WithMessage(err, "mint")
	}
	l.emit(&Event{
		Kind:      EventTransfer,
		Secondary: to,
		Amount:    new(big.Int).Set(amount),
		Time:      env.Now,
	})
	return nil
}

// Burn destroys amount tokens from the caller's balance.
func (l *Ledger) Burn(env Env, amount *big.Int) error {
	if err := l.token.Burn(env.Caller, amount); err != nil {
		return errors.WithMessage(err, "burn")
	}
	l.emit(&Event{
		Kind:    EventTransfer,
		Primary: env.Caller,
		Amount:  new(big.Int).Set(amount),
		Time:    env.Now,
	})
	return nil
}

// BurnFrom destroys amount tokens from owner's balance, consuming the
// caller's allowance first.
func (l *Ledger) BurnFrom(env Env, owner aurum.Address, amount *big.Int) error {
	if err := l.token.ConsumeAllowance(owner, env.Caller, amount); err != nil {
		return errors.WithMessage(err, "burnFrom")
	}
	if err := l.token.Burn(owner, amount); err != nil {
		return errors.WithMessage(err, "burnFrom")
	}
	l.emit(&Event{
		Kind:    EventTransfer,
		Primary: owner,
		Amount:  new(big.Int).Set(amount),
		Time:    env.Now,
	})
	return nil
}

// Transfer moves amount tokens from the caller to to, fee included.
func (l *Ledger) Transfer(env Env, to aurum.Address, amount *big.Int) error {
	return errors.WithMessage(l.transferWithFee(env, env.Caller, to, amount), "transfer")
}

// TransferFrom moves amount tokens from from to to on behalf of the caller,
// consuming the caller's allowance first.
func (l *Ledger) TransferFrom(env Env, from, to aurum.Address, amount *big.Int) error {
	if err := l.token.ConsumeAllowance(from, env.Caller, amount); err != nil {
		return errors.WithMessage(err, "transferFrom")
	}
	return errors.WithMessage(l.transferWithFee(env, from, to, amount), "transferFrom")
}

// transferWithFee splits an ordinary transfer into the fee leg and the net
// leg. The fee leg moves first; both legs run through the guarded update.
func (l *Ledger) transferWithFee(env Env, from, to aurum.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return reverts.ErrInvalidAmount
	}
	feeRate, err := l.params.Get(aurum.KeyTransferFeeRate)
	if err != nil {
		return err
	}

	fee := new(big.Int)
	if feeRate.Sign() > 0 && !from.IsZero() && !to.IsZero() {
		fee.Mul(amount, feeRate)
		fee.Div(fee, bpsDenominator)
	}

	if fee.Sign() > 0 {
		feeRecipient, err := l.params.GetAddress(aurum.KeyFeeRecipient)
		if err != nil {
			return err
		}
		if err := l.token.Move(from, feeRecipient, fee); err != nil {
			return err
		}
		l.emit(&Event{
			Kind:      EventTransfer,
			Primary:   from,
			Secondary: feeRecipient,
			Amount:    fee,
			Time:      env.Now,
		})
	}

	net := new(big.Int).Sub(amount, fee)
	if err := l.token.Move(from, to, net); err != nil {
		return err
	}
	l.emit(&Event{
		Kind:      EventTransfer,
		Primary:   from,
		Secondary: to,
		Amount:    net,
		Time:      env.Now,
	})
	return nil
}

// Approve sets the allowance of spender over the caller's balance.
func (l *Ledger) Approve(env Env, spender aurum.Address, amount *big.Int) error {
	if err := l.token.Approve(env.Caller, spender, amount); err != nil {
		return errors.WithMessage(err, "approve")
	}
	l.emit(&Event{
		Kind:      EventApproval,
		Primary:   env.Caller,
		Secondary: spender,
		NewValue:  new(big.Int).Set(amount),
		Time:      env.Now,
	})
	return nil
}

// Pause sets the global pause flag. Caller must hold PAUSER.
// Pausing an already-paused ledger succeeds without a second event.
func (l *Ledger) Pause(env Env) error {
	if err := l.requireRole(env.Caller, roles.Pauser); err != nil {
		return errors.WithMessage(err, "pause")
	}
	paused, err := l.params.GetBool(aurum.KeyPaused)
	if err != nil {
		return err
	}
	if paused {
		return nil
	}
	if err := l.params.SetBool(aurum.KeyPaused, true); err != nil {
		return err
	}
	l.emit(&Event{Kind: EventPaused, Primary: env.Caller, Time: env.Now})
	return nil
}

// Unpause clears the global pause flag. Caller must hold PAUSER.
func (l *Ledger) Unpause(env Env) error {
	if err := l.requireRole(env.Caller, roles.Pauser); err != nil {
		return errors.WithMessage(err, "unpause")
	}
	paused, err := l.params.GetBool(aurum.KeyPaused)
	if err != nil {
		return err
	}
	if !paused {
		return nil
	}
	if err := l.params.SetBool(aurum.KeyPaused, false); err != nil {
		return err
	}
	l.emit(&Event{Kind: EventUnpaused, Primary: env.Caller, Time: env.Now})
	return nil
}

// Blacklist bars the principal from sending and receiving. ADMIN only.
func (l *Ledger) Blacklist(env Env, principal aurum.Address) error {
	if err := l.requireRole(env.Caller, roles.Admin); err != nil {
		return errors.WithMessage(err, "blacklist")
	}
	changed, err := l.blacklist.Add(principal)
	if err != nil {
		return err
	}
	if !changed {
		return errors.WithMessage(reverts.ErrAlreadyBlacklisted, "blacklist")
	}
	l.emit(&Event{Kind: EventBlacklisted, Primary: principal, Time: env.Now})
	return nil
}

// Unblacklist lifts the bar from the principal. ADMIN only.
func (l *Ledger) Unblacklist(env Env, principal aurum.Address) error {
	if err := l.requireRole(env.Caller, roles.Admin); err != nil {
		return errors.WithMessage(err, "unblacklist")
	}
	changed, err := l.blacklist.Remove(principal)
	if err != nil {
		return err
	}
	if !changed {
		return errors.WithMessage(reverts.ErrNotBlacklisted, "unblacklist")
	}
	l.emit(&Event{Kind: EventUnblacklisted, Primary: principal, Time: env.Now})
	return nil
}

// SetTransferFee sets the transfer fee rate in basis points. ADMIN only.
func (l *Ledger) SetTransferFee(env Env, rateBps uint64) error {
	if err := l.requireRole(env.Caller, roles.Admin); err != nil {
		return errors.WithMessage(err, "setTransferFee")
	}
	if rateBps > aurum.MaxTransferFeeRate {
		return errors.WithMessage(reverts.ErrFeeTooHigh, "setTransferFee")
	}
	rate := new(big.Int).SetUint64(rateBps)
	if err := l.params.Set(aurum.KeyTransferFeeRate, rate); err != nil {
		return err
	}
	l.emit(&Event{Kind: EventTransferFeeUpdated, Primary: env.Caller, NewValue: rate, Time: env.Now})
	return nil
}

// SetFeeRecipient sets the principal receiving transfer fees. ADMIN only.
func (l *Ledger) SetFeeRecipient(env Env, recipient aurum.Address) error {
	if err := l.requireRole(env.Caller, roles.Admin); err != nil {
		return errors.WithMessage(err, "setFeeRecipient")
	}
	if recipient.IsZero() {
		return errors.WithMessage(reverts.ErrInvalidRecipient, "setFeeRecipient")
	}
	if err := l.params.SetAddress(aurum.KeyFeeRecipient, recipient); err != nil {
		return err
	}
	l.emit(&Event{Kind: EventFeeRecipientUpdated, Primary: recipient, Time: env.Now})
	return nil
}

// GrantRole grants the role to the principal. ADMIN administers every role.
// Granting a held role succeeds silently.
func (l *Ledger) GrantRole(env Env, role aurum.Bytes32, principal aurum.Address) error {
	if err := l.requireRole(env.Caller, roles.Admin); err != nil {
		return errors.WithMessage(err, "grantRole")
	}
	changed, err := l.roles.Grant(role, principal)
	if err != nil {
		return err
	}
	if changed {
		l.emit(&Event{Kind: EventRoleGranted, Primary: principal, Topic: role, Time: env.Now})
	}
	return nil
}

// RevokeRole revokes the role from the principal. ADMIN only.
// Revoking an unheld role succeeds silently.
func (l *Ledger) RevokeRole(env Env, role aurum.Bytes32, principal aurum.Address) error {
	if err := l.requireRole(env.Caller, roles.Admin); err != nil {
		return errors.WithMessage(err, "revokeRole")
	}
	changed, err := l.roles.Revoke(role, principal)
	if err != nil {
		return err
	}
	if changed {
		l.emit(&Event{Kind: EventRoleRevoked, Primary: principal, Topic: role, Time: env.Now})
	}
	return nil
}
