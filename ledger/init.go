// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package ledger

import (
	"math/big"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/ledger/reverts"
	"github.com/aurumchain/aurum/ledger/roles"
)

var logger = logrus.WithField("pkg", "ledger")

// Stage1Config is the genesis configuration applied by the first
// initialization stage.
type Stage1Config struct {
	Name            string
	Symbol          string
	Admin           aurum.Address
	InitialSupply   *big.Int
	TransferFeeBps  uint64
	FeeRecipient    aurum.Address // defaults to Admin when zero
	InitCodeHandle  aurum.Bytes32
}

// beginStage advances the monotonic stage counter to n.
// Each stage runs at most once, and stage n requires stage n-1 complete.
func (l *Ledger) beginStage(n uint64) error {
	current, err := l.params.GetUint64(aurum.KeyInitStage)
	if err != nil {
		return err
	}
	if n <= current {
		return reverts.ErrAlreadyInitialized
	}
	if n != current+1 {
		return errors.Errorf("initialize: stage %d requires stage %d complete", n, n-1)
	}
	return l.params.SetUint64(aurum.KeyInitStage, n)
}

// InitializeStage1 establishes token metadata, the admin's roles, the
// initial mint and fee defaults. Runs exactly once per state record.
func (l *Ledger) InitializeStage1(env Env, cfg Stage1Config) error {
	if err := l.beginStage(1); err != nil {
		return errors.WithMessage(err, "initialize stage 1")
	}
	if cfg.Admin.IsZero() {
		return errors.WithMessage(reverts.ErrInvalidRecipient, "initialize stage 1: admin")
	}
	if cfg.TransferFeeBps > aurum.MaxTransferFeeRate {
		return errors.WithMessage(reverts.ErrFeeTooHigh, "initialize stage 1")
	}

	if err := l.token.SetMeta(cfg.Name, cfg.Symbol); err != nil {
		return err
	}

	for _, role := range []aurum.Bytes32{roles.Admin, roles.Minter, roles.Pauser, roles.Upgrader} {
		if _, err := l.roles.Grant(role, cfg.Admin); err != nil {
			return err
		}
		l.emit(&Event{Kind: EventRoleGranted, Primary: cfg.Admin, Topic: role, Time: env.Now})
	}

	if cfg.InitialSupply != nil && cfg.InitialSupply.Sign() > 0 {
		if err := l.token.Mint(cfg.Admin, cfg.InitialSupply); err != nil {
			return errors.WithMessage(err, "initialize stage 1: initial mint")
		}
		l.emit(&Event{
			Kind:      EventTransfer,
			Secondary: cfg.Admin,
			Amount:    new(big.Int).Set(cfg.InitialSupply),
			Time:      env.Now,
		})
	}

	if err := l.params.Set(aurum.KeyTransferFeeRate, new(big.Int).SetUint64(cfg.TransferFeeBps)); err != nil {
		return err
	}
	feeRecipient := cfg.FeeRecipient
	if feeRecipient.IsZero() {
		feeRecipient = cfg.Admin
	}
	if err := l.params.SetAddress(aurum.KeyFeeRecipient, feeRecipient); err != nil {
		return err
	}
	if err := l.state.SetStructuredStorage(ParamsAddress, aurum.KeyCodeHandle, cfg.InitCodeHandle); err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"name":   cfg.Name,
		"symbol": cfg.Symbol,
		"admin":  cfg.Admin,
	}).Info("stage 1 initialized")
	return nil
}

// InitializeStage2 establishes the staking reward rate. Designed so an
// upgraded instance gains the staking fields without re-running stage 1.
func (l *Ledger) InitializeStage2(env Env, rewardRateBps uint64) error {
	if err := l.beginStage(2); err != nil {
		return errors.WithMessage(err, "initialize stage 2")
	}
	if rewardRateBps > aurum.MaxStakingRewardRate {
		return errors.WithMessage(reverts.ErrRewardRateTooHigh, "initialize stage 2")
	}
	if err := l.params.Set(aurum.KeyStakingRewardRate, new(big.Int).SetUint64(rewardRateBps)); err != nil {
		return err
	}
	logger.WithField("rewardRateBps", rewardRateBps).Info("stage 2 initialized")
	return nil
}

// AuthorizeUpgrade swaps the active code handle. UPGRADER only.
// All balance, role, blacklist, fee and staking state stays bound to the
// same record; subsequent calls dispatch through the new code.
func (l *Ledger) AuthorizeUpgrade(env Env, newCodeHandle aurum.Bytes32) error {
	if err := l.requireRole(env.Caller, roles.Upgrader); err != nil {
		return errors.WithMessage(err, "authorizeUpgrade")
	}
	if err := l.state.SetStructuredStorage(ParamsAddress, aurum.KeyCodeHandle, newCodeHandle); err != nil {
		return err
	}
	l.emit(&Event{Kind: EventUpgraded, Primary: env.Caller, Topic: newCodeHandle, Time: env.Now})
	logger.WithField("codeHandle", newCodeHandle).Info("upgrade authorized")
	return nil
}

//
// Foreign asset recovery. Other assets accidentally sent to the pool
// principal are tracked in an escrow map and recoverable by ADMIN.
//

var foreignAssetSalt = []byte("foreign-asset")

func foreignAssetKey(tokenKind aurum.Address) aurum.Bytes32 {
	return aurum.Blake2b(foreignAssetSalt, tokenKind.Bytes())
}

// ForeignBalance returns the escrowed amount of a foreign asset.
func (l *Ledger) ForeignBalance(tokenKind aurum.Address) (*big.Int, error) {
	bal := new(big.Int)
	if err := l.state.GetStructuredStorage(StakingAddress, foreignAssetKey(tokenKind), bal); err != nil {
		return nil, err
	}
	return bal, nil
}

// CreditForeign records a foreign asset deposit to the pool principal.
// Invoked by the substrate when such a deposit lands.
func (l *Ledger) CreditForeign(tokenKind aurum.Address, amount *big.Int) error {
	if amount.Sign() <= 0 {
		return reverts.ErrInvalidAmount
	}
	bal, err := l.ForeignBalance(tokenKind)
	if err != nil {
		return err
	}
	return l.state.SetStructuredStorage(StakingAddress, foreignAssetKey(tokenKind), bal.Add(bal, amount))
}

// RecoverTokens pays escrowed foreign assets out to a recipient. ADMIN only.
// The ledger's own asset can never be recovered this way.
func (l *Ledger) RecoverTokens(env Env, tokenKind, to aurum.Address, amount *big.Int) error {
	if err := l.requireRole(env.Caller, roles.Admin); err != nil {
		return errors.WithMessage(err, "recoverTokens")
	}
	if tokenKind == TokenAddress {
		return errors.WithMessage(reverts.ErrCannotRecoverSelf, "recoverTokens")
	}
	if to.IsZero() {
		return errors.WithMessage(reverts.ErrInvalidRecipient, "recoverTokens")
	}
	if amount.Sign() <= 0 {
		return errors.WithMessage(reverts.ErrInvalidAmount, "recoverTokens")
	}
	bal, err := l.ForeignBalance(tokenKind)
	if err != nil {
		return err
	}
	if bal.Cmp(amount) < 0 {
		return errors.WithMessage(reverts.ErrInsufficientBalance, "recoverTokens")
	}
	if err := l.state.SetStructuredStorage(StakingAddress, foreignAssetKey(tokenKind), bal.Sub(bal, amount)); err != nil {
		return err
	}
	l.emit(&Event{
		Kind:      EventTokensRecovered,
		Primary:   to,
		Secondary: tokenKind,
		Amount:    new(big.Int).Set(amount),
		Time:      env.Now,
	})
	return nil
}
