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

// Stake moves amount from the caller's balance into the staking pool.
//
// Re-staking settles the pending reward first: the reward is minted to the
// caller's liquid balance, not added to the stake. The reward clock then
// restarts for the combined staked total.
func (l *Ledger) Stake(env Env, amount *big.Int) error {
	if amount.Sign() <= 0 {
		return errors.WithMessage(reverts.ErrInvalidAmount, "stake")
	}

	staked, err := l.staking.StakedAmount(env.Caller)
	if err != nil {
		return err
	}
	if staked.Sign() > 0 {
		if err := l.settleReward(env); err != nil {
			return errors.WithMessage(err, "stake")
		}
	}

	if err := l.token.Move(env.Caller, StakingAddress, amount); err != nil {
		return errors.WithMessage(err, "stake")
	}
	if err := l.staking.Increase(env.Caller, amount, env.Now); err != nil {
		return err
	}
	l.emit(&Event{
		Kind:    EventStaked,
		Primary: env.Caller,
		Amount:  new(big.Int).Set(amount),
		Time:    env.Now,
	})
	return nil
}

// Unstake moves amount from the staking pool back to the caller and mints
// the reward accrued over the entire current stake. Principal move and
// reward mint are atomic: if the mint would breach the supply cap the whole
// call fails. The reward clock restarts regardless of the remaining stake.
func (l *Ledger) Unstake(env Env, amount *big.Int) error {
	if amount.Sign() <= 0 {
		return errors.WithMessage(reverts.ErrInvalidAmount, "unstake")
	}

	reward, err := l.pendingReward(env)
	if err != nil {
		return err
	}
	if err := l.staking.Decrease(env.Caller, amount, env.Now); err != nil {
		return errors.WithMessage(err, "unstake")
	}
	if err := l.token.Move(StakingAddress, env.Caller, amount); err != nil {
		return errors.WithMessage(err, "unstake")
	}
	if reward.Sign() > 0 {
		if err := l.mintReward(env, reward); err != nil {
			return errors.WithMessage(err, "unstake")
		}
	}
	l.emit(&Event{
		Kind:    EventUnstaked,
		Primary: env.Caller,
		Amount:  new(big.Int).Set(amount),
		Time:    env.Now,
	})
	return nil
}

// SetStakingRewardRate sets the daily reward rate in basis points. ADMIN only.
func (l *Ledger) SetStakingRewardRate(env Env, rateBps uint64) error {
	if err := l.requireRole(env.Caller, roles.Admin); err != nil {
		return errors.WithMessage(err, "setStakingRewardRate")
	}
	if rateBps > aurum.MaxStakingRewardRate {
		return errors.WithMessage(reverts.ErrRewardRateTooHigh, "setStakingRewardRate")
	}
	rate := new(big.Int).SetUint64(rateBps)
	if err := l.params.Set(aurum.KeyStakingRewardRate, rate); err != nil {
		return err
	}
	l.emit(&Event{Kind: EventStakingRewardRateUpdated, Primary: env.Caller, NewValue: rate, Time: env.Now})
	return nil
}

func (l *Ledger) pendingReward(env Env) (*big.Int, error) {
	rate, err := l.params.Get(aurum.KeyStakingRewardRate)
	if err != nil {
		return nil, err
	}
	return l.staking.CalcReward(env.Caller, rate, env.Now)
}

func (l *Ledger) settleReward(env Env) error {
	reward, err := l.pendingReward(env)
	if err != nil {
		return err
	}
	if reward.Sign() == 0 {
		return nil
	}
	return l.mintReward(env, reward)
}

func (l *Ledger) mintReward(env Env, reward *big.Int) error {
	if err := l.token.Mint(env.Caller, reward); err != nil {
		return err
	}
	l.emit(&Event{
		Kind:      EventTransfer,
		Secondary: env.Caller,
		Amount:    new(big.Int).Set(reward),
		Time:      env.Now,
	})
	return nil
}
