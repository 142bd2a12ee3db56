// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"math/big"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/ledger"
	"github.com/aurumchain/aurum/runtime"
)

// CustomGenesis is user customized genesis.
type CustomGenesis struct {
	LaunchTime           uint64  `yaml:"launchTime"`
	Name                 string  `yaml:"name"`
	Symbol               string  `yaml:"symbol"`
	Admin                string  `yaml:"admin"`
	InitialSupply        string  `yaml:"initialSupply"`
	TransferFeeBps       uint64  `yaml:"transferFeeBps"`
	FeeRecipient         string  `yaml:"feeRecipient,omitempty"`
	StakingRewardRateBps *uint64 `yaml:"stakingRewardRateBps,omitempty"`
}

// NewCustomNet creates a custom network genesis from YAML config data.
func NewCustomNet(data []byte) (*Genesis, error) {
	var gen CustomGenesis
	if err := yaml.Unmarshal(data, &gen); err != nil {
		return nil, errors.WithMessage(err, "unmarshal genesis config")
	}

	if gen.Name == "" {
		return nil, errors.New("name must not be empty")
	}
	if gen.Symbol == "" {
		return nil, errors.New("symbol must not be empty")
	}
	adminAddr, err := aurum.ParseAddress(gen.Admin)
	if err != nil {
		return nil, errors.WithMessage(err, "invalid admin address")
	}
	admin := *adminAddr
	supply, ok := new(big.Int).SetString(gen.InitialSupply, 10)
	if !ok || supply.Sign() < 0 {
		return nil, errors.Errorf("invalid initial supply: %q", gen.InitialSupply)
	}
	if gen.TransferFeeBps > aurum.MaxTransferFeeRate {
		return nil, errors.Errorf("transfer fee %d exceeds max %d bps", gen.TransferFeeBps, aurum.MaxTransferFeeRate)
	}
	var feeRecipient aurum.Address
	if gen.FeeRecipient != "" {
		addr, err := aurum.ParseAddress(gen.FeeRecipient)
		if err != nil {
			return nil, errors.WithMessage(err, "invalid fee recipient")
		}
		feeRecipient = *addr
	}
	if gen.StakingRewardRateBps != nil && *gen.StakingRewardRateBps > aurum.MaxStakingRewardRate {
		return nil, errors.Errorf("staking reward rate %d exceeds max %d bps", *gen.StakingRewardRateBps, aurum.MaxStakingRewardRate)
	}

	codeHandle := runtime.CodeV1.Handle()
	if gen.StakingRewardRateBps != nil {
		codeHandle = runtime.CodeV2.Handle()
	}

	builder := new(Builder).
		LaunchTime(gen.LaunchTime).
		State(func(l *ledger.Ledger, env ledger.Env) error {
			env.Caller = admin
			if err := l.InitializeStage1(env, ledger.Stage1Config{
				Name:           gen.Name,
				Symbol:         gen.Symbol,
				Admin:          admin,
				InitialSupply:  supply,
				TransferFeeBps: gen.TransferFeeBps,
				FeeRecipient:   feeRecipient,
				InitCodeHandle: codeHandle,
			}); err != nil {
				return err
			}
			if gen.StakingRewardRateBps != nil {
				return l.InitializeStage2(env, *gen.StakingRewardRateBps)
			}
			return nil
		})

	return &Genesis{builder, "customnet"}, nil
}
