// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package token

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"

	"github.com/aurumchain/aurum/api/utils"
	"github.com/aurumchain/aurum/ledger"
)

type Token struct {
	ledger *ledger.Ledger
}

func New(l *ledger.Ledger) *Token {
	return &Token{l}
}

// Info the token metadata and current ledger configuration.
type Info struct {
	Name            string                `json:"name"`
	Symbol          string                `json:"symbol"`
	Decimals        uint8                 `json:"decimals"`
	TotalSupply     *math.HexOrDecimal256 `json:"totalSupply"`
	MaxSupply       *math.HexOrDecimal256 `json:"maxSupply"`
	TotalStaked     *math.HexOrDecimal256 `json:"totalStaked"`
	Paused          bool                  `json:"paused"`
	TransferFeeBps  *math.HexOrDecimal256 `json:"transferFeeBps"`
	FeeRecipient    string                `json:"feeRecipient"`
	StakingRewardBps *math.HexOrDecimal256 `json:"stakingRewardBps"`
	Version         uint64                `json:"version"`
	CodeHandle      string                `json:"codeHandle"`
}

func (t *Token) getInfo() (*Info, error) {
	name, err := t.ledger.Name()
	if err != nil {
		return nil, err
	}
	symbol, err := t.ledger.Symbol()
	if err != nil {
		return nil, err
	}
	supply, err := t.ledger.TotalSupply()
	if err != nil {
		return nil, err
	}
	totalStaked, err := t.ledger.TotalStaked()
	if err != nil {
		return nil, err
	}
	paused, err := t.ledger.Paused()
	if err != nil {
		return nil, err
	}
	feeRate, err := t.ledger.TransferFeeRate()
	if err != nil {
		return nil, err
	}
	feeRecipient, err := t.ledger.FeeRecipient()
	if err != nil {
		return nil, err
	}
	rewardRate, err := t.ledger.StakingRewardRate()
	if err != nil {
		return nil, err
	}
	version, err := t.ledger.Version()
	if err != nil {
		return nil, err
	}
	codeHandle, err := t.ledger.CodeHandle()
	if err != nil {
		return nil, err
	}
	return &Info{
		Name:             name,
		Symbol:           symbol,
		Decimals:         t.ledger.Decimals(),
		TotalSupply:      (*math.HexOrDecimal256)(supply),
		MaxSupply:        (*math.HexOrDecimal256)(t.ledger.MaxSupply()),
		TotalStaked:      (*math.HexOrDecimal256)(totalStaked),
		Paused:           paused,
		TransferFeeBps:   (*math.HexOrDecimal256)(feeRate),
		FeeRecipient:     feeRecipient.String(),
		StakingRewardBps: (*math.HexOrDecimal256)(rewardRate),
		Version:          version,
		CodeHandle:       codeHandle.String(),
	}, nil
}

func (t *Token) handleGetInfo(w http.ResponseWriter, _ *http.Request) error {
	info, err := t.getInfo()
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, info)
}

func (t *Token) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(t.handleGetInfo))
}
