// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package accounts

import (
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/aurumchain/aurum/api/utils"
	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/ledger"
)

type Accounts struct {
	ledger *ledger.Ledger
}

func New(l *ledger.Ledger) *Accounts {
	return &Accounts{l}
}

func (a *Accounts) getAccount(addr aurum.Address) (*Account, error) {
	balance, err := a.ledger.BalanceOf(addr)
	if err != nil {
		return nil, err
	}
	staked, err := a.ledger.StakingBalance(addr)
	if err != nil {
		return nil, err
	}
	start, err := a.ledger.StakeStartTime(addr)
	if err != nil {
		return nil, err
	}
	blacklisted, err := a.ledger.Blacklisted(addr)
	if err != nil {
		return nil, err
	}
	return &Account{
		Balance:        (*math.HexOrDecimal256)(balance),
		Staked:         (*math.HexOrDecimal256)(staked),
		StakeStartTime: start,
		Blacklisted:    blacklisted,
	}, nil
}

func (a *Accounts) handleGetAccount(w http.ResponseWriter, req *http.Request) error {
	addr, err := aurum.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	acc, err := a.getAccount(*addr)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, acc)
}

func (a *Accounts) handleGetReward(w http.ResponseWriter, req *http.Request) error {
	addr, err := aurum.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	timeParam := req.URL.Query().Get("time")
	if timeParam == "" {
		return utils.BadRequest(errors.New("time: missing"))
	}
	now, err := strconv.ParseUint(timeParam, 10, 64)
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "time"))
	}
	reward, err := a.ledger.CalculateReward(*addr, now)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, &Reward{
		Reward: (*math.HexOrDecimal256)(reward),
		Time:   now,
	})
}

func (a *Accounts) handleGetAllowance(w http.ResponseWriter, req *http.Request) error {
	owner, err := aurum.ParseAddress(mux.Vars(req)["address"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "address"))
	}
	spender, err := aurum.ParseAddress(mux.Vars(req)["spender"])
	if err != nil {
		return utils.BadRequest(errors.WithMessage(err, "spender"))
	}
	allowance, err := a.ledger.Allowance(*owner, *spender)
	if err != nil {
		return err
	}
	return utils.WriteJSON(w, utils.M{
		"allowance": (*math.HexOrDecimal256)(allowance),
	})
}

func (a *Accounts) Mount(root *mux.Router, pathPrefix string) {
	sub := root.PathPrefix(pathPrefix).Subrouter()

	sub.Path("/{address}").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(a.handleGetAccount))
	sub.Path("/{address}/reward").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(a.handleGetReward))
	sub.Path("/{address}/allowance/{spender}").Methods(http.MethodGet).HandlerFunc(utils.WrapHandlerFunc(a.handleGetAllowance))
}
