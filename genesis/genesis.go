// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/aurumchain/aurum/aurum"
	"github.com/aurumchain/aurum/ledger"
	"github.com/aurumchain/aurum/runtime"
	"github.com/aurumchain/aurum/state"
)

// DevAccount is the admin of the builtin dev network.
var DevAccount = aurum.BytesToAddress([]byte("aurum-dev-admin"))

// Builder helper to build genesis ledger state.
type Builder struct {
	launchTime uint64
	stateProcs []func(l *ledger.Ledger, env ledger.Env) error
}

// LaunchTime sets the launch time of the network.
func (b *Builder) LaunchTime(t uint64) *Builder {
	b.launchTime = t
	return b
}

// State appends a proc to initialize ledger state.
func (b *Builder) State(proc func(l *ledger.Ledger, env ledger.Env) error) *Builder {
	b.stateProcs = append(b.stateProcs, proc)
	return b
}

// Build applies the state procs to a fresh ledger and returns it.
// Events emitted during genesis are discarded.
func (b *Builder) Build(st *state.State) (*ledger.Ledger, error) {
	l := ledger.New(st)
	env := ledger.Env{Now: b.launchTime}
	for _, proc := range b.stateProcs {
		if err := proc(l, env); err != nil {
			return nil, errors.WithMessage(err, "build genesis state")
		}
	}
	l.DropEvents()
	return l, nil
}

// Genesis to build the initial ledger state of a network.
type Genesis struct {
	builder *Builder
	id      string
}

// ID returns the network identifier.
func (g *Genesis) ID() string { return g.id }

// Build builds the genesis ledger state.
func (g *Genesis) Build(st *state.State) (*ledger.Ledger, error) {
	return g.builder.Build(st)
}

// NewDevnet creates the developer network genesis.
func NewDevnet() *Genesis {
	launchTime := uint64(1735689600) // '2025-01-01T00:00:00.000Z'

	initialSupply := new(big.Int).Mul(big.NewInt(100_000_000), big.NewInt(1e18))

	builder := new(Builder).
		LaunchTime(launchTime).
		State(func(l *ledger.Ledger, env ledger.Env) error {
			env.Caller = DevAccount
			if err := l.InitializeStage1(env, ledger.Stage1Config{
				Name:           "Aurum Dev",
				Symbol:         "AUR",
				Admin:          DevAccount,
				InitialSupply:  initialSupply,
				InitCodeHandle: runtime.CodeV2.Handle(),
			}); err != nil {
				return err
			}
			return l.InitializeStage2(env, 10)
		})

	return &Genesis{builder, "devnet"}
}
