// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package runtime drives the ledger as a sequential state machine. Every
// call is one atomic transition: it either commits all of its state changes
// and events, or reverts entirely. The substrate hosting the runtime is
// responsible for serializing calls and supplying caller identity and time.
package runtime

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/aurumchain/aurum/ledger"
	"github.com/aurumchain/aurum/ledger/reverts"
	"github.com/aurumchain/aurum/metrics"
)

var logger = logrus.WithField("pkg", "runtime")

var metricCallCount = metrics.LazyLoadCounterVec("call_count", []string{"op", "status"})

// Runtime applies calls against a ledger through the active behavior table.
type Runtime struct {
	ledger *ledger.Ledger
	code   *Code
	sink   ledger.EventSink
}

// New creates a runtime dispatching through the given code.
// When the state record already carries a code handle it must match; a
// fresh record (zero handle) accepts any code.
func New(l *ledger.Ledger, code *Code, sink ledger.EventSink) (*Runtime, error) {
	stored, err := l.CodeHandle()
	if err != nil {
		return nil, err
	}
	if !stored.IsZero() && stored != code.Handle() {
		return nil, errors.Errorf("code handle mismatch: state has %v, code %q has %v",
			stored, code.Name(), code.Handle())
	}
	return &Runtime{
		ledger: l,
		code:   code,
		sink:   sink,
	}, nil
}

// Ledger returns the bound ledger, for the read-only query surface.
func (rt *Runtime) Ledger() *ledger.Ledger {
	return rt.ledger
}

// ActiveCode returns the currently dispatched code.
func (rt *Runtime) ActiveCode() *Code {
	return rt.code
}

// Transact applies one command atomically. On failure all state changes
// and buffered events of the call are discarded and the error surfaces
// unchanged to the caller; the runtime never retries.
func (rt *Runtime) Transact(op string, env ledger.Env, fn func(*ledger.Ledger) error) error {
	if !rt.code.supports(op) {
		return errors.Errorf("operation %q not supported by code %q", op, rt.code.Name())
	}

	checkpoint := rt.ledger.State().NewCheckpoint()
	if err := fn(rt.ledger); err != nil {
		rt.ledger.State().RevertTo(checkpoint)
		rt.ledger.DropEvents()
		metricCallCount().AddWithLabel(1, map[string]string{"op": op, "status": "reverted"})
		if reverts.IsRevert(err) {
			logger.WithFields(logrus.Fields{"op": op, "caller": env.Caller}).
				WithError(err).Debug("call reverted")
		} else {
			logger.WithFields(logrus.Fields{"op": op, "caller": env.Caller}).
				WithError(err).Warn("call failed")
		}
		return err
	}

	events := rt.ledger.TakeEvents()
	if rt.sink != nil && len(events) > 0 {
		// delivery is best effort, ledger correctness never depends on it
		if err := rt.sink.WriteEvents(events); err != nil {
			logger.WithError(err).Warn("event sink write failed")
		}
	}
	metricCallCount().AddWithLabel(1, map[string]string{"op": op, "status": "committed"})
	return nil
}

// Upgrade swaps the dispatched behavior table. The new code's handle must
// already be authorized in state via the authorizeUpgrade command.
func (rt *Runtime) Upgrade(newCode *Code) error {
	stored, err := rt.ledger.CodeHandle()
	if err != nil {
		return err
	}
	if stored != newCode.Handle() {
		return errors.Errorf("code %q is not authorized", newCode.Name())
	}
	rt.code = newCode
	logger.WithField("code", newCode.Name()).Info("behavior table swapped")
	return nil
}

// Commit persists all committed call transitions to the backing store.
func (rt *Runtime) Commit() error {
	return rt.ledger.State().Commit()
}
