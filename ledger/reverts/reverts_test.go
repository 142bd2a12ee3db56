// Copyright (c) 2026 The Aurum developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(ErrPaused)
	assert.True(t, ok)
	assert.Equal(t, KindPaused, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)

	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestWrappedRevertKeepsKind(t *testing.T) {
	err := errors.WithMessage(ErrInsufficientBalance, "transfer")

	assert.True(t, IsRevert(err))
	assert.True(t, Is(err, KindInsufficientBalance))
	assert.False(t, Is(err, KindPaused))
}

func TestBlacklistedVariantsShareKind(t *testing.T) {
	assert.True(t, Is(ErrSenderBlacklisted, KindBlacklisted))
	assert.True(t, Is(ErrRecipientBlacklisted, KindBlacklisted))
	assert.NotEqual(t, ErrSenderBlacklisted.Error(), ErrRecipientBlacklisted.Error())
}
