package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	t.Run("returns the code of a coded error", func(t *testing.T) {
		err := New(CodeNotOwner, "caller does not own the item")
		assert.Equal(t, CodeNotOwner, CodeOf(err))
	})

	t.Run("sees through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("challenge: %w", New(CodePollNotEnded, "poll still open"))
		assert.Equal(t, CodePollNotEnded, CodeOf(err))
	})

	t.Run("defaults to internal for plain errors", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil error wraps to nil", func(t *testing.T) {
		require.NoError(t, Wrap(nil, CodeTransferFailed, "ledger refused"))
	})

	t.Run("preserves the cause chain", func(t *testing.T) {
		cause := errors.New("insufficient allowance")
		err := Wrap(cause, CodeTransferFailed, "stake transfer rejected")
		assert.True(t, HasCode(err, CodeTransferFailed))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "insufficient allowance")
	})
}

func TestHasCode(t *testing.T) {
	err := New(CodeAlreadyClaimed, "voter already claimed")
	assert.True(t, HasCode(err, CodeAlreadyClaimed))
	assert.False(t, HasCode(err, CodeAlreadyClosed))
	assert.False(t, HasCode(errors.New("plain"), CodeAlreadyClaimed))
}
