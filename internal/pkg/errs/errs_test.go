//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"petstay/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("operation rejected")
	cause := errs.New("usage cap reached")

	t.Run("mark and cause are both errors.Is targets", func(t *testing.T) {
		marked := errs.Mark(cause, sentinel)

		require.Error(t, marked)
		assert.True(t, errors.Is(marked, sentinel))
		assert.True(t, errors.Is(marked, cause))
	})

	t.Run("marking keeps a wrapped chain intact", func(t *testing.T) {
		wrapped := errs.Wrap(cause, "redeeming coupon")
		marked := errs.Mark(wrapped, sentinel)

		assert.True(t, errors.Is(marked, sentinel))
		assert.True(t, errors.Is(marked, cause))
	})

	t.Run("marking nil yields the mark itself", func(t *testing.T) {
		marked := errs.Mark(nil, sentinel)
		assert.Equal(t, sentinel, marked)
	})

	t.Run("unrelated sentinel does not match", func(t *testing.T) {
		marked := errs.Mark(cause, sentinel)
		assert.False(t, errors.Is(marked, errs.New("something else")))
	})

	t.Run("message leads with the mark", func(t *testing.T) {
		marked := errs.Mark(cause, sentinel)
		assert.Equal(t, fmt.Sprintf("%s: %s", sentinel, cause), marked.Error())
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("wrapped cause stays matchable", func(t *testing.T) {
		cause := errs.New("row not found")
		wrapped := errs.Wrap(cause, "loading reservation")

		assert.True(t, errors.Is(wrapped, cause))
		assert.Contains(t, wrapped.Error(), "loading reservation")
	})
}
