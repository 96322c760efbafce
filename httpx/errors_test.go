package httpx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/internal/wasip2/http/types"
)

func TestWrapfChainsMessageAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := wrapf(cause, "doing %s", "thing")
	assert.Equal(t, "doing thing: boom", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestHostErrorCodeFoundAtRootOfChain(t *testing.T) {
	code := types.ErrorCodeInternalError(cm.Some("disk full"))
	root := hostError(code)
	wrapped := wrapf(root, "sending request")

	got, ok := wrapped.HostErrorCode()
	assert.True(t, ok)
	assert.Equal(t, code.String(), got.String())
}

func TestHostErrorCodeAbsentWhenChainHasNone(t *testing.T) {
	err := wrapf(errors.New("plain"), "context")
	_, ok := err.HostErrorCode()
	assert.False(t, ok)
}

func TestInvalidContentLengthIsErrInvalidContentLength(t *testing.T) {
	err := invalidContentLength("nope")
	assert.ErrorIs(t, err, ErrInvalidContentLength)
}
