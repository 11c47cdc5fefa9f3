package magnet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "CYCLIC_DEPENDENCY", ErrCodeCyclicDependency.String())
	assert.Equal(t, "HEALTHCHECK_FAILED", ErrCodeHealthcheckFailed.String())
	assert.Equal(t, "UNKNOWN(999)", ErrorCode(999).String())
}

func TestError_Format(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: refused")
	err := newError(ErrCodeConnectionFailed, "failed to connect *magnet.pingDB", cause).
		WithDependency("*magnet.pingDB")

	assert.Equal(t,
		`[CONNECTION_FAILED] dependency="*magnet.pingDB": failed to connect *magnet.pingDB: dial tcp: refused`,
		err.Error(),
	)
	assert.ErrorIs(t, err, cause)
}

func TestError_IsMatchesByCode(t *testing.T) {
	t.Parallel()

	a := newError(ErrCodeConstructionFailed, "a", nil)
	b := newError(ErrCodeConstructionFailed, "b", nil)
	other := newError(ErrCodeInvalidBinding, "c", nil)

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, other)
}

func TestError_WrappedPredicates(t *testing.T) {
	t.Parallel()

	inner := newError(ErrCodeCyclicDependency, "cycle", nil).
		WithChain([]string{"*a", "*b", "*a"})
	wrapped := errors.Join(errors.New("resolve failed"), inner)

	assert.True(t, IsCyclicDependency(wrapped))
	assert.False(t, IsConnectionFailed(wrapped))

	var e *Error
	require.ErrorAs(t, wrapped, &e)
	assert.Equal(t, []string{"*a", "*b", "*a"}, e.Chain)
}
