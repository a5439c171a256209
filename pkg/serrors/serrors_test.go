package serrors_test

import (
	"ayurdeploy/pkg/serrors"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrConfig,
		serrors.ErrNotFound,
		serrors.ErrUnavailable,
		serrors.ErrUnauthorized,
		serrors.ErrCompilation,
		serrors.ErrCompilerInstall,
		serrors.ErrGasEstimation,
		serrors.ErrReverted,
		serrors.ErrTimeout,
		serrors.ErrConflict,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.NotEqual(t, serrors.ErrCompilation, serrors.ErrCompilerInstall)
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "solidity file not found at %s", "Token.sol")
	require.Equal(t, "solidity file not found at Token.sol", e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrUnavailable, base, "could not connect to RPC")
	require.Equal(t, "could not connect to RPC: connection refused", e2.Error(), "Wrap() Error() mismatch")

	e3 := serrors.KindOnly(serrors.ErrGasEstimation)
	require.Equal(t, "GAS_ESTIMATION", e3.Error(), "KindOnly Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrCompilation, base, "compiling")

	require.ErrorIs(t, e, serrors.ErrCompilation)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrConfig, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrReverted, base, "waiting for receipt")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrReverted, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "service role key rejected")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "service role key rejected", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("deploying: %w", serrors.With(serrors.ErrTimeout, "receipt not found"))
	require.Equal(t, serrors.ErrTimeout, serrors.KindOf(wrapped))
}
