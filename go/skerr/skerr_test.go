package skerr

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Nil_ReturnsNil(t *testing.T) {
	require.NoError(t, Wrap(nil))
	require.NoError(t, Wrapf(nil, "reading %s", "foo"))
}

func TestWrap_RecordsCallSite(t *testing.T) {
	err := Wrap(io.EOF)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "EOF. At skerr/skerr_test.go:"), err.Error())
	assert.True(t, errors.Is(err, io.EOF))
	assert.Equal(t, io.EOF, Unwrap(err))
}

func TestWrap_AlreadyWrapped_KeepsOriginalStack(t *testing.T) {
	inner := Fmt("boom %d", 7)
	outer := Wrap(inner)
	assert.Same(t, inner.(*ErrorWithContext), outer.(*ErrorWithContext))
}

func TestWrapf_AddsContextOutermostFirst(t *testing.T) {
	err := Wrapf(Wrapf(io.ErrUnexpectedEOF, "reading line %d", 3), "loading %q", "exprs.txt")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), `loading "exprs.txt": reading line 3: unexpected EOF. At `), err.Error())
	assert.Equal(t, io.ErrUnexpectedEOF, Unwrap(err))
}

func TestUnwrap_PlainError_ReturnsItself(t *testing.T) {
	assert.Equal(t, io.EOF, Unwrap(io.EOF))
}

func TestCallStack_StartsAtCaller(t *testing.T) {
	st := CallStack(1, 0)
	require.Len(t, st, 1)
	assert.Equal(t, "skerr/skerr_test.go", st[0].File)
}
