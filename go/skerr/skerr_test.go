package skerr

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sentinel = errors.New("my sentinel error")

func TestFmt_MessageIncludesCallSite(t *testing.T) {
	err := Fmt("oh no, %d is odd", 3)
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`^oh no, 3 is odd\. At skerr_test\.go:\d+$`), err.Error())
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.NoError(t, Wrap(nil))
	assert.NoError(t, Wrapf(nil, "ignored %s", "entirely"))
}

func TestWrap_RetainsSentinel(t *testing.T) {
	err := Wrap(sentinel)
	require.Error(t, err)
	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, sentinel, Unwrap(err))
}

func TestWrapf_ChainedContextIsOrderedOutermostFirst(t *testing.T) {
	inner := Wrapf(sentinel, "reading pixel %d,%d", 4, 5)
	outer := Wrapf(inner, "comparing images")
	require.Error(t, outer)
	assert.Regexp(t,
		regexp.MustCompile(`^comparing images: reading pixel 4,5: my sentinel error\. At (skerr_test\.go:\d+ ?){2}$`),
		outer.Error())
	assert.Equal(t, sentinel, Unwrap(outer))
}

func TestUnwrap_PlainErrorPassesThrough(t *testing.T) {
	err := fmt.Errorf("not one of ours")
	assert.Equal(t, err, Unwrap(err))
}
