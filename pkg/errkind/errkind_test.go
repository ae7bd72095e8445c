package errkind_test

import (
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"penplot/pkg/errkind"
)

func TestWrapKeepsKindAndCause(t *testing.T) {
	_, openErr := os.Open("/does/not/exist")
	require.Error(t, openErr)

	err := errkind.Wrap(errkind.Input, openErr, "unable to open image")
	require.Error(t, err)
	assert.Equal(t, errkind.Input, errkind.Of(err))
	assert.Contains(t, err.Error(), "unable to open image")
	assert.True(t, os.IsNotExist(errors.Cause(err)))

	var pathErr *os.PathError
	assert.True(t, errors.As(err, &pathErr))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errkind.Wrap(errkind.Output, nil, "ignored"))
	assert.NoError(t, errkind.Wrapf(errkind.Output, nil, "ignored %d", 1))
}

func TestOfUntagged(t *testing.T) {
	assert.Equal(t, errkind.Unknown, errkind.Of(errors.New("plain")))
	assert.Equal(t, errkind.Unknown, errkind.Of(nil))
}

func TestOfOutermostTag(t *testing.T) {
	inner := errkind.New(errkind.Parse, "bad path data")
	outer := errors.Wrap(inner, "svg2gcode")
	assert.Equal(t, errkind.Parse, errkind.Of(outer))
	assert.Equal(t, "tracing error", errkind.Trace.String())
}
