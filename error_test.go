package probe_test

import (
	"errors"
	"testing"

	// Packages
	probe "github.com/mutablelogic/go-llm-probe"
	assert "github.com/stretchr/testify/assert"
)

func Test_error_001(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("unsupported surface", probe.ErrUnsupportedSurface.Error())
	assert.Equal("error code 99", probe.Err(99).Error())

	err := probe.ErrNotFound.Withf("model %q", "a/b")
	assert.Equal(`not found: model "a/b"`, err.Error())
	assert.ErrorIs(err, probe.ErrNotFound)
	assert.False(errors.Is(err, probe.ErrBadParameter))

	var code probe.Err
	if assert.True(errors.As(probe.ErrBadParameter.With("x"), &code)) {
		assert.Equal(probe.ErrBadParameter, code)
	}
}
