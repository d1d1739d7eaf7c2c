package errx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogPassesThroughError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, err, Log(err))
	assert.Nil(t, Log(nil))
}

func TestLog1PassesThroughValue(t *testing.T) {
	v := Log1(42, nil)
	assert.Equal(t, 42, v)

	v = Log1(0, errors.New("boom"))
	assert.Equal(t, 0, v)
}

func TestMustPanicsOnError(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errors.New("boom")) })
}

func TestMust1ReturnsValueOrPanics(t *testing.T) {
	assert.Equal(t, "ok", Must1("ok", nil))
	assert.Panics(t, func() { Must1("", errors.New("boom")) })
}
