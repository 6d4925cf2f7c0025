package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleCallback() {}

func TestNextId(t *testing.T) {
	first := NextId()
	second := NextId()
	assert.Greater(t, second, first)
}

func TestGetFunctionName(t *testing.T) {
	assert.Contains(t, GetFunctionName(sampleCallback), "sampleCallback")

	var missing func()
	assert.Equal(t, "<nil>", GetFunctionName(missing))
	assert.Equal(t, "<nil>", GetFunctionName(nil))
}

func TestPtr(t *testing.T) {
	v := 5
	p := Ptr(v)
	*p = 6
	assert.Equal(t, 5, v)
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("-30m")
	assert.NoError(t, err)
	assert.Equal(t, "-30m0s", d.String())

	_, err = ParseDuration("soon")
	assert.Error(t, err)
}
