package tolerance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hpcgo/forkreduce/tolerance"
)

func TestClose(t *testing.T) {
	assert.True(t, tolerance.Close(285.0, 285.0, tolerance.Default))
	assert.True(t, tolerance.Close(285.0, 285.00005, tolerance.Default))
	assert.False(t, tolerance.Close(285.0, 285.2, tolerance.Default))
	assert.True(t, tolerance.Close(-1.0, -1.00001, tolerance.Default))
	assert.False(t, tolerance.Close(1.0, -1.0, tolerance.Default))
}
