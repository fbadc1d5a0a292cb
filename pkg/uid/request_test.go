package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestID(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	assert.NotEqual(t, a, b)
	assert.True(t, IsRequestID(a))
	assert.False(t, IsRequestID("not-an-id"))
	assert.False(t, IsRequestID(""))
}
