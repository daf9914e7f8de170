package lewis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorSet_AddIsIdempotent(t *testing.T) {
	s := NewFactorSet(3, 2, 3, 3)

	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Add(2), "second Add of 2 should report nothing new")
	assert.True(t, s.Add(5))
	assert.Equal(t, []int64{2, 3, 5}, s.Sorted())
}

func TestFactorSet_String(t *testing.T) {
	assert.Equal(t, "2, 5, 7, 11, 13", NewFactorSet(13, 11, 7, 5, 2).String())
	assert.Equal(t, "", NewFactorSet().String())
}

func TestFactorSet_Has(t *testing.T) {
	s := NewFactorSet(7)

	assert.True(t, s.Has(7))
	assert.False(t, s.Has(14))
}
