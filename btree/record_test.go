package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Less(t *testing.T) {
	a := Record{ID: 1, Name: "a"}
	b := Record{ID: 2, Name: "b"}

	assert.True(t, a.less(b))
	assert.False(t, b.less(a))
	assert.False(t, a.less(a))
}
