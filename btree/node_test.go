package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafWith(t int, ids ...int) *node {
	n := newNode(t, true)
	for _, id := range ids {
		n.slots = append(n.slots, Record{ID: id})
	}
	return n
}

func TestNode_SlotIndex(t *testing.T) {
	n := leafWith(2, 10, 20, 30)
	assert.Equal(t, 0, n.slotIndex(5))
	assert.Equal(t, 0, n.slotIndex(10))
	assert.Equal(t, 1, n.slotIndex(15))
	assert.Equal(t, 3, n.slotIndex(99))
}

func TestNode_SplitChild_Leaf(t *testing.T) {
	parent := newNode(2, false)
	child := leafWith(2, 10, 20, 30)
	parent.children = append(parent.children, child)

	parent.splitChild(0)

	require.Len(t, parent.slots, 1)
	assert.Equal(t, 20, parent.slots[0].ID)
	require.Len(t, parent.children, 2)
	assert.Equal(t, []int{10}, ids(parent.children[0].slots))
	assert.Equal(t, []int{30}, ids(parent.children[1].slots))
}

func TestNode_SplitChild_Internal(t *testing.T) {
	parent := newNode(2, false)
	y := newNode(2, false)
	y.slots = []Record{{ID: 10}, {ID: 20}, {ID: 30}}
	y.children = []*node{leafWith(2, 1), leafWith(2, 15), leafWith(2, 25), leafWith(2, 35)}
	parent.children = append(parent.children, y)

	parent.splitChild(0)

	require.Len(t, parent.slots, 1)
	assert.Equal(t, 20, parent.slots[0].ID)

	left, right := parent.children[0], parent.children[1]
	assert.Equal(t, []int{10}, ids(left.slots))
	assert.Equal(t, []int{30}, ids(right.slots))
	require.Len(t, left.children, 2)
	require.Len(t, right.children, 2)
	assert.Equal(t, []int{1}, ids(left.children[0].slots))
	assert.Equal(t, []int{35}, ids(right.children[1].slots))
}

func TestNode_BorrowFromLeft(t *testing.T) {
	left := leafWith(2, 10, 15, 18)
	child := leafWith(2, 30)
	parent := newNode(2, false)
	parent.slots = []Record{{ID: 20}}
	parent.children = []*node{left, child}

	parent.borrowFromLeft(1)

	assert.Equal(t, 18, parent.slots[0].ID)
	assert.Equal(t, []int{10, 15}, ids(left.slots))
	assert.Equal(t, []int{20, 30}, ids(child.slots))
}

func TestNode_BorrowFromRight(t *testing.T) {
	child := leafWith(2, 10)
	right := leafWith(2, 25, 28, 30)
	parent := newNode(2, false)
	parent.slots = []Record{{ID: 20}}
	parent.children = []*node{child, right}

	parent.borrowFromRight(0)

	assert.Equal(t, 25, parent.slots[0].ID)
	assert.Equal(t, []int{10, 20}, ids(child.slots))
	assert.Equal(t, []int{28, 30}, ids(right.slots))
}

func TestNode_MergeChildren(t *testing.T) {
	left := leafWith(2, 10)
	mid := leafWith(2, 30)
	right := leafWith(2, 50)
	parent := newNode(2, false)
	parent.slots = []Record{{ID: 20}, {ID: 40}}
	parent.children = []*node{left, mid, right}

	parent.mergeChildren(0)

	assert.Equal(t, []int{40}, ids(parent.slots))
	require.Len(t, parent.children, 2)
	assert.Equal(t, []int{10, 20, 30}, ids(parent.children[0].slots))
	assert.Same(t, right, parent.children[1])
}

func TestNode_RightmostLeftmost(t *testing.T) {
	leaf := leafWith(2, 10, 20, 30)
	root := newNode(2, false)
	root.slots = []Record{{ID: 100}}
	root.children = []*node{leaf, leafWith(2, 200, 300)}

	assert.Equal(t, 300, root.rightmost().ID)
	assert.Equal(t, 10, root.leftmost().ID)
}
