package flexkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkDirtyPropagatesToAncestors(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	child := NewNode()
	grandchild := NewNode()
	req.NoError(root.AppendChild(child))
	req.NoError(child.AppendChild(grandchild))

	root.CalculateLayout(100, 100)
	req.False(root.IsDirty())
	req.False(child.IsDirty())
	req.False(grandchild.IsDirty())

	grandchild.SetWidth(Point(10))
	req.True(grandchild.IsDirty())
	req.True(child.IsDirty())
	req.True(root.IsDirty())
}

func TestBatchSuspendsDirtyUntilOutermostCompletes(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.CalculateLayout(100, 100)
	req.False(root.IsDirty())

	root.Batch(func(n *Node) {
		n.SetWidth(Point(10))
		req.False(n.IsDirty(), "dirty propagation is suspended until the outermost Batch completes")
		n.SetHeight(Point(10))
	})
	req.True(root.IsDirty())
}

func TestSetterNoOpOnUnchangedValueDoesNotDirty(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(50))
	root.CalculateLayout(100, 100)
	req.False(root.IsDirty())

	root.SetWidth(Point(50))
	req.False(root.IsDirty(), "setting the same value must not mark the node dirty")
}

func TestAppendChildRejectsCycles(t *testing.T) {
	req := require.New(t)

	a := NewNode()
	b := NewNode()
	req.NoError(a.AppendChild(b))

	err := b.AppendChild(a)
	req.Error(err)

	err = a.AppendChild(a)
	req.Error(err)
}
