package flexkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNodeDefaults(t *testing.T) {
	req := require.New(t)

	n := NewNode()
	req.Equal(FlexDirectionRow, n.flexDirection)
	req.Equal(FlexNoWrap, n.flexWrap)
	req.Equal(0.0, n.flexGrow)
	req.Equal(1.0, n.flexShrink)
	req.True(n.flexBasis.IsAuto())
	req.True(n.minWidth.IsAuto())
	req.Equal(PositionStatic, n.positionType)
	req.Equal(DisplayFlex, n.display)
	req.True(n.IsDirty())
}

func TestTreeIntegrityParentChildLinks(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	child := NewNode()
	req.NoError(root.AppendChild(child))

	req.Equal(1, root.GetChildCount())
	req.Equal(child, root.GetChild(0))
	req.Equal(root, child.Parent())
	req.Nil(root.Parent())
}

func TestAppendChildReparentsFromPriorParent(t *testing.T) {
	req := require.New(t)

	oldParent := NewNode()
	newParent := NewNode()
	child := NewNode()

	req.NoError(oldParent.AppendChild(child))
	req.Equal(1, oldParent.GetChildCount())

	req.NoError(newParent.AppendChild(child))
	req.Equal(0, oldParent.GetChildCount())
	req.Equal(1, newParent.GetChildCount())
	req.Equal(newParent, child.Parent())
}

func TestRemoveChildDetachesAndReportsPresence(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	child := NewNode()
	req.NoError(root.AppendChild(child))

	req.True(root.RemoveChild(child))
	req.Equal(0, root.GetChildCount())
	req.Nil(child.Parent())
	req.False(root.RemoveChild(child))
}

func TestCalculateLayoutIsIdempotentOnCleanTree(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(100))
	root.SetHeight(Point(100))

	child := NewNode()
	child.SetFlexGrow(1)
	req.NoError(root.AppendChild(child))

	root.CalculateLayout(100, 100)
	l1, t1, w1, h1 := child.GetComputedLeft(), child.GetComputedTop(), child.GetComputedWidth(), child.GetComputedHeight()

	root.CalculateLayout(100, 100)
	req.Equal(l1, child.GetComputedLeft())
	req.Equal(t1, child.GetComputedTop())
	req.Equal(w1, child.GetComputedWidth())
	req.Equal(h1, child.GetComputedHeight())
}

func TestComputedSizesAreNeverNegative(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(10))
	root.SetHeight(Point(10))

	a := NewNode()
	a.SetWidth(Point(50))
	a.SetFlexShrink(1)
	req.NoError(root.AppendChild(a))

	b := NewNode()
	b.SetWidth(Point(50))
	b.SetFlexShrink(1)
	req.NoError(root.AppendChild(b))

	root.CalculateLayout(10, 10)
	req.GreaterOrEqual(a.GetComputedWidth(), 0.0)
	req.GreaterOrEqual(b.GetComputedWidth(), 0.0)
}
