package flexkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollectFlexItemsOrdersByOrderThenDocumentPosition(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	a := NewNode()
	a.SetOrder(2)
	b := NewNode()
	b.SetOrder(1)
	c := NewNode()
	c.SetOrder(1)
	req.NoError(root.AppendChild(a))
	req.NoError(root.AppendChild(b))
	req.NoError(root.AppendChild(c))

	ax := newAxisView(FlexDirectionRow, DirectionLTR)
	items := collectFlexItems(root, ax, 300, true, 100, true)

	req.Len(items, 3)
	req.Equal(b, items[0].node)
	req.Equal(c, items[1].node)
	req.Equal(a, items[2].node)
}

func TestCollectFlexItemsSkipsDisplayNoneAndAbsolute(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	normal := NewNode()
	hidden := NewNode()
	hidden.SetDisplay(DisplayNone)
	abs := NewNode()
	abs.SetPositionType(PositionAbsolute)
	req.NoError(root.AppendChild(normal))
	req.NoError(root.AppendChild(hidden))
	req.NoError(root.AppendChild(abs))

	ax := newAxisView(FlexDirectionRow, DirectionLTR)
	items := collectFlexItems(root, ax, 300, true, 100, true)

	req.Len(items, 1)
	req.Equal(normal, items[0].node)
}

func TestPartitionLinesNoWrapKeepsOneLine(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	for i := 0; i < 5; i++ {
		c := NewNode()
		c.SetWidth(Point(100))
		req.NoError(root.AppendChild(c))
	}
	ax := newAxisView(FlexDirectionRow, DirectionLTR)
	items := collectFlexItems(root, ax, 100, true, 100, true)
	lines := partitionLines(items, FlexNoWrap, 100, true, 0)

	req.Len(lines, 1)
	req.Len(lines[0].items, 5)
}

func TestPartitionLinesWrapsWhenItemsOverflow(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	for i := 0; i < 3; i++ {
		c := NewNode()
		c.SetWidth(Point(80))
		req.NoError(root.AppendChild(c))
	}
	ax := newAxisView(FlexDirectionRow, DirectionLTR)
	items := collectFlexItems(root, ax, 200, true, 100, true)
	lines := partitionLines(items, FlexWrapWrap, 200, true, 0)

	req.Len(lines, 2)
	req.Len(lines[0].items, 2)
	req.Len(lines[1].items, 1)
}

func TestPartitionLinesIndefiniteMainNeverWraps(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	for i := 0; i < 3; i++ {
		c := NewNode()
		c.SetWidth(Point(500))
		req.NoError(root.AppendChild(c))
	}
	ax := newAxisView(FlexDirectionRow, DirectionLTR)
	items := collectFlexItems(root, ax, 200, false, 100, true)
	lines := partitionLines(items, FlexWrapWrap, 200, false, 0)

	req.Len(lines, 1)
	req.Len(lines[0].items, 3)
}
