package flexkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildLine(t *testing.T, root *Node, containerMain float64) *flexLine {
	t.Helper()
	ax := newAxisView(FlexDirectionRow, DirectionLTR)
	items := collectFlexItems(root, ax, containerMain, true, 100, true)
	lines := partitionLines(items, FlexNoWrap, containerMain, true, 0)
	require.Len(t, lines, 1)
	return lines[0]
}

func TestResolveFlexibleLengthsGrowsProportionally(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	a := NewNode()
	a.SetWidth(Point(100))
	a.SetFlexGrow(1)
	b := NewNode()
	b.SetWidth(Point(100))
	b.SetFlexGrow(2)
	req.NoError(root.AppendChild(a))
	req.NoError(root.AppendChild(b))

	line := buildLine(t, root, 300)
	ax := newAxisView(FlexDirectionRow, DirectionLTR)
	resolveFlexibleLengths(line, ax, 300, true, 0, 300, true, 100, true)

	req.InDelta(133.333, line.items[0].resolvedMain, 0.01)
	req.InDelta(166.667, line.items[1].resolvedMain, 0.01)
	req.InDelta(300, line.items[0].resolvedMain+line.items[1].resolvedMain, 0.001, "conservation on the main axis")
}

func TestResolveFlexibleLengthsZeroGrowFactorFreezesImmediately(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	a := NewNode()
	a.SetWidth(Point(100))
	b := NewNode()
	b.SetWidth(Point(100))
	b.SetFlexGrow(1)
	req.NoError(root.AppendChild(a))
	req.NoError(root.AppendChild(b))

	line := buildLine(t, root, 300)
	ax := newAxisView(FlexDirectionRow, DirectionLTR)
	resolveFlexibleLengths(line, ax, 300, true, 0, 300, true, 100, true)

	req.InDelta(100, line.items[0].resolvedMain, 0.001)
	req.InDelta(200, line.items[1].resolvedMain, 0.001)
}

func TestResolveFlexibleLengthsShrinksAndClampsToMinWidth(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	a := NewNode()
	a.SetWidth(Point(100))
	a.SetMinWidth(Point(80))
	a.SetFlexShrink(1)
	b := NewNode()
	b.SetWidth(Point(100))
	b.SetFlexShrink(1)
	req.NoError(root.AppendChild(a))
	req.NoError(root.AppendChild(b))

	line := buildLine(t, root, 120)
	ax := newAxisView(FlexDirectionRow, DirectionLTR)
	resolveFlexibleLengths(line, ax, 120, true, 0, 120, true, 100, true)

	req.InDelta(80, line.items[0].resolvedMain, 0.001, "clamped at its min-width and frozen there")
	req.InDelta(40, line.items[1].resolvedMain, 0.001, "only the remaining deficit redistributes once a freezes")
	req.GreaterOrEqual(line.items[0].resolvedMain, 0.0)
	req.GreaterOrEqual(line.items[1].resolvedMain, 0.0)
}

func TestResolveFlexibleLengthsIndefiniteMainKeepsHypothetical(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	a := NewNode()
	a.SetWidth(Point(100))
	a.SetFlexGrow(1)
	req.NoError(root.AppendChild(a))

	ax := newAxisView(FlexDirectionRow, DirectionLTR)
	items := collectFlexItems(root, ax, 100, false, 100, true)
	lines := partitionLines(items, FlexNoWrap, 100, false, 0)
	line := lines[0]

	resolveFlexibleLengths(line, ax, 100, false, 0, 100, false, 100, true)
	req.Equal(line.items[0].hypotheticalMain, line.items[0].resolvedMain)
}
