package flexkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenarioRowWithGrow covers a basic row where two items share the
// leftover main-axis space by their flex-grow factor: available = 300,
// bases sum to 200, remaining 100 splits 1:2.
func TestScenarioRowWithGrow(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(300))
	root.SetHeight(Point(200))
	root.SetJustifyContent(JustifyFlexStart)
	root.SetAlignItems(AlignStretch)

	a := NewNode()
	a.SetWidth(Point(100))
	a.SetFlexGrow(1)
	req.NoError(root.AppendChild(a))

	b := NewNode()
	b.SetWidth(Point(100))
	b.SetFlexGrow(2)
	req.NoError(root.AppendChild(b))

	root.CalculateLayout(300, 200)

	req.InDelta(0, a.GetComputedLeft(), 0.001)
	req.InDelta(0, a.GetComputedTop(), 0.001)
	req.InDelta(133.333, a.GetComputedWidth(), 0.01)
	req.InDelta(200, a.GetComputedHeight(), 0.001)

	req.InDelta(133.333, b.GetComputedLeft(), 0.01)
	req.InDelta(0, b.GetComputedTop(), 0.001)
	req.InDelta(166.667, b.GetComputedWidth(), 0.01)
	req.InDelta(200, b.GetComputedHeight(), 0.001)
}

// TestScenarioSpaceBetweenWithPadding checks that justify-content:
// space-between spaces three fixed-size items across the content box, and
// that the content box origin is offset by the container's own padding.
func TestScenarioSpaceBetweenWithPadding(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(300))
	root.SetHeight(Point(200))
	root.SetPadding(Point(10))
	root.SetJustifyContent(JustifySpaceBetween)

	var items []*Node
	for i := 0; i < 3; i++ {
		c := NewNode()
		c.SetWidth(Point(40))
		c.SetHeight(Point(40))
		req.NoError(root.AppendChild(c))
		items = append(items, c)
	}

	root.CalculateLayout(300, 200)

	expectedLeft := []float64{10, 130, 250}
	for i, c := range items {
		req.InDelta(expectedLeft[i], c.GetComputedLeft(), 0.01, "item %d", i)
		req.InDelta(10, c.GetComputedTop(), 0.01, "item %d", i)
	}
}

// TestScenarioWrapToThreeLines checks wrapping with align-content:
// space-between distributing the resulting lines down the cross axis.
func TestScenarioWrapToThreeLines(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(200))
	root.SetHeight(Point(150))
	root.SetFlexWrap(FlexWrapWrap)
	root.SetAlignContent(JustifySpaceBetween)

	var items []*Node
	for i := 0; i < 6; i++ {
		c := NewNode()
		c.SetWidth(Point(80))
		c.SetHeight(Point(30))
		req.NoError(root.AppendChild(c))
		items = append(items, c)
	}

	root.CalculateLayout(200, 150)

	expectedTop := []float64{0, 0, 60, 60, 120, 120}
	expectedLeft := []float64{0, 80, 0, 80, 0, 80}
	for i, c := range items {
		req.InDelta(expectedTop[i], c.GetComputedTop(), 0.01, "item %d", i)
		req.InDelta(expectedLeft[i], c.GetComputedLeft(), 0.01, "item %d", i)
	}
}

// TestScenarioAbsoluteInPaddedBox checks that an absolutely positioned
// child resolves against its containing flex container's content box.
func TestScenarioAbsoluteInPaddedBox(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(300))
	root.SetHeight(Point(200))
	root.SetPadding(Point(20))

	child := NewNode()
	child.SetPositionType(PositionAbsolute)
	child.SetTop(Point(10))
	child.SetRight(Point(10))
	child.SetWidth(Point(50))
	child.SetHeight(Point(30))
	req.NoError(root.AppendChild(child))

	root.CalculateLayout(300, 200)

	req.InDelta(220, child.GetComputedLeft(), 0.01)
	req.InDelta(30, child.GetComputedTop(), 0.01)
	req.InDelta(50, child.GetComputedWidth(), 0.01)
	req.InDelta(30, child.GetComputedHeight(), 0.01)
}

// TestScenarioBaselineAlignment checks align-items:baseline positions two
// items so their baselines line up, using each item's own measured
// baseline offset rather than their box tops.
func TestScenarioBaselineAlignment(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(300))
	root.SetHeight(Point(60))
	root.SetAlignItems(AlignBaseline)

	small := NewNode()
	small.SetMeasureFunc(func(n *Node, availW, availH float64) (float64, float64) {
		return 40, 12
	})
	small.SetBaselineFunc(func(n *Node, w, h float64) float64 {
		return 9.6
	})
	req.NoError(root.AppendChild(small))

	large := NewNode()
	large.SetMeasureFunc(func(n *Node, availW, availH float64) (float64, float64) {
		return 60, 24
	})
	large.SetBaselineFunc(func(n *Node, w, h float64) float64 {
		return 19.2
	})
	req.NoError(root.AppendChild(large))

	root.CalculateLayout(300, 60)

	req.InDelta(9.6, small.GetComputedTop(), 0.01)
	req.InDelta(0, large.GetComputedTop(), 0.01)
}

// TestScenarioBaselineAlignmentWithUnequalMargins checks that the shared
// baseline edge is computed from marginCrossStart + itemBaseline per item
// (spec.md §4.9), not from the baseline alone: here B has the smaller
// baseline but A's larger margin still makes A the one flush at its
// margin box, with B pushed down to match A's baseline.
func TestScenarioBaselineAlignmentWithUnequalMargins(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(300))
	root.SetHeight(Point(60))
	root.SetAlignItems(AlignBaseline)

	a := NewNode()
	a.SetMarginTop(Point(10))
	a.SetMeasureFunc(func(n *Node, availW, availH float64) (float64, float64) {
		return 40, 30
	})
	a.SetBaselineFunc(func(n *Node, w, h float64) float64 {
		return 20
	})
	req.NoError(root.AppendChild(a))

	b := NewNode()
	b.SetMeasureFunc(func(n *Node, availW, availH float64) (float64, float64) {
		return 40, 20
	})
	b.SetBaselineFunc(func(n *Node, w, h float64) float64 {
		return 15
	})
	req.NoError(root.AppendChild(b))

	root.CalculateLayout(300, 60)

	req.InDelta(10, a.GetComputedTop(), 0.01, "A is the margin-max item, flush at its own margin")
	req.InDelta(15, b.GetComputedTop(), 0.01, "B's baseline lines up with A's: 10+20 == 15+15")
}

// TestScenarioOrderReordering checks that the order property reorders
// visual/layout position without touching child insertion order.
func TestScenarioOrderReordering(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(300))
	root.SetHeight(Point(100))

	a := NewNode()
	a.SetOrder(2)
	a.SetWidth(Point(100))
	a.SetHeight(Point(50))
	req.NoError(root.AppendChild(a))

	b := NewNode()
	b.SetOrder(1)
	b.SetWidth(Point(100))
	b.SetHeight(Point(50))
	req.NoError(root.AppendChild(b))

	c := NewNode()
	c.SetOrder(0)
	c.SetWidth(Point(100))
	c.SetHeight(Point(50))
	req.NoError(root.AppendChild(c))

	root.CalculateLayout(300, 100)

	req.InDelta(200, a.GetComputedLeft(), 0.01)
	req.InDelta(100, b.GetComputedLeft(), 0.01)
	req.InDelta(0, c.GetComputedLeft(), 0.01)

	req.Equal(a, root.GetChild(0))
	req.Equal(b, root.GetChild(1))
	req.Equal(c, root.GetChild(2))
}
