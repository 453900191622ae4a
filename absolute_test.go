package flexkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutAbsoluteChildBothInsetsDefiniteStretches(t *testing.T) {
	req := require.New(t)

	child := NewNode()
	child.SetTop(Point(10))
	child.SetBottom(Point(10))
	child.SetLeft(Point(20))
	child.SetRight(Point(20))

	layoutAbsoluteChild(child, 0, 0, 300, 200, JustifyFlexStart, AlignFlexStart)

	req.InDelta(20, child.GetComputedLeft(), 0.001)
	req.InDelta(10, child.GetComputedTop(), 0.001)
	req.InDelta(260, child.GetComputedWidth(), 0.001)
	req.InDelta(180, child.GetComputedHeight(), 0.001)
}

func TestLayoutAbsoluteChildOneInsetAnchorsFromOwnSize(t *testing.T) {
	req := require.New(t)

	child := NewNode()
	child.SetTop(Point(10))
	child.SetRight(Point(10))
	child.SetWidth(Point(50))
	child.SetHeight(Point(30))

	layoutAbsoluteChild(child, 0, 0, 300, 200, JustifyFlexStart, AlignFlexStart)

	req.InDelta(240, child.GetComputedLeft(), 0.001)
	req.InDelta(10, child.GetComputedTop(), 0.001)
	req.InDelta(50, child.GetComputedWidth(), 0.001)
	req.InDelta(30, child.GetComputedHeight(), 0.001)
}

func TestLayoutAbsoluteChildNeitherInsetUsesStaticPosition(t *testing.T) {
	req := require.New(t)

	child := NewNode()
	child.SetWidth(Point(40))
	child.SetHeight(Point(40))
	child.SetMarginLeft(Point(5))
	child.SetMarginTop(Point(5))

	layoutAbsoluteChild(child, 100, 50, 300, 200, JustifyFlexStart, AlignFlexStart)

	req.InDelta(105, child.GetComputedLeft(), 0.001)
	req.InDelta(55, child.GetComputedTop(), 0.001)
}

// TestLayoutAbsoluteChildStaticPositionFollowsJustifySelfAndAlignSelf checks
// that leaving both insets indefinite on an axis no longer always flushes
// that axis to the containing block's start: justify-self drives the main
// (here horizontal) axis and align-self drives the cross (vertical) axis,
// per spec.md §4.11's C11.
func TestLayoutAbsoluteChildStaticPositionFollowsJustifySelfAndAlignSelf(t *testing.T) {
	req := require.New(t)

	child := NewNode()
	child.SetWidth(Point(40))
	child.SetHeight(Point(20))
	child.SetJustifySelf(JustifySelf(AlignCenter))
	child.SetAlignSelf(AlignSelf(AlignFlexEnd))

	layoutAbsoluteChild(child, 0, 0, 300, 100, JustifyFlexStart, AlignFlexStart)

	req.InDelta(130, child.GetComputedLeft(), 0.001, "centered: (300-40)/2")
	req.InDelta(80, child.GetComputedTop(), 0.001, "flush end: 100-20")
}

// TestLayoutAbsoluteChildStaticPositionFallsBackToContainerJustifyContent
// checks that when justify-self is left at auto, the container's own
// justify-content stands in for it (this engine has no justify-items).
func TestLayoutAbsoluteChildStaticPositionFallsBackToContainerJustifyContent(t *testing.T) {
	req := require.New(t)

	child := NewNode()
	child.SetWidth(Point(40))
	child.SetHeight(Point(20))

	layoutAbsoluteChild(child, 0, 0, 300, 100, JustifyFlexEnd, AlignFlexStart)

	req.InDelta(260, child.GetComputedLeft(), 0.001, "300-40, per the container's justify-content:flex-end")
}

func TestLayoutAbsoluteChildAutoMarginsCenterInAvailableSpace(t *testing.T) {
	req := require.New(t)

	child := NewNode()
	child.SetTop(Point(0))
	child.SetBottom(Point(0))
	child.SetLeft(Point(0))
	child.SetRight(Point(0))
	child.SetWidth(Point(100))
	child.SetHeight(Point(40))
	child.SetMarginLeft(Auto)
	child.SetMarginRight(Auto)

	layoutAbsoluteChild(child, 0, 0, 300, 100, JustifyFlexStart, AlignFlexStart)

	req.InDelta(100, child.GetComputedLeft(), 0.001, "remaining 200px splits evenly across auto margins")
	req.InDelta(100, child.GetComputedWidth(), 0.001)
}
