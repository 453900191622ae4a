package flexkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAlignContentStretchIsReachableAndStretchesLines(t *testing.T) {
	req := require.New(t)

	root := NewNode()
	root.SetWidth(Point(200))
	root.SetHeight(Point(150))
	root.SetFlexWrap(FlexWrapWrap)

	req.NoError(root.Set("alignContent", "stretch"))
	req.Equal(JustifyStretch, root.alignContent)

	var items []*Node
	for i := 0; i < 4; i++ {
		c := NewNode()
		c.SetWidth(Point(80))
		c.SetHeight(Point(30))
		req.NoError(root.AppendChild(c))
		items = append(items, c)
	}

	root.CalculateLayout(200, 150)

	// two lines of two items each; stretch grows each line's cross size
	// to fill 150, so the second line starts at 75, not 30.
	req.InDelta(0, items[0].GetComputedTop(), 0.01)
	req.InDelta(75, items[2].GetComputedTop(), 0.01)
}

func TestAlignContentStretchRejectsUnknownKeywordViaStyle(t *testing.T) {
	req := require.New(t)

	n := NewNode()
	err := n.Set("alignContent", "sideways")
	req.Error(err)
}
