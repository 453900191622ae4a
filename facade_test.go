package flexkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleAppliesAtomicallyOnUnknownKey(t *testing.T) {
	req := require.New(t)

	n := NewNode()
	n.SetWidth(Point(100))

	err := n.Style(map[string]any{
		"height":    200.0,
		"not-a-key": 1,
	})
	req.Error(err)

	req.Equal(Point(100), n.width)
	req.Equal(Undefined, n.height)
}

func TestStyleAppliesAtomicallyOnInvalidValue(t *testing.T) {
	req := require.New(t)

	n := NewNode()
	err := n.Style(map[string]any{
		"width":    100.0,
		"flexGrow": -1.0,
	})
	req.Error(err)
	req.Equal(Undefined, n.width)
	req.Equal(0.0, n.flexGrow)
}

func TestSetSingleProperty(t *testing.T) {
	req := require.New(t)

	n := NewNode()
	req.NoError(n.Set("flexDirection", "column"))
	req.Equal(FlexDirectionColumn, n.flexDirection)

	err := n.Set("flexDirection", "sideways")
	req.Error(err)
}

func TestNewFromPropsBuildsTree(t *testing.T) {
	req := require.New(t)

	root, err := NewFromProps(map[string]any{
		"width":          300.0,
		"height":         100.0,
		"flexDirection":  "row",
		"justifyContent": "center",
		"children": []any{
			map[string]any{"width": 50.0, "height": 50.0},
			map[string]any{"flexGrow": 1.0},
		},
	})
	req.NoError(err)
	req.Equal(2, root.GetChildCount())
	req.Equal(JustifyCenter, root.justifyContent)
}

func TestNewFromPropsIgnoresUnknownKeys(t *testing.T) {
	req := require.New(t)

	root, err := NewFromProps(map[string]any{
		"width":        100.0,
		"totallyMadeUp": "ignored",
	})
	req.NoError(err)
	req.Equal(Point(100), root.width)
}
