package flexkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayoutForestLaysOutIndependentTreesConcurrently(t *testing.T) {
	req := require.New(t)

	var roots []*Node
	var requests []ForestRequest
	for i := 0; i < 8; i++ {
		root := NewNode()
		child := NewNode()
		child.SetFlexGrow(1)
		req.NoError(root.AppendChild(child))
		roots = append(roots, root)
		requests = append(requests, ForestRequest{Root: root, Width: 200, Height: 50})
	}

	err := LayoutForest(context.Background(), requests)
	req.NoError(err)

	for _, root := range roots {
		req.False(root.IsDirty())
		child := root.GetChild(0)
		req.InDelta(200, child.GetComputedWidth(), 0.001)
		req.InDelta(50, child.GetComputedHeight(), 0.001)
	}
}

func TestLayoutForestPropagatesCancellation(t *testing.T) {
	req := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := NewNode()
	err := LayoutForest(ctx, []ForestRequest{{Root: root, Width: 100, Height: 100}})
	req.Error(err)
}
