package flexkit

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ForestRequest pairs a root node with the available size to lay it out
// against, for batched multi-tree layout via LayoutForest.
type ForestRequest struct {
	Root   *Node
	Width  float64
	Height float64
}

// LayoutForest runs CalculateLayout concurrently across a set of
// independent root nodes (spec.md's concurrent-forest extension): since
// distinct trees never share a Node, there is no lock contention between
// them beyond each tree's own internal mutexes, so this is a straight
// fan-out over errgroup.Group, the same pattern the teacher uses to drive
// its worker pool across independent units of work.
func LayoutForest(ctx context.Context, requests []ForestRequest) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, req := range requests {
		req := req
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			req.Root.CalculateLayout(req.Width, req.Height)
			return nil
		})
	}
	return g.Wait()
}
