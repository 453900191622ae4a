package flexkit

// markDirty implements spec.md §4.3: if n is not already dirty, set
// isDirty, clear the intrinsic-size and baseline caches and the cached
// baselines on layout, then recurse into the parent. Recursion stops as
// soon as it reaches a node that is already dirty, which is what keeps a
// single style mutation O(depth) rather than O(subtree).
func (n *Node) markDirty() {
	n.mu.Lock()
	if n.isDirty {
		n.mu.Unlock()
		return
	}
	n.isDirty = true
	n.intrinsic.hasW = false
	n.intrinsic.hasH = false
	n.baseline.has = false
	n.layout.firstBaseline = 0
	n.layout.lastBaseline = 0
	parent := n.parent
	l := n.logger()
	n.mu.Unlock()

	l.Trace("markDirty", "node", n.id)

	if parent != nil {
		parent.markDirty()
	}
}

// invalidateIntrinsicSize clears n's intrinsic-size cache and propagates to
// ancestors, independently of markDirty. Used by SetMeasureFunc so that
// attaching a measure function doesn't force a dirty relayout of an
// already-sized ancestor subtree — only the intrinsic-size chain needs to
// know it must recompute.
func (n *Node) invalidateIntrinsicSize() {
	n.mu.Lock()
	wasValid := n.intrinsic.hasW && n.intrinsic.hasH
	if !wasValid {
		n.mu.Unlock()
		return
	}
	n.intrinsic.hasW = false
	n.intrinsic.hasH = false
	parent := n.parent
	n.mu.Unlock()

	if parent != nil {
		parent.invalidateIntrinsicSize()
	}
}

// invalidateBaseline clears n's baseline cache and propagates to ancestors,
// independently of markDirty. Used by SetBaselineFunc.
func (n *Node) invalidateBaseline() {
	n.mu.Lock()
	if !n.baseline.has {
		n.mu.Unlock()
		return
	}
	n.baseline.has = false
	parent := n.parent
	n.mu.Unlock()

	if parent != nil {
		parent.invalidateBaseline()
	}
}

// Batch applies f(n) with dirty propagation suspended, then performs at
// most one markDirty propagation for the whole batch — spec.md §4.2/§4.3.
// Nested batches compose: only the outermost Batch call triggers the
// markDirty walk, so a bulk style update is O(depth) once, not O(depth)
// per setter.
func (n *Node) Batch(f func(*Node)) *Node {
	n.mu.Lock()
	outerWasSuspended := n.suspendDirty
	n.suspendDirty = true
	n.mu.Unlock()

	f(n)

	n.mu.Lock()
	n.suspendDirty = outerWasSuspended
	n.mu.Unlock()

	if !outerWasSuspended {
		n.markDirty()
	}
	return n
}
